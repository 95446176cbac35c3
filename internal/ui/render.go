package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	maxColumns   = 6
	maxCellWidth = 24
	maxValueLen  = 72
)

// Render writes an API payload in format: "json", "yaml" or "table".
func Render(w io.Writer, format, title string, data json.RawMessage) error {
	if len(bytes.TrimSpace(data)) == 0 {
		data = json.RawMessage("null")
	}
	switch format {
	case "json", "":
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("formatting JSON: %w", err)
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err

	case "yaml":
		v, err := decode(data)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAML(v)); err != nil {
			return fmt.Errorf("formatting YAML: %w", err)
		}
		return enc.Close()

	case "table":
		out, err := RenderTable(title, data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderTable shows a list payload as a table and anything else as a
// key/value block. Kaiascan list payloads wrap rows in "results".
func RenderTable(title string, data json.RawMessage) (string, error) {
	v, err := decode(data)
	if err != nil {
		return "", err
	}

	if rows, ok := listRows(v); ok {
		t := TableFromRows(rows)
		var sb strings.Builder
		if title != "" {
			sb.WriteString(StyleTitle.Render(title))
			sb.WriteString("\n")
		}
		sb.WriteString(t.Render())
		sb.WriteString(Meta(fmt.Sprintf("%d row(s)", len(rows))))
		if obj, ok := v.(map[string]any); ok {
			if paging, ok := obj["paging"]; ok {
				sb.WriteString(Meta("  paging: " + cell(paging, maxValueLen)))
			}
		}
		return sb.String(), nil
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return KeyValueBlock(title, [][2]string{{"value", cell(v, maxValueLen)}}), nil
	}
	keys := sortedKeys(obj)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, cell(obj[k], maxValueLen)})
	}
	return KeyValueBlock(title, pairs), nil
}

// TableFromRows builds a table whose columns are the (sorted) keys of the
// first row, capped at maxColumns.
func TableFromRows(rows []map[string]any) *Table {
	var keys []string
	if len(rows) > 0 {
		keys = sortedKeys(rows[0])
	}
	if len(keys) > maxColumns {
		keys = keys[:maxColumns]
	}

	cols := make([]Column, len(keys))
	for i, k := range keys {
		width := len(k)
		for _, r := range rows {
			if n := utf8.RuneCountInString(cell(r[k], maxCellWidth)); n > width {
				width = n
			}
		}
		if width > maxCellWidth {
			width = maxCellWidth
		}
		cols[i] = Column{Title: k, Width: width}
	}

	t := NewTable(cols)
	for _, r := range rows {
		row := make(Row, len(keys))
		for i, k := range keys {
			row[i] = cell(r[k], maxCellWidth)
		}
		t.AddRow(row)
	}
	return t
}

// ListRows extracts the rows of a list payload, if it is one.
func ListRows(data json.RawMessage) ([]map[string]any, bool, error) {
	v, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	rows, ok := listRows(v)
	return rows, ok, nil
}

func listRows(v any) ([]map[string]any, bool) {
	var items []any
	switch x := v.(type) {
	case []any:
		items = x
	case map[string]any:
		res, ok := x["results"].([]any)
		if !ok {
			return nil, false
		}
		items = res
	default:
		return nil, false
	}

	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			m = map[string]any{"value": it}
		}
		rows = append(rows, m)
	}
	return rows, true
}

func decode(data json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return v, nil
}

// toYAML swaps json.Number for plain scalar nodes so big integers keep every digit.
func toYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = toYAML(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = toYAML(e)
		}
		return x
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}
	default:
		return v
	}
}

// cell renders one value on a single line, truncated to max characters.
func cell(v any, max int) string {
	var s string
	switch x := v.(type) {
	case nil:
		s = "—"
	case string:
		s = x
	case json.Number:
		s = x.String()
	case bool:
		s = fmt.Sprintf("%t", x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			s = fmt.Sprintf("%v", x)
		} else {
			s = string(b)
		}
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > max {
		s = string(r[:max-1]) + "…"
	}
	return s
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
