package kaiascan

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ParamKind is the value type of an endpoint parameter.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindList // serialised as one comma-joined value
)

func (k ParamKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindList:
		return "list"
	default:
		return "string"
	}
}

// Location says where a parameter goes in the request URL.
type Location int

const (
	InQuery Location = iota
	InPath
)

// Param describes one endpoint parameter. Path parameters are always required.
type Param struct {
	Name     string
	Kind     ParamKind
	In       Location
	Required bool
}

// Endpoint is the declarative description of one API operation. Path is
// relative to the network base URL and may hold {name} placeholders.
// Query parameters are emitted in Params order.
type Endpoint struct {
	Name    string
	Path    string
	Summary string
	Params  []Param
}

// Paged reports whether the endpoint takes page and size.
func (e Endpoint) Paged() bool {
	_, ok := e.param("page")
	return ok
}

func (e Endpoint) param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Args holds call arguments by parameter name. Accepted value types are
// string, Address, int, int64, []string and []Address; int parameters also
// accept decimal strings.
type Args map[string]any

// encodedArgs maps parameter names to their escaped wire form.
type encodedArgs map[string]string

// prepare checks args against the descriptor and escapes every value.
// It never touches the network.
func (e Endpoint) prepare(args Args) (encodedArgs, error) {
	invalid := func(param, reason string) error {
		return &ValidationError{Endpoint: e.Name, Param: param, Reason: reason}
	}

	unknown := make([]string, 0)
	for name := range args {
		if _, ok := e.param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalid(strings.Join(unknown, ","), "unknown parameter")
	}

	out := make(encodedArgs, len(e.Params))
	for _, p := range e.Params {
		v, present := args[p.Name]
		if !present || v == nil {
			if p.Required || p.In == InPath {
				return nil, invalid(p.Name, "is required")
			}
			continue
		}

		switch p.Kind {
		case KindInt:
			n, err := toInt(v)
			if err != nil {
				return nil, invalid(p.Name, err.Error())
			}
			if err := checkInt(p.Name, n); err != nil {
				return nil, invalid(p.Name, err.Error())
			}
			out[p.Name] = strconv.FormatInt(n, 10)

		case KindList:
			items, err := toStrings(v)
			if err != nil {
				return nil, invalid(p.Name, err.Error())
			}
			if len(items) == 0 {
				if p.Required {
					return nil, invalid(p.Name, "must not be empty")
				}
				continue
			}
			escaped := make([]string, len(items))
			for i, it := range items {
				if it == "" {
					return nil, invalid(p.Name, "must not contain empty values")
				}
				escaped[i] = escape(p.In, it)
			}
			out[p.Name] = strings.Join(escaped, ",")

		default:
			s, err := toString(v)
			if err != nil {
				return nil, invalid(p.Name, err.Error())
			}
			if s == "" {
				if p.Required || p.In == InPath {
					return nil, invalid(p.Name, "must not be empty")
				}
				continue
			}
			out[p.Name] = escape(p.In, s)
		}
	}
	return out, nil
}

// url assembles base + path + query from already escaped values.
func (e Endpoint) url(base string, enc encodedArgs) string {
	path := e.Path
	var query []string
	for _, p := range e.Params {
		v, ok := enc[p.Name]
		if !ok {
			continue
		}
		if p.In == InPath {
			path = strings.ReplaceAll(path, "{"+p.Name+"}", v)
			continue
		}
		query = append(query, url.QueryEscape(p.Name)+"="+v)
	}
	u := base + path
	if len(query) > 0 {
		u += "?" + strings.Join(query, "&")
	}
	return u
}

// checkInt holds the numeric constraints shared by every endpoint.
func checkInt(name string, n int64) error {
	switch name {
	case "page":
		if n < 1 {
			return fmt.Errorf("must be >= 1, got %d", n)
		}
	case "size":
		if n < 1 || n > MaxSize {
			return fmt.Errorf("must be between 1 and %d, got %d", MaxSize, n)
		}
	default:
		if n < 0 {
			return fmt.Errorf("must be >= 0, got %d", n)
		}
	}
	return nil
}

func escape(in Location, s string) string {
	if in == InPath {
		return url.PathEscape(s)
	}
	return url.QueryEscape(s)
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > 1<<63-1 {
			return 0, fmt.Errorf("value %d overflows int64", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case Address:
		return string(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func toStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []Address:
		out := make([]string, len(x))
		for i, a := range x {
			out[i] = string(a)
		}
		return out, nil
	case string:
		if x == "" {
			return nil, nil
		}
		return strings.Split(x, ","), nil
	case Address:
		return []string{string(x)}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
