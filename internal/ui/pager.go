package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PageFetcher loads one page of a paged endpoint and returns its data payload.
type PageFetcher func(page int) (json.RawMessage, error)

type pageMsg struct {
	page int
	data json.RawMessage
	err  error
}

// pagerModel is the bubbletea model behind `kaiascan browse`.
type pagerModel struct {
	title   string
	fetch   PageFetcher
	page    int
	rows    []map[string]any
	table   *Table
	cursor  int
	loading bool
	err     error
	flash   string
	copy    func(string) error
}

func newPagerModel(title string, start int, fetch PageFetcher) pagerModel {
	if start < 1 {
		start = 1
	}
	return pagerModel{
		title:   title,
		fetch:   fetch,
		page:    start,
		table:   NewTable(nil),
		loading: true,
		copy:    copyToClipboard,
	}
}

func (m pagerModel) load(page int) tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		data, err := fetch(page)
		return pageMsg{page: page, data: data, err: err}
	}
}

func (m pagerModel) Init() tea.Cmd { return m.load(m.page) }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		rows, ok, err := ListRows(msg.data)
		if err == nil && !ok {
			err = fmt.Errorf("page %d is not a list", msg.page)
		}
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.page = msg.page
		m.rows = rows
		m.table = TableFromRows(rows)
		m.cursor = 0

	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "n", "right":
			if m.loading || len(m.rows) == 0 {
				break
			}
			m.loading = true
			return m, m.load(m.page + 1)

		case "p", "left":
			if m.loading || m.page <= 1 {
				break
			}
			m.loading = true
			return m, m.load(m.page - 1)

		case "c":
			if m.cursor >= len(m.rows) {
				break
			}
			b, _ := json.Marshal(m.rows[m.cursor])
			if err := m.copy(string(b)); err != nil {
				m.flash = "Copy failed: " + err.Error()
			} else {
				m.flash = "Copied row to clipboard"
			}
		}
	}
	return m, nil
}

func (m pagerModel) View() string {
	m.table.SelIdx = m.cursor

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(Meta(fmt.Sprintf("page %d · %d row(s)", m.page, len(m.rows))))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(Err(m.err.Error()))
		sb.WriteString("\n")
	case len(m.rows) == 0 && !m.loading:
		sb.WriteString(Meta("no results"))
		sb.WriteString("\n")
	default:
		sb.WriteString(m.table.Render())
	}

	sb.WriteString("\n")
	switch {
	case m.loading:
		sb.WriteString(Info("loading…"))
	case m.flash != "":
		sb.WriteString(styleOK.Render("  ✓ " + m.flash))
	default:
		sb.WriteString(pagerControls())
	}
	sb.WriteString("\n")
	return sb.String()
}

func pagerControls() string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleMeta.Render("[ ↑↓ ]"))
	sb.WriteString(StyleMeta.Render(" navigate"))
	sb.WriteString(sep)
	sb.WriteString(styleHint.Render("[ n/p ]"))
	sb.WriteString(StyleMeta.Render(" next/prev page"))
	sb.WriteString(sep)
	sb.WriteString(styleWarn.Render("[ c ]"))
	sb.WriteString(StyleMeta.Render(" copy row"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ]"))
	sb.WriteString(StyleMeta.Render(" quit"))
	return sb.String()
}

// RunPager browses a paged endpoint starting at page start. Blocks until the
// user quits; the alt screen restores the terminal on exit.
func RunPager(title string, start int, fetch PageFetcher) error {
	p := tea.NewProgram(newPagerModel(title, start, fetch),
		tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default:
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd = exec.Command("wl-copy")
		} else {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		}
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	_, _ = io.WriteString(stdin, text)
	stdin.Close()
	return cmd.Wait()
}
