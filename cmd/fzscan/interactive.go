package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Scorpio69t/libfilezilla/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offendStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	leadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	contStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const bytesPerRow = 16

type inspectorModel struct {
	vp      viewport.Model
	err     *errors.Error
	pos     int64
	ready   bool
	content string
}

func runInspector(chunk []byte, e *errors.Error, pos int64) error {
	m := inspectorModel{
		err:     e,
		pos:     pos,
		content: renderHexDump(chunk, e.Offset, pos),
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m inspectorModel) Init() tea.Cmd {
	return nil
}

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 4
		footerHeight := 2
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.vp.SetContent(m.content)
			// Scroll the offending row into view
			m.vp.SetYOffset(m.err.Offset / bytesPerRow)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m inspectorModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("fzscan byte inspector"))
	b.WriteString("\n")
	b.WriteString(detailStyle.Render(fmt.Sprintf("%s at byte %d", m.err.Kind, m.pos)))
	b.WriteString("\n")
	b.WriteString(m.err.Detail)
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: scroll • q: quit"))
	return b.String()
}

// renderHexDump formats chunk as rows of hex bytes with the offending byte
// highlighted. Offsets in the left column are stream-cumulative.
func renderHexDump(chunk []byte, offend int, pos int64) string {
	base := pos - int64(offend)
	var b strings.Builder
	for row := 0; row < len(chunk); row += bytesPerRow {
		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", base+int64(row))))
		b.WriteString("  ")
		for i := row; i < row+bytesPerRow && i < len(chunk); i++ {
			cell := fmt.Sprintf("%02x", chunk[i])
			switch {
			case i == offend:
				cell = offendStyle.Render(cell)
			case chunk[i] >= 0xC0:
				cell = leadStyle.Render(cell)
			case chunk[i] >= 0x80:
				cell = contStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteString("\n")
	}
	return b.String()
}
