// Package tui implements the interactive inspector: values typed into a
// prompt are parsed into constant-time integers at the configured width,
// and their state (decimal value, NaN flag, sign, encodings) is shown
// live.
package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/ctkit/ctenc"
	"github.com/agbru/ctkit/ctint"
	"github.com/agbru/ctkit/internal/orchestration"
	"github.com/agbru/ctkit/internal/ui"
)

// keyMap defines the inspector key bindings.
type keyMap struct {
	Submit  key.Binding
	WidthUp key.Binding
	WidthDn key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "inspect value"),
	),
	WidthUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "wider"),
	),
	WidthDn: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "narrower"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// inspection holds the derived state of the last parsed value.
type inspection struct {
	input   string
	decimal string
	hexBE   string
	isNaN   bool
	sign    int32
	width   uint32
}

// Model is the bubbletea model of the inspector.
type Model struct {
	input textinput.Model
	width uint32
	last  *inspection
	err   string
	theme ui.TUITheme
}

// NewModel creates an inspector starting at the given width.
func NewModel(width uint32) Model {
	in := textinput.New()
	in.Placeholder = "decimal integer"
	in.Focus()
	in.CharLimit = 200
	if width == 0 {
		width = 129
	}
	return Model{
		input: in,
		width: width,
		theme: ui.DarkTUITheme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			m.inspect()
			return m, nil
		case key.Matches(msg, keys.WidthUp):
			m.width++
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.WidthDn):
			if m.width > 1 {
				m.width--
			}
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// inspect parses the current input at the current width.
func (m *Model) inspect() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		m.err = fmt.Sprintf("not a decimal integer: %q", text)
		m.last = nil
		return
	}
	m.err = ""
	m.last = inspect(text, v, m.width)
}

// refresh re-inspects the previous input after a width change.
func (m *Model) refresh() {
	if m.last == nil {
		return
	}
	if v, ok := new(big.Int).SetString(m.last.input, 10); ok {
		m.last = inspect(m.last.input, v, m.width)
	}
}

func inspect(text string, v *big.Int, width uint32) *inspection {
	x := ctint.New(width)
	n := (v.BitLen() + 8) / 8
	if n == 0 {
		n = 1
	}
	buf := make([]byte, n)
	if v.Sign() >= 0 {
		v.FillBytes(buf)
	} else {
		m := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
		new(big.Int).Add(m, v).FillBytes(buf)
	}
	x.DecBESigned(buf)

	encLen := int(width)/8 + 1
	raw := make([]byte, encLen)
	x.EncBE(raw)
	hexBuf := make([]byte, 2*encLen)
	ctenc.BinToHex(hexBuf, raw, 0)

	return &inspection{
		input:   text,
		decimal: orchestration.FormatDecimal(x),
		hexBE:   string(hexBuf),
		isNaN:   x.IsNaN().ToBool(),
		sign:    x.Sign(),
		width:   width,
	}
}

// View implements tea.Model.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("ctkit inspector — width %d", m.width))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	var body strings.Builder
	body.WriteString(m.input.View())
	body.WriteString("\n\n")

	switch {
	case m.err != "":
		body.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Error).Render(m.err))
	case m.last == nil:
		body.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Dim).
			Render("type a value and press enter"))
	case m.last.isNaN:
		body.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Error).
			Render(fmt.Sprintf("NaN — %s does not fit %d bits",
				m.last.input, m.last.width)))
		body.WriteString("\n")
		body.WriteString(dimLine(m.theme, "encodes as", strings.Repeat("00", len(m.last.hexBE)/2)))
	default:
		body.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Success).
			Render("value  "+m.last.decimal) + "\n")
		body.WriteString(dimLine(m.theme, "sign", fmt.Sprintf("%+d", m.last.sign)))
		body.WriteString("\n")
		body.WriteString(dimLine(m.theme, "be hex", m.last.hexBE))
	}

	help := lipgloss.NewStyle().Foreground(m.theme.Dim).Render(
		"enter inspect · ↑/↓ width · esc quit")

	return title + "\n" + box.Render(body.String()) + "\n" + help + "\n"
}

func dimLine(t ui.TUITheme, label, value string) string {
	return lipgloss.NewStyle().Foreground(t.Dim).Render(label+"  ") +
		lipgloss.NewStyle().Foreground(t.Text).Render(value)
}

// Run starts the inspector program and blocks until it exits.
func Run(width uint32) error {
	_, err := tea.NewProgram(NewModel(width)).Run()
	return err
}
