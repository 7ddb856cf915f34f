// Package pretty renders issues, summaries and tables for terminals with
// lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds one lipgloss style per element of the terminal output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	FilePath   lipgloss.Style
	Location   lipgloss.Style
	CheckID    lipgloss.Style
	Message    lipgloss.Style
	Secondary  lipgloss.Style // secondary locations and complexity increments
	Gap        lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	Duplication lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableInfoRow   lipgloss.Style
	TableGap       lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// ANSI 16-color palette indexes.
const (
	colorNone    = ""
	colorSilver  = "7"
	colorGray    = "8"
	colorRed     = "9"
	colorGreen   = "10"
	colorYellow  = "11"
	colorBlue    = "12"
	colorMagenta = "13"
	colorCyan    = "14"
)

// brush builds styles that carry attributes only when color is on.
type brush bool

func (b brush) fg(color string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if b && color != colorNone {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

func (b brush) bold(color string) lipgloss.Style {
	return b.fg(color).Bold(bool(b))
}

func (b brush) italic(color string) lipgloss.Style {
	return b.fg(color).Italic(bool(b))
}

// NewStyles returns the output styles. With colorEnabled false every style
// renders text unchanged.
func NewStyles(colorEnabled bool) *Styles {
	b := brush(colorEnabled)
	return &Styles{
		Error:   b.bold(colorRed),
		Warning: b.bold(colorYellow),
		Info:    b.bold(colorBlue),

		FilePath:   b.bold(colorNone),
		Location:   b.fg(colorGray),
		CheckID:    b.fg(colorGray),
		Message:    b.fg(colorNone),
		Secondary:  b.fg(colorCyan),
		Gap:        b.italic(colorMagenta),
		SourceLine: b.fg(colorSilver),
		Caret:      b.fg(colorRed),

		Duplication: b.bold(colorMagenta),

		SummaryTitle: b.bold(colorNone),
		SummaryValue: b.fg(colorNone),
		Success:      b.bold(colorGreen),
		Failure:      b.bold(colorRed),

		TableHeader:    b.bold(colorSilver),
		TableBorder:    b.fg(colorGray),
		TableErrorRow:  b.fg(colorRed),
		TableWarnRow:   b.fg(colorYellow),
		TableInfoRow:   b.fg(colorBlue),
		TableGap:       b.fg(colorMagenta),
		TableLegend:    b.italic(colorGray),
		TableSeparator: b.fg(colorGray),

		Dim:  b.fg(colorGray),
		Bold: b.bold(colorNone),
	}
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute; any other mode is auto, which wants a terminal and an
// unset NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
