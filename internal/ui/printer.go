package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line of a header or result box. A slice keeps
// the display order stable.
type Param struct {
	Key   string
	Value string
}

// Printer writes styled blocks to a writer. Commands print through it so
// tests can capture output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer for w. A nil w means os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error box with hints
func (p *Printer) PrintError(title string, err error, hints ...string) {
	p.Println(RenderErrorBox(title, err, hints, p.width))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Param, width int) string {
	width = clampWidth(width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(title)),
		HeaderCommandStyle.Render(command),
	)
	if len(params) == 0 {
		return HeaderBorderStyle(width).Render(top)
	}

	divider := RenderHorizontalDivider(width-6, "─")
	content := lipgloss.JoinVertical(lipgloss.Left, top, divider, renderParams(params, ParamKeyStyle, ParamValueStyle))
	return HeaderBorderStyle(width).Render(content)
}

func renderParams(params []Param, key, value lipgloss.Style) string {
	lines := make([]string, len(params))
	for i, prm := range params {
		lines[i] = key.Render(prm.Key+":") + " " + value.Render(prm.Value)
	}
	return strings.Join(lines, "\n")
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Param, width int) string {
	lines := []string{SuccessTitleStyle.Render(MarkerComplete + "  " + title)}
	if len(details) > 0 {
		lines = append(lines, "", renderParams(details, ResultKeyStyle, ResultValueStyle))
	}
	return ResultBoxStyle(SuccessColor, clampWidth(width)).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error box with optional hints
func RenderErrorBox(title string, err error, hints []string, width int) string {
	lines := []string{ErrorTitleStyle.Render(MarkerFailed + "  " + title)}
	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+err.Error()))
	}
	if len(hints) > 0 {
		lines = append(lines, "")
		for _, h := range hints {
			lines = append(lines, StepPendingStyle.Render("  • "+h))
		}
	}
	return ResultBoxStyle(ErrorColor, clampWidth(width)).Render(strings.Join(lines, "\n"))
}
