package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Renderer writes results in the selected mode.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	isTTY   bool
	printer *message.Printer
	styles  styles
}

type styles struct {
	header lipgloss.Style
	result lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer) styles {
	return styles{
		header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		result: lr.NewStyle().Bold(true),
		yes:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		no:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		err:    lr.NewStyle().Foreground(lipgloss.Color("9")),
		muted:  lr.NewStyle().Faint(true),
	}
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Styling is only applied when isTTY is true.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:     out,
		errOut:  errOut,
		mode:    ParseMode(string(mode)),
		isTTY:   isTTY,
		printer: message.NewPrinter(language.English),
		styles:  newStyles(lr),
	}
}

// Out returns the result writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Println writes a line to the result writer.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Header writes a styled header in text mode.
func (r *Renderer) Header(text string) {
	_, _ = fmt.Fprintln(r.out, r.styles.header.Render(text))
}

// Muted writes a de-emphasized line in text mode.
func (r *Renderer) Muted(text string) {
	_, _ = fmt.Fprintln(r.out, r.styles.muted.Render(text))
}

// Error writes err to the error writer.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.err.Render("Error: "+err.Error()))
}

// Sum renders the result of an addition.
func (r *Renderer) Sum(res SumResult) error {
	line := fmt.Sprintf("%d + %d = %d", res.A, res.B, res.Sum)
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(res)
	case ModeYAML:
		return r.YAML(res)
	case ModeMarkdown:
		r.Println(FormatHeader(1, "Sum"))
		r.Println("")
		r.Println(FormatKeyValue("Expression:", line))
	default:
		r.Println(fmt.Sprintf("%d + %d = %s", res.A, res.B, r.styles.result.Render(strconv.Itoa(res.Sum))))
	}
	return nil
}

// Prime renders the result of a primality test.
func (r *Renderer) Prime(res PrimeResult) error {
	question := fmt.Sprintf("Is %d prime?", res.N)
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(res)
	case ModeYAML:
		return r.YAML(res)
	case ModeMarkdown:
		r.Println(FormatHeader(1, "Primality"))
		r.Println("")
		r.Println(FormatKeyValue(question, YesNo(res.Prime)))
	default:
		answer := r.styles.no.Render(YesNo(res.Prime))
		if res.Prime {
			answer = r.styles.yes.Render(YesNo(res.Prime))
		}
		r.Println(question + " " + answer)
	}
	return nil
}

// PrimesOptions controls how a prime enumeration is laid out.
type PrimesOptions struct {
	Table bool // render a numbered table instead of a list
}

// Primes renders an enumeration of primes.
func (r *Renderer) Primes(res PrimesResult, opts PrimesOptions) error {
	title := r.printer.Sprintf("Primes up to %d (%d total)", res.N, res.Count)
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(res)
	case ModeYAML:
		return r.YAML(res)
	case ModeMarkdown:
		r.Println(FormatHeader(1, title))
		r.Println("")
		switch {
		case len(res.Primes) == 0:
			r.Println("_none_")
		case opts.Table:
			r.Println(primesTable(res.Primes).RenderMarkdown())
		default:
			r.Println(JoinInts(res.Primes))
		}
	default:
		r.Header(title)
		switch {
		case len(res.Primes) == 0:
			r.Muted("(none)")
		case opts.Table:
			t := primesTable(res.Primes)
			t.SetStyle(table.StyleLight)
			r.Println(t.Render())
		default:
			r.Println(JoinInts(res.Primes))
		}
	}
	return nil
}

// PrimeCount renders the number of primes up to N.
func (r *Renderer) PrimeCount(res PrimeCountResult) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(res)
	case ModeYAML:
		return r.YAML(res)
	default:
		r.Println(strconv.Itoa(res.Count))
	}
	return nil
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func primesTable(primes []int) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Prime"})
	for i, p := range primes {
		t.AppendRow(table.Row{i + 1, p})
	}
	return t
}

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown bold key followed by its value.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("**%s** %s", key, value)
}

// JoinInts joins values with ", ".
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
