package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// IO handles command output and collects warnings that must stay visible.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
	renderer *lipgloss.Renderer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut, renderer: lipgloss.NewRenderer(out)}
}

// Warn records a warning about the run.
//
// Parameters:
//   - issue: what went wrong
//   - action: what the user can do about it
//
// Warnings are printed to stderr at both the START and END of output, so
// they survive truncation by head or tail. They do not change the exit code.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Out returns the stdout writer.
func (o *IO) Out() io.Writer {
	return o.out
}

// Style returns a lipgloss style bound to stdout's color profile. Plain
// writers such as buffers get no escape sequences.
func (o *IO) Style() lipgloss.Style {
	return o.renderer.NewStyle()
}

// Finish prints warnings to stderr a final time.
func (o *IO) Finish() {
	// If no output happened but we have warnings, print them at "start" position
	o.flushWarningsStart()

	// Always print at end
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}

		o.started = true
	}
}
