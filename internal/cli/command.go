package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one emap-bench subcommand: its flag set, help text and action.
type Command struct {
	// Flags holds the subcommand's own flags. Its name is unused; Usage
	// identifies the command.
	Flags *flag.FlagSet

	// Usage follows "emap-bench" in help output and starts with the command
	// name, e.g. "run [flags]".
	Usage string

	// Short is listed next to Usage in the global command table.
	Short string

	// Long is printed by --help. Short stands in when it is empty.
	Long string

	// Exec receives the arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "emap-bench <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	c.writeHelp(o.Println, true)
}

// Run parses flags and executes the command. Returns exit code.
// Parse errors print the usage to stderr so stdout stays empty on failure.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag output

	err := c.Flags.Parse(args)

	switch {
	case errors.Is(err, flag.ErrHelp):
		c.PrintHelp(o)

		return 0
	case err != nil:
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.writeHelp(o.ErrPrintln, false)

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

// writeHelp renders the usage line, the description when long is set, and
// the flag table through println.
func (c *Command) writeHelp(println func(a ...any), long bool) {
	println("Usage: emap-bench", c.Usage)

	if long {
		desc := c.Long
		if desc == "" {
			desc = c.Short
		}

		println()
		println(desc)
	}

	if c.Flags != nil && c.Flags.HasFlags() {
		println()
		println("Flags:")
		println(strings.TrimRight(c.Flags.FlagUsages(), "\n"))
	}
}
