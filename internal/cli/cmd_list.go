package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/emap/internal/bench"
)

// ListCmd returns the list command.
func ListCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Usage: "list",
		Short: "List available contenders",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			for _, factory := range bench.Factories() {
				name := factory.Name
				if name == bench.BaselineName {
					name += " (baseline)"
				}

				io.Printf("%-22s %s\n", name, factory.Description)
			}

			return nil
		},
	}
}
