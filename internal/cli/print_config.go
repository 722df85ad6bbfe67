package cli

import (
	"context"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which file it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, app)
		},
	}
}

func execPrintConfig(io *IO, app *App) error {
	cfg := app.Config

	io.Println("effective_cwd=" + app.WorkDir)
	io.Println("rounds=" + strconv.Itoa(cfg.Rounds))
	io.Println("capacity=" + strconv.Itoa(cfg.Capacity))

	if len(cfg.Contenders) > 0 {
		io.Println("contenders=" + strings.Join(cfg.Contenders, ","))
	} else {
		io.Println("contenders=(all)")
	}

	if cfg.Out != "" {
		io.Println("out=" + cfg.Out)
	}

	io.Println("assert_fastest=" + strconv.FormatBool(cfg.AssertFastest))

	io.Println("")
	io.Println("# sources")

	if cfg.Source == "" {
		io.Println("(defaults only)")
	} else {
		io.Println("config=" + cfg.Source)
	}

	return nil
}
