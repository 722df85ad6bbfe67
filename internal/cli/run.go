// Package cli implements the emap-bench command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/emap/internal/bench"
)

// EnvConfig names the environment variable holding a config path, used when
// --config is not given.
const EnvConfig = "EMAP_BENCH_CONFIG"

// App is the resolved state shared by all commands.
type App struct {
	WorkDir string
	Config  bench.Config

	// LogOut receives zap output when a command enables verbose logging.
	LogOut io.Writer
}

// Run is the main entry point. Returns exit code.
//
// A signal on sigCh cancels the context passed to the command. sigCh may be
// nil.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := flag.NewFlagSet("emap-bench", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(io.Discard)

	help := globals.BoolP("help", "h", false, "Show help")
	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	err := globals.Parse(rest)
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	if *help || globals.NArg() == 0 {
		printUsage(out, globals, nil)

		return 0
	}

	if *workDir == "" {
		*workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	if *configPath == "" {
		*configPath = env[EnvConfig]
	}

	cfg, err := bench.LoadConfig(*workDir, *configPath)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	app := &App{WorkDir: *workDir, Config: cfg, LogOut: errOut}
	commands := []*Command{
		RunCmd(app),
		ListCmd(),
		PrintConfigCmd(app),
	}

	name := globals.Arg(0)

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut, globals, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(out, errOut)

	code := cmd.Run(ctx, o, globals.Args()[1:])
	o.Finish()

	if code == 0 && errors.Is(ctx.Err(), context.Canceled) {
		return 1
	}

	return code
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	if commands == nil {
		app := &App{Config: bench.DefaultConfig()}
		commands = []*Command{RunCmd(app), ListCmd(), PrintConfigCmd(app)}
	}

	fprintln(w, `emap-bench - compare emap against other map implementations

Usage: emap-bench [global flags] <command> [args]

Global flags:`)
	fprintln(w, strings.TrimRight(globals.FlagUsages(), "\n"))
	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}
}
