// emapctl is an interactive shell over an emap.Map[int64].
//
// Usage:
//
//	emapctl [-n capacity]
//
// Commands (in REPL):
//
//	insert <index> <value>   Store a value (alias: set)
//	get <index>              Show the value at an index
//	contains <index>         Report whether an index is occupied
//	remove <index>           Vacate an index (alias: del)
//	len                      Count occupied slots
//	cap                      Show the capacity
//	clear                    Vacate every slot
//	ls [limit]               List occupied slots in index order
//	next                     Show the lowest vacant index
//	push <value>             Store a value at the lowest vacant index
//	fill [count]             Store each vacant index as its own value
//	bench <rounds>           Time the benchmark workload on a scratch map
//	help                     Show this help
//	exit / quit / q          Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/emap/pkg/emap"
)

const defaultCapacity = 64

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("emapctl", flag.ContinueOnError)
	capacity := fs.IntP("capacity", "n", defaultCapacity, "map capacity")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emapctl [options]\n\n")
		fmt.Fprintf(os.Stderr, "Open an interactive shell over a fixed-capacity map.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	if *capacity < 0 || *capacity > emap.MaxCapacity {
		return fmt.Errorf("%w: %d (must be in [0, %d])", emap.ErrInvalidCapacity, *capacity, emap.MaxCapacity)
	}

	repl := NewREPL(emap.New[int64](*capacity), os.Stdout)

	return repl.Run()
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".emapctl_history")
}

// Run starts the interactive loop.
func (r *REPL) Run() error {
	// Set up liner for readline-style input
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(r.complete)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	defer saveHistory(line)

	r.printf("emapctl - fixed-capacity map shell (capacity=%d)\n", r.m.Cap())
	r.println("Type 'help' for available commands.")
	r.println()

	for {
		input, err := line.Prompt("emap> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.println("\nBye!")

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if r.Exec(input) {
			return nil
		}
	}
}

// saveHistory persists command history to disk.
func saveHistory(line *liner.State) {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}
}
