package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/calvinalkan/emap/internal/bench"
	"github.com/calvinalkan/emap/pkg/emap"
)

var commands = []string{
	"insert", "set", "get", "contains",
	"remove", "del", "len", "cap",
	"clear", "ls", "list", "next",
	"push", "fill", "bench",
	"help", "exit", "quit", "q",
}

// REPL executes shell commands against one map.
type REPL struct {
	m   *emap.Map[int64]
	out io.Writer
}

// NewREPL returns a REPL over m writing to out.
func NewREPL(m *emap.Map[int64], out io.Writer) *REPL {
	return &REPL{m: m, out: out}
}

// Exec runs one command line. It reports true when the shell should exit.
func (r *REPL) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	// Out-of-range indices panic in the map; report them instead.
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok || !errors.Is(err, emap.ErrOutOfRange) {
				panic(rec)
			}

			r.printf("Error: %v\n", err)
		}
	}()

	switch cmd {
	case "exit", "quit", "q":
		r.println("Bye!")

		return true

	case "help", "?":
		r.printHelp()

	case "insert", "set":
		r.cmdInsert(args)

	case "get":
		r.cmdGet(args)

	case "contains":
		r.cmdContains(args)

	case "remove", "del":
		r.cmdRemove(args)

	case "len", "count":
		r.printf("%d\n", r.m.Len())

	case "cap":
		r.printf("%d\n", r.m.Cap())

	case "clear":
		r.m.Clear()
		r.println("OK: cleared")

	case "ls", "list":
		r.cmdList(args)

	case "next":
		r.cmdNext()

	case "push":
		r.cmdPush(args)

	case "fill":
		r.cmdFill(args)

	case "bench":
		r.cmdBench(args)

	default:
		r.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

// complete provides tab completion for commands.
func (r *REPL) complete(line string) []string {
	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *REPL) printHelp() {
	r.println("Commands:")
	r.println("  insert <index> <value>   Store a value (alias: set)")
	r.println("  get <index>              Show the value at an index")
	r.println("  contains <index>         Report whether an index is occupied")
	r.println("  remove <index>           Vacate an index (alias: del)")
	r.println("  len                      Count occupied slots")
	r.println("  cap                      Show the capacity")
	r.println("  clear                    Vacate every slot")
	r.println("  ls [limit]               List occupied slots in index order")
	r.println("  next                     Show the lowest vacant index")
	r.println("  push <value>             Store a value at the lowest vacant index")
	r.println("  fill [count]             Store each vacant index as its own value")
	r.println("  bench <rounds>           Time the benchmark workload on a scratch map")
	r.println("  help                     Show this help")
	r.println("  exit / quit / q          Exit")
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) < 2 {
		r.println("Usage: insert <index> <value>")

		return
	}

	index, ok := r.parseInt(args[0], "index")
	if !ok {
		return
	}

	value, ok := r.parseInt(args[1], "value")
	if !ok {
		return
	}

	old, replaced := r.m.Insert(int(index), value)
	if replaced {
		r.printf("OK: [%d] = %d (was %d)\n", index, value, old)

		return
	}

	r.printf("OK: [%d] = %d\n", index, value)
}

func (r *REPL) cmdGet(args []string) {
	index, ok := r.indexArg(args, "get")
	if !ok {
		return
	}

	value, found := r.m.Get(index)
	if !found {
		r.println("(vacant)")

		return
	}

	r.printf("%d\n", value)
}

func (r *REPL) cmdContains(args []string) {
	index, ok := r.indexArg(args, "contains")
	if !ok {
		return
	}

	r.printf("%t\n", r.m.Contains(index))
}

func (r *REPL) cmdRemove(args []string) {
	index, ok := r.indexArg(args, "remove")
	if !ok {
		return
	}

	value, removed := r.m.Remove(index)
	if !removed {
		r.println("(vacant)")

		return
	}

	r.printf("OK: removed [%d] = %d\n", index, value)
}

func (r *REPL) cmdList(args []string) {
	limit := r.m.Cap()

	if len(args) > 0 {
		n, ok := r.parseInt(args[0], "limit")
		if !ok {
			return
		}

		limit = int(n)
	}

	shown := 0

	for index, value := range r.m.All() {
		if shown >= limit {
			r.printf("... (%d more)\n", r.m.Len()-shown)

			break
		}

		r.printf("[%d] %d\n", index, value)
		shown++
	}

	if r.m.IsEmpty() {
		r.println("(empty)")
	}
}

func (r *REPL) cmdNext() {
	index, ok := r.m.NextKey()
	if !ok {
		r.println("(full)")

		return
	}

	r.printf("%d\n", index)
}

func (r *REPL) cmdPush(args []string) {
	if len(args) < 1 {
		r.println("Usage: push <value>")

		return
	}

	value, ok := r.parseInt(args[0], "value")
	if !ok {
		return
	}

	index, ok := r.m.Push(value)
	if !ok {
		r.println("Error: map is full")

		return
	}

	r.printf("OK: [%d] = %d\n", index, value)
}

func (r *REPL) cmdFill(args []string) {
	count := r.m.Cap()

	if len(args) > 0 {
		n, ok := r.parseInt(args[0], "count")
		if !ok {
			return
		}

		count = int(n)
	}

	filled := 0

	for filled < count {
		index, ok := r.m.NextKey()
		if !ok {
			break
		}

		r.m.Insert(index, int64(index))
		filled++
	}

	r.printf("OK: filled %d (len=%d)\n", filled, r.m.Len())
}

func (r *REPL) cmdBench(args []string) {
	if len(args) < 1 {
		r.println("Usage: bench <rounds>")

		return
	}

	rounds, ok := r.parseInt(args[0], "rounds")
	if !ok {
		return
	}

	cfg := bench.Config{
		Rounds:     int(rounds),
		Capacity:   max(r.m.Cap(), bench.MinCapacity),
		Contenders: []string{bench.BaselineName},
	}

	runner, err := bench.NewRunner(cfg, nil)
	if err != nil {
		r.printf("Error: %v\n", err)

		return
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		r.printf("Error: %v\n", err)

		return
	}

	result, _ := report.Result(bench.BaselineName)
	perRound := result.Elapsed / time.Duration(rounds)

	r.printf("%d rounds, capacity %d: %v total, %v/round\n", rounds, cfg.Capacity, result.Elapsed, perRound)
}

func (r *REPL) indexArg(args []string, cmd string) (int, bool) {
	if len(args) < 1 {
		r.printf("Usage: %s <index>\n", cmd)

		return 0, false
	}

	index, ok := r.parseInt(args[0], "index")

	return int(index), ok
}

func (r *REPL) parseInt(s, what string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.printf("Error parsing %s: %v\n", what, err)

		return 0, false
	}

	return n, true
}

func (r *REPL) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

func (r *REPL) println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}
