package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/emap/pkg/emap"
)

// session runs lines against a fresh map and returns each line's output.
func session(t *testing.T, capacity int, lines ...string) (*emap.Map[int64], []string) {
	t.Helper()

	m := emap.New[int64](capacity)

	var buf bytes.Buffer

	repl := NewREPL(m, &buf)
	outputs := make([]string, 0, len(lines))

	for _, line := range lines {
		buf.Reset()
		repl.Exec(line)
		outputs = append(outputs, strings.TrimSpace(buf.String()))
	}

	return m, outputs
}

func Test_REPL_Reflects_Map_State_When_Commands_Run(t *testing.T) {
	t.Parallel()

	m, out := session(t, 4,
		"insert 1 100",
		"set 1 101",
		"get 1",
		"get 2",
		"contains 1",
		"len",
		"cap",
		"del 1",
		"remove 1",
		"len",
	)

	want := []string{
		"OK: [1] = 100",
		"OK: [1] = 101 (was 100)",
		"101",
		"(vacant)",
		"true",
		"1",
		"4",
		"OK: removed [1] = 101",
		"(vacant)",
		"0",
	}

	assert.Equal(t, want, out)
	assert.True(t, m.IsEmpty())
}

func Test_REPL_Reports_Error_When_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	m, out := session(t, 3, "insert 3 7", "get -1", "len")

	assert.Equal(t, "Error: emap: index 3 out of range [0, 3)", out[0])
	assert.Equal(t, "Error: emap: index -1 out of range [0, 3)", out[1])
	assert.Equal(t, "0", out[2], "failed insert must not mutate")
	assert.Equal(t, 0, m.Len())
}

func Test_REPL_Fills_And_Lists_When_Vacant_Slots_Remain(t *testing.T) {
	t.Parallel()

	m, out := session(t, 4,
		"insert 2 9",
		"fill",
		"next",
		"push 5",
		"ls 2",
		"clear",
		"ls",
		"next",
		"push 5",
	)

	assert.Equal(t, "OK: filled 3 (len=4)", out[1])
	assert.Equal(t, "(full)", out[2])
	assert.Equal(t, "Error: map is full", out[3])
	assert.Equal(t, "[0] 0\n[1] 1\n... (2 more)", out[4])
	assert.Equal(t, "OK: cleared", out[5])
	assert.Equal(t, "(empty)", out[6])
	assert.Equal(t, "0", out[7])
	assert.Equal(t, "OK: [0] = 5", out[8])

	value, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(5), value)
}

func Test_REPL_Prints_Usage_When_Arguments_Missing_Or_Invalid(t *testing.T) {
	t.Parallel()

	_, out := session(t, 2, "insert 1", "get", "push", "get x", "bench", "bogus")

	assert.Equal(t, "Usage: insert <index> <value>", out[0])
	assert.Equal(t, "Usage: get <index>", out[1])
	assert.Equal(t, "Usage: push <value>", out[2])
	assert.Contains(t, out[3], "Error parsing index")
	assert.Equal(t, "Usage: bench <rounds>", out[4])
	assert.Contains(t, out[5], "Unknown command: bogus")
}

func Test_REPL_Times_Scratch_Map_When_Bench_Runs(t *testing.T) {
	t.Parallel()

	m, out := session(t, 8, "insert 0 1", "bench 10", "bench 0")

	assert.Contains(t, out[1], "10 rounds, capacity 8:")
	assert.Contains(t, out[2], "Error: rounds must be positive")
	assert.Equal(t, 1, m.Len(), "bench must not touch the shell's map")
}

func Test_REPL_Exits_When_Quit_Entered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	repl := NewREPL(emap.New[int64](1), &buf)

	assert.False(t, repl.Exec("help"))
	assert.Contains(t, buf.String(), "Commands:")
	assert.True(t, repl.Exec("quit"))
	assert.True(t, repl.Exec("q"))
	assert.Equal(t, []string{"len"}, repl.complete("le"))
	assert.Equal(t, []string{"push"}, repl.complete("pu"))
}
