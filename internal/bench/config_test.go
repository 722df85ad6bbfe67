package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/emap/internal/bench"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func Test_LoadConfig_Returns_Defaults_When_No_File(t *testing.T) {
	t.Parallel()

	cfg, err := bench.LoadConfig(t.TempDir(), "")
	require.NoError(t, err)

	diff := cmp.Diff(bench.DefaultConfig(), cfg)
	assert.Empty(t, diff)
	assert.Empty(t, cfg.Source)
}

func Test_LoadConfig_Merges_Project_File_When_Present(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, bench.ConfigFileName, `{
		// JSONC comments and trailing commas are allowed
		"capacity": 64,
		"contenders": ["btree", "builtin-map",],
	}`)

	cfg, err := bench.LoadConfig(dir, "")
	require.NoError(t, err)

	want := bench.Config{
		Rounds:     bench.DefaultConfig().Rounds,
		Capacity:   64,
		Contenders: []string{"btree", "builtin-map"},
		Source:     path,
	}

	diff := cmp.Diff(want, cfg)
	assert.Empty(t, diff, "config mismatch")
}

func Test_LoadConfig_Uses_Explicit_File_When_Path_Given(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, bench.ConfigFileName, `{"rounds": 5}`)
	writeConfig(t, dir, "other.json", `{"rounds": 7, "assert_fastest": true, "out": "r.md"}`)

	cfg, err := bench.LoadConfig(dir, "other.json")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rounds, "explicit file replaces the project file")
	assert.True(t, cfg.AssertFastest)
	assert.Equal(t, "r.md", cfg.Out)
	assert.Equal(t, filepath.Join(dir, "other.json"), cfg.Source)
}

func Test_LoadConfig_Keeps_Assert_Off_When_File_Sets_False(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "off.json", `{"assert_fastest": false, "rounds": 9}`)
	writeConfig(t, dir, "on.json", `{"assert_fastest": true}`)

	cfg, err := bench.LoadConfig(dir, "off.json")
	require.NoError(t, err)
	assert.False(t, cfg.AssertFastest)
	assert.Equal(t, 9, cfg.Rounds)

	cfg, err = bench.LoadConfig(dir, "on.json")
	require.NoError(t, err)
	assert.True(t, cfg.AssertFastest)
}

func Test_LoadConfig_Returns_Error_When_File_Bad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := bench.LoadConfig(dir, "missing.json")
	require.ErrorIs(t, err, bench.ErrConfigFileNotFound)

	writeConfig(t, dir, bench.ConfigFileName, `{"rounds": `)

	_, err = bench.LoadConfig(dir, "")
	require.ErrorIs(t, err, bench.ErrConfigInvalid)

	writeConfig(t, dir, "typed.json", `{"rounds": "many"}`)

	_, err = bench.LoadConfig(dir, "typed.json")
	require.ErrorIs(t, err, bench.ErrConfigInvalid)
}

func Test_Config_Validate_Rejects_Out_Of_Range_Values(t *testing.T) {
	t.Parallel()

	require.NoError(t, bench.DefaultConfig().Validate())

	testCases := []struct {
		name string
		cfg  bench.Config
		want error
	}{
		{"ZeroRounds", bench.Config{Rounds: 0, Capacity: 10}, bench.ErrInvalidRounds},
		{"CapacityTooSmall", bench.Config{Rounds: 1, Capacity: 1}, bench.ErrInvalidCapacity},
		{"UnknownContender", bench.Config{Rounds: 1, Capacity: 10, Contenders: []string{"x"}}, bench.ErrUnknownContender},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, testCase.cfg.Validate(), testCase.want)
		})
	}
}
