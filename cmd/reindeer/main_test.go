package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/reindeer/config"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTurns = "#####\n#...#\n#S#E#\n#####\n"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvInput, config.EnvWorkers, config.EnvLogLevel, config.EnvRender, config.EnvVerify} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRun_Stdin(t *testing.T) {
	clearEnv(t)
	out, _, err := runCmd(t, twoTurns)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 3004\nPart 2: 5\n", out)
}

func TestRun_FileRenderVerify(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoTurns), 0o600))

	out, logs, err := runCmd(t, "", "-i", path, "-w", "4", "--render", "--verify", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 3004\nPart 2: 5\n#####\n#OOO#\n#O#O#\n#####\n", out)
	assert.Contains(t, logs, "result verified against dijkstra")
	assert.Contains(t, logs, "run_id=")
}

// TestRun_EnvConfig drives the command through REINDEER_* variables.
func TestRun_EnvConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#####\n#S.E#\n#####"), 0o600))
	t.Setenv(config.EnvInput, path)
	t.Setenv(config.EnvRender, "true")

	out, _, err := runCmd(t, "")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 2\nPart 2: 3\n#####\n#OOO#\n#####\n", out)

	// Flags win over the environment.
	out, _, err = runCmd(t, "", "--render=false")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 2\nPart 2: 3\n", out)
}

func TestRun_Errors(t *testing.T) {
	clearEnv(t)

	_, logs, err := runCmd(t, "#####\n#S#E#\n#####")
	require.ErrorIs(t, err, search.ErrUnreachableGoal)
	assert.Contains(t, logs, "run failed")

	_, _, err = runCmd(t, "#####\n#S.X#\n#####")
	require.ErrorIs(t, err, grid.ErrUnknownSymbol)

	_, _, err = runCmd(t, twoTurns, "--log-level", "shouty")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, _, err = runCmd(t, twoTurns, "--workers", "0")
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = runCmd(t, "", "-i", filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCmd(t, "", "--no-such-flag")
	require.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	clearEnv(t)
	out, usage, err := runCmd(t, "", "--help")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, usage, "--verify")
}

func TestVerifyResult_Mismatch(t *testing.T) {
	g := grid.MustParse(twoTurns)
	res, err := search.Solve(context.Background(), g)
	require.NoError(t, err)
	require.NoError(t, verifyResult(g, res))

	res.MinimumCost++
	require.ErrorIs(t, verifyResult(g, res), ErrVerifyMismatch)
	res.MinimumCost--

	res.OptimalCells.Remove(g.Start())
	require.ErrorIs(t, verifyResult(g, res), ErrVerifyMismatch)
}
