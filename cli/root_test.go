// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, capturing both streams.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "linsolve", cmd.Use)
	assert.Contains(t, cmd.Long, "reduced row echelon form")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{{"solve"}, {"det"}, {"inverse"}, {"history", "list"}, {"history", "show"}} {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	hist := cmd.PersistentFlags().Lookup("history")
	require.NotNil(t, hist)
	assert.Equal(t, "", hist.DefValue)
}

func TestSolveFlags(t *testing.T) {
	cmd := NewRootCommand()
	solve, _, err := cmd.Find([]string{"solve"})
	require.NoError(t, err)

	logFlag := solve.Flags().Lookup("log")
	require.NotNil(t, logFlag)
	assert.Equal(t, "l", logFlag.Shorthand)
	require.NotNil(t, solve.Flags().Lookup("file"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "solve")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))

	e := WrapExitError(ExitFailure, "outer", assert.AnError)
	assert.ErrorIs(t, e, assert.AnError)
	assert.Equal(t, "outer: "+assert.AnError.Error(), e.Error())
	assert.Equal(t, "bare", NewExitError(ExitFailure, "bare").Error())
}
