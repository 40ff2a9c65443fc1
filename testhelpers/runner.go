package testhelpers

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"ohmytheme.dev/ohmytheme/internal/cli"
)

// RunCLI executes an omt command in-process and captures everything it
// writes to stdout. The returned error is the command's own error;
// output is captured even when the command fails.
func RunCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	readEnd, writeEnd, err := os.Pipe()
	require.NoError(t, err)

	// The logger grabs os.Stdout when the command constructs it, so the
	// swap has to happen before Execute.
	oldStdout := os.Stdout
	os.Stdout = writeEnd
	defer func() { os.Stdout = oldStdout }()

	// Drain the pipe concurrently so a chatty command cannot fill the
	// pipe buffer and deadlock.
	outCh := make(chan string)
	go func() {
		data, _ := io.ReadAll(readEnd)
		outCh <- string(data)
	}()

	rootCmd := cli.NewRootCmd("test", "none", "unknown")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(writeEnd)
	rootCmd.SetErr(writeEnd)

	runErr := rootCmd.Execute()

	require.NoError(t, writeEnd.Close())
	output := <-outCh
	_ = readEnd.Close()

	return output, runErr
}
