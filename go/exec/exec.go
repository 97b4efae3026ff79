/*
A wrapper around the os/exec package that supports timeouts and testing.

Example usage:

Simple command with argument:

	err := Run(ctx, &Command{
		Name: "touch",
		Args: []string{file},
	})

More complicated example:

	output := bytes.Buffer{}
	err := Run(ctx, &Command{
		Name: "vpython3",
		Args: []string{"tools/perf/run_benchmark", "thread_times.polymer"},
		Dir: chromiumSrcDir,
		CombinedOutput: &output,
		Timeout: 10*time.Minute,
	})

Inject a Run function for testing:

	mock := exec.CommandCollector{}
	ctx := exec.NewContext(context.Background(), mock.Run)
	TestCodeCallingRun(ctx)
	require.Equal(t, "touch /tmp/file", exec.DebugString(mock.Commands()[0]))
*/
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/sklog"
)

// WriteLog implements the io.Writer interface and writes to the given log function.
type WriteLog struct {
	LogFunc func(format string, args ...interface{})
}

func (wl WriteLog) Write(p []byte) (n int, err error) {
	wl.LogFunc("%s", string(p))
	return len(p), nil
}

var (
	WriteInfoLog  = WriteLog{LogFunc: sklog.Infof}
	WriteErrorLog = WriteLog{LogFunc: sklog.Errorf}
)

type Command struct {
	// Name of the command, as passed to osexec.Command. Can be the path to a binary or the
	// name of a command that osexec.LookPath can find.
	Name string
	// Arguments of the command, not including Name.
	Args []string
	// The environment of the process. If nil, the current process's environment is used.
	Env []string
	// If Env is non-nil, adds the current process's PATH to Env.
	InheritPath bool
	// The working directory of the command. If empty, runs in the current process's
	// current directory.
	Dir string
	// See docs for osexec.Cmd.Stdin.
	Stdin io.Reader
	// If true, duplicates stdout of the command to WriteInfoLog.
	LogStdout bool
	// Sends the stdout of the command to this Writer, e.g. os.File or bytes.Buffer.
	Stdout io.Writer
	// If true, duplicates stderr of the command to WriteErrorLog.
	LogStderr bool
	// Sends the stderr of the command to this Writer, e.g. os.File or bytes.Buffer.
	Stderr io.Writer
	// Sends the combined stdout and stderr of the command to this Writer, in addition to
	// Stdout and Stderr.
	CombinedOutput io.Writer
	// Time limit to wait for the command to finish. No limit if not specified.
	Timeout time.Duration
}

// ParseCommand divides commandLine at spaces; treats the first token as the
// program name and the other tokens as arguments. Quotes are not handled.
func ParseCommand(commandLine string) Command {
	programAndArgs := strings.Split(commandLine, " ")
	return Command{Name: programAndArgs[0], Args: programAndArgs[1:]}
}

// DebugString returns the command line of c, e.g. "touch /tmp/file".
func DebugString(c *Command) string {
	return strings.TrimSpace(strings.Join(append([]string{c.Name}, c.Args...), " "))
}

// Given io.Writers or nils, return a single writer that writes to all, or nil if no non-nil
// writers.
func squashWriters(writers ...io.Writer) io.Writer {
	nonNil := []io.Writer{}
	for _, writer := range writers {
		if writer != nil {
			nonNil = append(nonNil, writer)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return io.MultiWriter(nonNil...)
	}
}

func createCmd(ctx context.Context, command *Command) *osexec.Cmd {
	cmd := osexec.CommandContext(ctx, command.Name, command.Args...)
	if len(command.Env) != 0 {
		cmd.Env = command.Env
		if command.InheritPath {
			cmd.Env = append(cmd.Env, "PATH="+os.Getenv("PATH"))
		}
	}
	cmd.Dir = command.Dir
	cmd.Stdin = command.Stdin
	var stdoutLog io.Writer
	if command.LogStdout {
		stdoutLog = WriteInfoLog
	}
	cmd.Stdout = squashWriters(stdoutLog, command.Stdout, command.CombinedOutput)
	var stderrLog io.Writer
	if command.LogStderr {
		stderrLog = WriteErrorLog
	}
	cmd.Stderr = squashWriters(stderrLog, command.Stderr, command.CombinedOutput)
	return cmd
}

// DefaultRun runs the command with os/exec, killing it once Timeout elapses.
func DefaultRun(ctx context.Context, command *Command) error {
	if command.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, command.Timeout)
		defer cancel()
	}
	cmd := createCmd(ctx, command)
	sklog.Infof("Executing %s", DebugString(command))
	if err := cmd.Start(); err != nil {
		return skerr.Wrapf(err, "unable to start command %s", DebugString(command))
	}
	err := cmd.Wait()
	if ctx.Err() == context.DeadlineExceeded && command.Timeout > 0 {
		sklog.Errorf("Command killed since it took longer than %f secs", command.Timeout.Seconds())
		return skerr.Fmt("command killed since it took longer than %f secs: %s", command.Timeout.Seconds(), DebugString(command))
	}
	if err != nil {
		sklog.Errorf("Command exited with %s: %s", err, DebugString(command))
		return skerr.Wrapf(err, "command exited with error: %s", DebugString(command))
	}
	return nil
}

type contextKeyType string

const contextKey contextKeyType = "perfsmokeExecRun"

// RunFn is the signature of the function that actually runs commands.
type RunFn func(context.Context, *Command) error

// NewContext returns a context that makes Run use runFn. Used by tests to
// avoid running real processes.
func NewContext(ctx context.Context, runFn RunFn) context.Context {
	return context.WithValue(ctx, contextKey, runFn)
}

// Run runs command and waits for it to finish. If any failure, returns non-nil.
// If a timeout was specified, returns an error once the command has exceeded
// that timeout.
func Run(ctx context.Context, command *Command) error {
	if runFn, ok := ctx.Value(contextKey).(RunFn); ok && runFn != nil {
		return runFn(ctx, command)
	}
	return DefaultRun(ctx, command)
}

// RunCwd executes the given command in the given directory. Returns the
// combined stdout and stderr.
func RunCwd(ctx context.Context, cwd string, args ...string) (string, error) {
	output := bytes.Buffer{}
	err := Run(ctx, &Command{
		Name:           args[0],
		Args:           args[1:],
		Dir:            cwd,
		CombinedOutput: &output,
	})
	return output.String(), err
}

// ExitCode converts the result of Run into a process exit status: 0 for nil,
// the child's status if it exited non-zero, and 1 for any other failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 1
}

// StatusError lets fake RunFns report a specific exit status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
