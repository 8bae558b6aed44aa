package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			fmt.Fprintf(stderr, FmtErrorWithCause, ee.msg, ee.err)
			return ee.code
		}
		// flag and argument errors reported by cobra
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUsage, err)
		return ExitCodeUsageError
	}
	return ExitCodeSuccess
}

// exitError carries the exit code of a failed command
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf(FmtErrorPlain, e.msg, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newExitError(code int, msg string, err error) error {
	return &exitError{code: code, msg: msg, err: err}
}
