package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("not found")

// Command is one spawn request: argv split into name and args, run in Dir.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// Capture holds what a finished process left behind.
type Capture struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

type DefaultExecutor struct {
	LookupFunc func(name, dir string) (string, bool)
}

// NewDefaultExecutor resolves commands against the PATH of the current process.
func NewDefaultExecutor() *DefaultExecutor {
	return &DefaultExecutor{LookupFunc: NewPathLookup(os.Getenv("PATH"))}
}

func (e *DefaultExecutor) Execute(ctx context.Context, cmd Command) (Capture, error) {

	path, ok := e.LookupFunc(cmd.Name, cmd.Dir)

	if !ok {
		return Capture{ExitCode: -1}, ErrNotFound
	}

	var stdout, stderr bytes.Buffer

	externalCmd := exec.CommandContext(ctx, path, cmd.Args...)
	externalCmd.Args = append([]string{cmd.Name}, cmd.Args...)
	externalCmd.Dir = cmd.Dir
	externalCmd.Stdout = &stdout
	externalCmd.Stderr = &stderr

	if err := externalCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Capture{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), ExitCode: exitErr.ExitCode()}, nil
		}

		return Capture{ExitCode: -1}, fmt.Errorf("start %s: %w", cmd.Name, err)
	}

	return Capture{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil

}

// NewPathLookup returns a lookup over the given PATH list. Names that contain a
// path separator skip PATH and resolve against the working directory instead.
func NewPathLookup(path string) func(name, dir string) (string, bool) {
	var dirs []string

	if path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}

	return func(name, dir string) (string, bool) {
		if strings.ContainsRune(name, filepath.Separator) {
			candidate := name
			if !filepath.IsAbs(candidate) {
				candidate = filepath.Join(dir, candidate)
			}
			return candidate, isExecutable(candidate)
		}

		for _, pathDir := range dirs {
			if pathDir == "" {
				continue
			}

			pathToCheck := filepath.Join(pathDir, name)

			if isExecutable(pathToCheck) {
				return pathToCheck, true
			}
		}

		return "", false
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}
