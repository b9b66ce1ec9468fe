package status

import (
	"context"
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Runner executes an external command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec. A command that cannot start or
// exits non-zero is logged and returned as an error; no partial output is
// produced.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		log.Errorf("Command %s failed: %v", name, err)
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	return string(out), nil
}
