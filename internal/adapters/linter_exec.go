package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"precommit-hooks/internal/ports"
)

// LinterExecAdapter runs an external linter once per target. The linter's
// own output is passed through to Out untouched.
type LinterExecAdapter struct {
	Command string
	Args    []string
	Out     io.Writer
}

func NewLinterExecAdapter(command string, args []string, out io.Writer) LinterExecAdapter {
	if out == nil {
		out = os.Stdout
	}
	return LinterExecAdapter{Command: command, Args: args, Out: out}
}

func (a LinterExecAdapter) Lint(ctx context.Context, target string) error {
	if strings.TrimSpace(a.Command) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lint command is empty")
	}
	args := append(append([]string(nil), a.Args...), filepath.FromSlash(target))
	log.Debug().
		Str("command", a.Command).
		Strs("args", args).
		Msg("running linter")
	//nolint:gosec // the linter command comes from the hook configuration
	cmd := exec.CommandContext(ctx, a.Command, args...)
	cmd.Stdout = a.Out
	cmd.Stderr = a.Out
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s reported problems in %s (exit code %d)", a.Command, target, exitErr.ExitCode()))
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("failed to run %s", a.Command)).
		WithCause(err)
}

var _ ports.LinterPort = LinterExecAdapter{}
