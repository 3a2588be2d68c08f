package cli

import (
	"context"

	"github.com/spf13/cobra"

	"precommit-hooks/internal/app"
	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/types"
)

type lintOptions struct {
	Command  string
	Args     []string
	UnitDirs []string
}

func newAnsibleLintCommand() *cobra.Command {
	opts := lintOptions{}
	cmd := &cobra.Command{
		Use:   string(types.HookAnsibleLint) + " [FILEPATH ...]",
		Short: "Run ansible-lint once per changed playbook or role",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnsibleLint(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Command, "lint-command", policies.DefaultLintCommand, "Linter executable")
	cmd.Flags().StringArrayVar(&opts.Args, "lint-arg", nil, "Extra argument passed to the linter (repeatable)")
	cmd.Flags().StringSliceVar(&opts.UnitDirs, "unit-dir", policies.DefaultUnitDirs, "Directory names whose children are linted as one unit")
	return cmd
}

func runAnsibleLint(ctx context.Context, cmd *cobra.Command, opts lintOptions, paths []string) error {
	service := app.NewService(app.ServiceConfig{
		LintCommand: resolveString(cmd, opts.Command, keyLintCommand, "lint-command"),
		LintArgs:    resolveStrings(cmd, opts.Args, keyLintArgs, "lint-arg"),
		Out:         cmd.OutOrStdout(),
	})
	result := service.LintFiles(ctx, app.LintRequest{
		Paths:    paths,
		UnitDirs: resolveStrings(cmd, opts.UnitDirs, keyLintUnitDirs, "unit-dir"),
	})
	return batchError(types.HookAnsibleLint, result)
}
