package cli

import (
	"context"

	"github.com/spf13/cobra"

	"precommit-hooks/internal/adapters"
	"precommit-hooks/internal/app"
	"precommit-hooks/internal/core"
	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

type recordHookOptions struct {
	TopLevelKey     string
	IdentifierField string
	IdentifierLabel string
	KeyField        string
	AllowedKeys     []string
	RequiredKeys    []string
	SchemaFile      string
}

var recordHookShort = map[types.HookName]string{
	types.HookVLANDuplicates: "Fail when a VLAN id appears more than once in a file",
	types.HookVLANKeys:       "Fail when a VLAN record has missing or unknown keys",
	types.HookVLANSchema:     "Fail when a VLAN record field has the wrong type or range",
}

func newRecordHookCommand(hook types.HookName) *cobra.Command {
	opts := recordHookOptions{}
	cmd := &cobra.Command{
		Use:   string(hook) + " [FILEPATH ...]",
		Short: recordHookShort[hook],
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordHook(cmd.Context(), cmd, hook, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.TopLevelKey, "top-level-key", policies.DefaultTopLevelKey, "Key holding the record list")
	cmd.Flags().StringVar(&opts.IdentifierField, "identifier-field", policies.DefaultIdentifierField, "Field naming a record in diagnostics")
	cmd.Flags().StringVar(&opts.IdentifierLabel, "identifier-label", policies.DefaultIdentifierLabel, "Label printed before the identifier")
	switch hook {
	case types.HookVLANDuplicates:
		cmd.Flags().StringVar(&opts.KeyField, "key-field", policies.DefaultKeyField, "Field that must be unique")
	case types.HookVLANKeys:
		cmd.Flags().StringSliceVar(&opts.AllowedKeys, "allowed-key", policies.DefaultAllowedKeys, "Allowed record keys")
		cmd.Flags().StringSliceVar(&opts.RequiredKeys, "required-key", policies.DefaultRequiredKeys, "Required record keys")
	case types.HookVLANSchema:
		cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "JSON schema for one record (default: embedded VLAN schema)")
	}
	return cmd
}

func runRecordHook(ctx context.Context, cmd *cobra.Command, hook types.HookName, opts recordHookOptions, paths []string) error {
	settings := policies.HookSettings{
		TopLevelKey:     resolveString(cmd, opts.TopLevelKey, keyTopLevelKey, "top-level-key"),
		IdentifierField: resolveString(cmd, opts.IdentifierField, keyIdentifierField, "identifier-field"),
		IdentifierLabel: resolveString(cmd, opts.IdentifierLabel, keyIdentifierLabel, "identifier-label"),
		KeyField:        resolveString(cmd, opts.KeyField, keyDuplicateField, "key-field"),
		AllowedKeys:     resolveStrings(cmd, opts.AllowedKeys, keyAllowedKeys, "allowed-key"),
		RequiredKeys:    resolveStrings(cmd, opts.RequiredKeys, keyRequiredKeys, "required-key"),
		SchemaFile:      resolveString(cmd, opts.SchemaFile, keySchemaFile, "schema"),
	}
	policy, err := policies.NewHookPolicy(hook, settings)
	if err != nil {
		return err
	}
	var schema ports.RulePort
	if hook == types.HookVLANSchema {
		rule, err := adapters.NewSchemaRuleAdapter(policy.SchemaFile)
		if err != nil {
			return err
		}
		schema = rule
	}
	rules, err := core.RulesForHook(policy, schema)
	if err != nil {
		return err
	}
	service := app.NewService(app.ServiceConfig{
		TopLevelKey: policy.TopLevelKey,
		Out:         cmd.OutOrStdout(),
	})
	result := service.CheckFiles(ctx, app.CheckRequest{
		Hook:    hook,
		Paths:   paths,
		Rules:   rules,
		Labeler: core.NewRecordLabeler(policy.IdentifierField, policy.IdentifierLabel),
	})
	return batchError(hook, result)
}
