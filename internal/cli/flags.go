package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyTopLevelKey     = "records.top_level_key"
	keyIdentifierField = "records.identifier_field"
	keyIdentifierLabel = "records.identifier_label"
	keyDuplicateField  = "duplicates.key_field"
	keyAllowedKeys     = "keys.allowed"
	keyRequiredKeys    = "keys.required"
	keySchemaFile      = "schema.file"
	keyLintCommand     = "lint.command"
	keyLintArgs        = "lint.args"
	keyLintUnitDirs    = "lint.unit_dirs"
)

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
