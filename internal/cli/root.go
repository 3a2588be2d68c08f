package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PRECOMMIT_HOOKS"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "precommit-hooks",
		Short:        "Pre-commit checks for network configuration repositories",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newRecordHookCommand(types.HookVLANDuplicates))
	cmd.AddCommand(newRecordHookCommand(types.HookVLANKeys))
	cmd.AddCommand(newRecordHookCommand(types.HookVLANSchema))
	cmd.AddCommand(newAnsibleLintCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("precommit-hooks")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/precommit-hooks")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(keyTopLevelKey, policies.DefaultTopLevelKey)
	viper.SetDefault(keyIdentifierField, policies.DefaultIdentifierField)
	viper.SetDefault(keyIdentifierLabel, policies.DefaultIdentifierLabel)
	viper.SetDefault(keyDuplicateField, policies.DefaultKeyField)
	viper.SetDefault(keyAllowedKeys, policies.DefaultAllowedKeys)
	viper.SetDefault(keyRequiredKeys, policies.DefaultRequiredKeys)
	viper.SetDefault(keySchemaFile, "")
	viper.SetDefault(keyLintCommand, policies.DefaultLintCommand)
	viper.SetDefault(keyLintArgs, []string{})
	viper.SetDefault(keyLintUnitDirs, policies.DefaultUnitDirs)
}

// setupLogging writes to stderr; stdout carries the diagnostic lines.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	default:
		return 1
	}
}

// batchError turns a failed batch into the error that sets the exit status.
func batchError(hook types.HookName, result types.BatchResult) error {
	if !result.Failed {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %d of %d files failed", hook, result.FailedCount(), len(result.Outcomes)))
}
