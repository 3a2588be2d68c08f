package app

import (
	"io"
	"os"

	"precommit-hooks/internal/adapters"
	"precommit-hooks/internal/ports"
)

type Service struct {
	Records  ports.RecordLoaderPort
	Linter   ports.LinterPort
	Reporter ports.ReporterPort
}

type ServiceConfig struct {
	TopLevelKey string
	LintCommand string
	LintArgs    []string
	Out         io.Writer
}

func NewService(cfg ServiceConfig) Service {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return Service{
		Records:  adapters.NewRecordFileAdapter(cfg.TopLevelKey),
		Linter:   adapters.NewLinterExecAdapter(cfg.LintCommand, cfg.LintArgs, out),
		Reporter: adapters.NewTextReporterAdapter(out),
	}
}
