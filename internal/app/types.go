package app

import (
	"precommit-hooks/internal/core"
	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

type CheckRequest struct {
	Hook    types.HookName
	Paths   []string
	Rules   []ports.RulePort
	Labeler core.RecordLabeler
}

type LintRequest struct {
	Paths    []string
	UnitDirs []string
}
