package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"precommit-hooks/internal/core"
	"precommit-hooks/internal/types"
)

// LintFiles hands each distinct target to the external linter. Files inside
// a role collapse to the role root, and a root already linted in this run is
// skipped.
func (s Service) LintFiles(ctx context.Context, req LintRequest) types.BatchResult {
	checked := core.NewCheckedSet()
	result := core.RunBatch(req.Paths, func(path string) types.FileOutcome {
		unit := core.ClassifyPath(path, req.UnitDirs)
		target := unit.Target()
		outcome := types.FileOutcome{Path: path, Target: target}
		if !checked.Mark(target) {
			log.Debug().Str("path", path).Str("unit", target).Msg("unit already linted")
			outcome.Skipped = true
			return outcome
		}
		if err := s.Linter.Lint(ctx, target); err != nil {
			log.Warn().Err(err).Str("target", target).Msg("linter failed")
			outcome.Kind = types.ErrorKindExternal
			outcome.Err = err
		}
		return outcome
	})
	log.Debug().
		Int("files", len(result.Outcomes)).
		Int("targets", checked.Len()).
		Int("skipped", result.SkippedCount()).
		Int("failed", result.FailedCount()).
		Msg("lint finished")
	return result
}
