package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"precommit-hooks/internal/core"
	"precommit-hooks/internal/types"
)

// CheckFiles runs the per-file validator over every path and folds the
// outcomes. It never stops early.
func (s Service) CheckFiles(ctx context.Context, req CheckRequest) types.BatchResult {
	assert.NotEmpty(ctx, string(req.Hook), "hook must be set")
	result := core.RunBatch(req.Paths, func(path string) types.FileOutcome {
		return s.CheckFile(ctx, path, req)
	})
	log.Debug().
		Str("hook", string(req.Hook)).
		Int("files", len(result.Outcomes)).
		Int("failed", result.FailedCount()).
		Msg("record check finished")
	return result
}

// CheckFile loads one file and applies every rule in req. A load failure is
// reported once and no rule runs.
func (s Service) CheckFile(_ context.Context, path string, req CheckRequest) types.FileOutcome {
	outcome := types.FileOutcome{Path: path, Target: path}
	records, err := s.Records.LoadRecords(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("record file failed to load")
		s.Reporter.ReportLoadFailure(path)
		outcome.Kind = types.ErrorKindLoad
		outcome.Err = err
		return outcome
	}
	log.Debug().Str("path", path).Int("records", len(records)).Msg("record file loaded")

	byIndex := make(map[int]types.Record, len(records))
	for _, record := range records {
		byIndex[record.Index] = record
	}
	for _, rule := range req.Rules {
		found := rule.Check(records)
		log.Debug().
			Str("path", path).
			Str("rule", string(rule.Name())).
			Int("violations", len(found)).
			Msg("rule checked")
		for _, violation := range found {
			violation.File = path
			violation.Context = req.Labeler.Label(byIndex[violation.RecordIndex])
			s.Reporter.ReportViolation(violation)
			outcome.Violations = append(outcome.Violations, violation)
		}
	}
	if len(outcome.Violations) > 0 {
		outcome.Kind = types.ErrorKindViolation
	}
	return outcome
}
