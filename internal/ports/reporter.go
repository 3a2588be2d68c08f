package ports

import "precommit-hooks/internal/types"

type ReporterPort interface {
	ReportViolation(violation types.Violation)
	ReportLoadFailure(path string)
}
