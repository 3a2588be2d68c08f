package adapters

import (
	"fmt"
	"io"
	"os"

	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

// TextReporterAdapter prints one line per problem.
type TextReporterAdapter struct {
	Out io.Writer
}

func NewTextReporterAdapter(out io.Writer) TextReporterAdapter {
	if out == nil {
		out = os.Stdout
	}
	return TextReporterAdapter{Out: out}
}

func (a TextReporterAdapter) ReportViolation(violation types.Violation) {
	fmt.Fprintln(a.Out, violation.String())
}

func (a TextReporterAdapter) ReportLoadFailure(path string) {
	fmt.Fprintf(a.Out, "Something went wrong opening the file: %s\n", path)
}

var _ ports.ReporterPort = TextReporterAdapter{}
