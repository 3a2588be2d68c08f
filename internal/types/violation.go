package types

import "fmt"

// Violation is one rule failure for one record. Rules fill RecordIndex, Rule
// and Message; the per-file validator stamps File and Context.
type Violation struct {
	File        string
	RecordIndex int
	Context     string
	Rule        RuleName
	Message     string
}

func (v Violation) String() string {
	return fmt.Sprintf("File: %s - %s - %s", v.File, v.Context, v.Message)
}

// UnitPath is the classification of an input path for the external linter:
// either a standalone file or a member of a unit rooted at Root.
type UnitPath struct {
	Kind PathKind
	Path string
	Root string
}

func StandaloneFile(path string) UnitPath {
	return UnitPath{Kind: PathKindStandalone, Path: path}
}

func UnitMember(root string, path string) UnitPath {
	return UnitPath{Kind: PathKindUnitMember, Path: path, Root: root}
}

// Target is what the linter is invoked on.
func (u UnitPath) Target() string {
	if u.Kind == PathKindUnitMember {
		return u.Root
	}
	return u.Path
}

type FileOutcome struct {
	Path       string
	Target     string
	Kind       ErrorKind
	Skipped    bool
	Violations []Violation
	Err        error
}

func (o FileOutcome) Failed() bool {
	return o.Kind != ErrorKindNone
}

type BatchResult struct {
	Outcomes []FileOutcome
	Failed   bool
}

// With returns the result extended by one outcome. Failed is sticky.
func (r BatchResult) With(outcome FileOutcome) BatchResult {
	outcomes := make([]FileOutcome, len(r.Outcomes), len(r.Outcomes)+1)
	copy(outcomes, r.Outcomes)
	return BatchResult{
		Outcomes: append(outcomes, outcome),
		Failed:   r.Failed || outcome.Failed(),
	}
}

func (r BatchResult) FailedCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Failed() {
			count++
		}
	}
	return count
}

func (r BatchResult) SkippedCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Skipped {
			count++
		}
	}
	return count
}
