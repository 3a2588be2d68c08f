package core

import "precommit-hooks/internal/types"

// RunBatch folds check over paths in order. Every path is visited; a failure
// never stops the fold.
func RunBatch(paths []string, check func(path string) types.FileOutcome) types.BatchResult {
	result := types.BatchResult{}
	for _, p := range paths {
		result = result.With(check(p))
	}
	return result
}

// CheckedSet remembers which unit targets were already handed to the linter
// during one run.
type CheckedSet struct {
	seen map[string]struct{}
}

func NewCheckedSet() *CheckedSet {
	return &CheckedSet{seen: map[string]struct{}{}}
}

// Mark records target and reports whether it was new.
func (s *CheckedSet) Mark(target string) bool {
	if _, ok := s.seen[target]; ok {
		return false
	}
	s.seen[target] = struct{}{}
	return true
}

func (s *CheckedSet) Len() int {
	return len(s.seen)
}
