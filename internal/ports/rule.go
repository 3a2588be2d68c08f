package ports

import "precommit-hooks/internal/types"

// RulePort checks a record list against one structural constraint. Rules are
// pure: they never mutate the records and never fail.
type RulePort interface {
	Name() types.RuleName
	Check(records []types.Record) []types.Violation
}
