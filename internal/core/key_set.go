package core

import (
	"fmt"

	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

// KeySetRule reports, per record, one violation naming all missing required
// fields and one violation for each field outside the allowed set. Both
// checks always run.
type KeySetRule struct {
	Policy policies.KeyPolicy
}

func NewKeySetRule(policy policies.KeyPolicy) KeySetRule {
	return KeySetRule{Policy: policy}
}

func (r KeySetRule) Name() types.RuleName {
	return types.RuleAllowedKeys
}

func (r KeySetRule) Check(records []types.Record) []types.Violation {
	var violations []types.Violation
	for _, record := range records {
		names := record.Names()
		if missing := r.Policy.Missing(names); len(missing) > 0 {
			violations = append(violations, types.Violation{
				RecordIndex: record.Index,
				Rule:        types.RuleRequiredKeys,
				Message:     fmt.Sprintf("Missing keys %v", missing),
			})
		}
		for _, name := range r.Policy.Extra(names) {
			violations = append(violations, types.Violation{
				RecordIndex: record.Index,
				Rule:        types.RuleAllowedKeys,
				Message:     fmt.Sprintf("Invalid key: %s", name),
			})
		}
	}
	return violations
}

var _ ports.RulePort = KeySetRule{}
