package core

import (
	"fmt"

	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

// UniquenessRule flags every record whose key field value was already seen
// earlier in the list. The first occurrence is never flagged. A record
// without the key field is keyed as null, so two such records collide.
type UniquenessRule struct {
	KeyField string
}

func NewUniquenessRule(keyField string) UniquenessRule {
	return UniquenessRule{KeyField: keyField}
}

func (r UniquenessRule) Name() types.RuleName {
	return types.RuleUniqueness
}

func (r UniquenessRule) Check(records []types.Record) []types.Violation {
	seen := make(map[string]struct{}, len(records))
	var violations []types.Violation
	for _, record := range records {
		value, ok := record.Get(r.KeyField)
		if !ok {
			value = types.Null()
		}
		key := value.Key()
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			continue
		}
		violations = append(violations, types.Violation{
			RecordIndex: record.Index,
			Rule:        r.Name(),
			Message:     fmt.Sprintf("%s %s appears more than once", r.KeyField, value),
		})
	}
	return violations
}

var _ ports.RulePort = UniquenessRule{}
