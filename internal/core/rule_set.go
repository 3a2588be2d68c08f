package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

// RulesForHook builds the ordered rule list for a record hook. The schema
// rule is supplied by the caller because compiling it needs file access.
func RulesForHook(policy policies.HookPolicy, schema ports.RulePort) ([]ports.RulePort, error) {
	switch policy.Hook {
	case types.HookVLANDuplicates:
		return []ports.RulePort{NewUniquenessRule(policy.KeyField)}, nil
	case types.HookVLANKeys:
		return []ports.RulePort{NewKeySetRule(policy.Keys)}, nil
	case types.HookVLANSchema:
		if schema == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("schema hook requires a compiled schema")
		}
		return []ports.RulePort{schema}, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no rules for hook %s", policy.Hook))
	}
}
