package policies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// KeyPolicy is the allowed/required field-name pair used by the key-set rule.
// Names compare exactly, case included.
type KeyPolicy struct {
	Allowed  []string
	Required []string
	allowed  map[string]struct{}
	required map[string]struct{}
}

func NewKeyPolicy(allowed []string, required []string) (KeyPolicy, error) {
	policy := KeyPolicy{
		Allowed:  dedupe(allowed),
		Required: dedupe(required),
	}
	policy.compile()
	var outside []string
	for _, name := range policy.Required {
		if _, ok := policy.allowed[name]; !ok {
			outside = append(outside, name)
		}
	}
	if len(outside) > 0 {
		return KeyPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("required keys are not allowed keys: %s", strings.Join(outside, ", ")))
	}
	return policy, nil
}

func (p *KeyPolicy) compile() {
	p.allowed = make(map[string]struct{}, len(p.Allowed))
	for _, name := range p.Allowed {
		p.allowed[name] = struct{}{}
	}
	p.required = make(map[string]struct{}, len(p.Required))
	for _, name := range p.Required {
		p.required[name] = struct{}{}
	}
}

func (p KeyPolicy) IsAllowed(name string) bool {
	_, ok := p.allowed[name]
	return ok
}

// Missing returns the required names absent from names, sorted.
func (p KeyPolicy) Missing(names []string) []string {
	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[name] = struct{}{}
	}
	var missing []string
	for name := range p.required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Extra returns the names outside the allowed set, in input order.
func (p KeyPolicy) Extra(names []string) []string {
	var extra []string
	for _, name := range names {
		if !p.IsAllowed(name) {
			extra = append(extra, name)
		}
	}
	return extra
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
