package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"precommit-hooks/internal/types"
)

const (
	DefaultTopLevelKey     = "site_vlans"
	DefaultIdentifierField = "vlan_id"
	DefaultIdentifierLabel = "Vlan"
	DefaultKeyField        = "vlan_id"
	DefaultLintCommand     = "ansible-lint"
)

var (
	DefaultAllowedKeys  = []string{"vlan_name", "vlan_id", "tags"}
	DefaultRequiredKeys = []string{"vlan_name", "vlan_id", "tags"}
	DefaultUnitDirs     = []string{"roles"}
)

// HookSettings is the raw, user-supplied configuration of a record hook.
type HookSettings struct {
	TopLevelKey     string
	IdentifierField string
	IdentifierLabel string
	KeyField        string
	AllowedKeys     []string
	RequiredKeys    []string
	SchemaFile      string
}

// HookPolicy is the validated configuration for one record hook.
type HookPolicy struct {
	Hook            types.HookName
	TopLevelKey     string
	IdentifierField string
	IdentifierLabel string
	KeyField        string
	Keys            KeyPolicy
	SchemaFile      string
}

func DefaultHookSettings() HookSettings {
	return HookSettings{
		TopLevelKey:     DefaultTopLevelKey,
		IdentifierField: DefaultIdentifierField,
		IdentifierLabel: DefaultIdentifierLabel,
		KeyField:        DefaultKeyField,
		AllowedKeys:     append([]string(nil), DefaultAllowedKeys...),
		RequiredKeys:    append([]string(nil), DefaultRequiredKeys...),
	}
}

func NewHookPolicy(hook types.HookName, settings HookSettings) (HookPolicy, error) {
	policy := HookPolicy{
		Hook:            hook,
		TopLevelKey:     strings.TrimSpace(settings.TopLevelKey),
		IdentifierField: strings.TrimSpace(settings.IdentifierField),
		IdentifierLabel: strings.TrimSpace(settings.IdentifierLabel),
		KeyField:        strings.TrimSpace(settings.KeyField),
		SchemaFile:      strings.TrimSpace(settings.SchemaFile),
	}
	if policy.TopLevelKey == "" {
		return HookPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("top level key is required")
	}
	if policy.IdentifierLabel == "" {
		policy.IdentifierLabel = DefaultIdentifierLabel
	}
	switch hook {
	case types.HookVLANDuplicates:
		if policy.KeyField == "" {
			return HookPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("duplicate check requires a key field")
		}
	case types.HookVLANKeys:
		keys, err := NewKeyPolicy(settings.AllowedKeys, settings.RequiredKeys)
		if err != nil {
			return HookPolicy{}, err
		}
		policy.Keys = keys
	case types.HookVLANSchema:
	default:
		return HookPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("hook %s does not check records", hook))
	}
	return policy, nil
}
