package types

type HookName string

const (
	HookVLANDuplicates HookName = "vlan-duplicates"
	HookVLANKeys       HookName = "vlan-keys"
	HookVLANSchema     HookName = "vlan-schema"
	HookAnsibleLint    HookName = "ansible-lint"
)

type RuleName string

const (
	RuleUniqueness   RuleName = "uniqueness"
	RuleRequiredKeys RuleName = "required-keys"
	RuleAllowedKeys  RuleName = "allowed-keys"
	RuleFieldTypes   RuleName = "field-types"
)

// ErrorKind classifies why a single file or unit failed. The zero value
// means the file passed.
type ErrorKind string

const (
	ErrorKindNone      ErrorKind = ""
	ErrorKindLoad      ErrorKind = "load"
	ErrorKindViolation ErrorKind = "violation"
	ErrorKindExternal  ErrorKind = "external"
)

type PathKind string

const (
	PathKindStandalone PathKind = "standalone"
	PathKindUnitMember PathKind = "unit-member"
)
