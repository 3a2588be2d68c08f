package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precommit-hooks/internal/adapters"
	"precommit-hooks/internal/app"
	"precommit-hooks/internal/core"
	"precommit-hooks/internal/policies"
	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
	"precommit-hooks/tests/testutil"
)

// runHook wires a record hook the same way the CLI does:
//
//	settings -> policy -> rules -> service -> batch result
func runHook(t *testing.T, hook types.HookName, paths ...string) (types.BatchResult, string) {
	t.Helper()
	policy, err := policies.NewHookPolicy(hook, policies.DefaultHookSettings())
	require.NoError(t, err)
	var schema ports.RulePort
	if hook == types.HookVLANSchema {
		rule, err := adapters.NewSchemaRuleAdapter(policy.SchemaFile)
		require.NoError(t, err)
		schema = rule
	}
	rules, err := core.RulesForHook(policy, schema)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	service := app.NewService(app.ServiceConfig{TopLevelKey: policy.TopLevelKey, Out: out})
	result := service.CheckFiles(context.Background(), app.CheckRequest{
		Hook:    hook,
		Paths:   paths,
		Rules:   rules,
		Labeler: core.NewRecordLabeler(policy.IdentifierField, policy.IdentifierLabel),
	})
	return result, out.String()
}

func TestValidFixturePassesEveryRecordHook(t *testing.T) {
	valid := testutil.Fixture(t, "vlans-valid.yml")
	for _, hook := range []types.HookName{types.HookVLANDuplicates, types.HookVLANKeys, types.HookVLANSchema} {
		t.Run(string(hook), func(t *testing.T) {
			result, out := runHook(t, hook, valid)
			assert.False(t, result.Failed)
			assert.Empty(t, out)
		})
	}
}

func TestDuplicatesFixture(t *testing.T) {
	path := testutil.Fixture(t, "vlans-duplicates.yml")
	result, out := runHook(t, types.HookVLANDuplicates, path)

	assert.True(t, result.Failed)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "File: "+path+" - Vlan: 10 - vlan_id 10 appears more than once", lines[0])
	assert.Equal(t, "File: "+path+" - Vlan: 20 - vlan_id 20 appears more than once", lines[1])
	assert.Equal(t, "File: "+path+" - Vlan: 20 - vlan_id 20 appears more than once", lines[2])
}

func TestBadKeysFixture(t *testing.T) {
	path := testutil.Fixture(t, "vlans-bad-keys.yml")
	result, out := runHook(t, types.HookVLANKeys, path)

	assert.True(t, result.Failed)
	want := "File: " + path + " - Vlan: 30 - Missing keys [vlan_name]\n" +
		"File: " + path + " - Vlan: 30 - Invalid key: vrf\n"
	assert.Equal(t, want, out)
}

func TestBadTypesFixture(t *testing.T) {
	path := testutil.Fixture(t, "vlans-bad-types.yml")
	result, out := runHook(t, types.HookVLANSchema, path)

	assert.True(t, result.Failed)
	require.Len(t, result.Outcomes, 1)
	violations := result.Outcomes[0].Violations
	require.Len(t, violations, 3)
	assert.Contains(t, violations[0].Message, "/vlan_id")
	assert.Equal(t, "Vlan: 5000", violations[0].Context)
	assert.Equal(t, "Vlan: 30", violations[1].Context)
	assert.Equal(t, "Vlan: 30", violations[2].Context)
	assert.Equal(t, 3, strings.Count(out, "File: "+path))
}

func TestMalformedAndMissingFilesFailOnce(t *testing.T) {
	malformed := testutil.Fixture(t, "vlans-malformed.yml")
	valid := testutil.Fixture(t, "vlans-valid.yml")
	missing := malformed + ".absent"

	result, out := runHook(t, types.HookVLANKeys, malformed, valid, missing)

	assert.True(t, result.Failed)
	assert.Equal(t, 2, result.FailedCount())
	assert.Equal(t, 1, strings.Count(out, "Something went wrong opening the file: "+malformed+"\n"))
	assert.Equal(t, 1, strings.Count(out, "Something went wrong opening the file: "+missing+"\n"))
	assert.Equal(t, types.ErrorKindLoad, result.Outcomes[0].Kind)
	assert.Equal(t, types.ErrorKindNone, result.Outcomes[1].Kind)
	assert.Equal(t, types.ErrorKindLoad, result.Outcomes[2].Kind)
}

func TestRecordHooksAreIdempotent(t *testing.T) {
	paths := []string{
		testutil.Fixture(t, "vlans-duplicates.yml"),
		testutil.Fixture(t, "vlans-bad-keys.yml"),
		testutil.Fixture(t, "vlans-valid.yml"),
	}
	first, firstOut := runHook(t, types.HookVLANKeys, paths...)
	second, secondOut := runHook(t, types.HookVLANKeys, paths...)
	assert.Equal(t, first.Failed, second.Failed)
	assert.Equal(t, firstOut, secondOut)
}
