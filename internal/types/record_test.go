package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKey(t *testing.T) {
	tests := []struct {
		name  string
		a     Value
		b     Value
		equal bool
	}{
		{name: "same int", a: Int(10), b: Int(10), equal: true},
		{name: "int and integral float", a: Int(10), b: Float(10), equal: true},
		{name: "int and string", a: Int(10), b: String("10"), equal: false},
		{name: "null and zero value", a: Null(), b: Value{}, equal: true},
		{name: "bool and string", a: Bool(true), b: String("true"), equal: false},
		{name: "lists by content", a: List(String("a"), Int(1)), b: List(String("a"), Int(1)), equal: true},
		{name: "lists by order", a: List(String("a"), String("b")), b: List(String("b"), String("a")), equal: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Key() == tt.b.Key())
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "10", Int(10).String())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "[core edge]", List(String("core"), String("edge")).String())
	assert.Equal(t, "null", Null().String())
}

func TestRecordAccessors(t *testing.T) {
	record := NewRecord(2,
		Field{Name: "vlan_id", Value: Int(5)},
		Field{Name: "vlan_name", Value: String("mgmt")},
	)
	value, ok := record.Get("vlan_id")
	require.True(t, ok)
	assert.Equal(t, Int(5), value)
	assert.False(t, record.Has("tags"))
	if diff := cmp.Diff([]string{"vlan_id", "vlan_name"}, record.Names()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}

func TestRecordInterface(t *testing.T) {
	record := NewRecord(0,
		Field{Name: "vlan_id", Value: Int(5)},
		Field{Name: "tags", Value: List(String("a"))},
		Field{Name: "enabled", Value: Bool(true)},
		Field{Name: "note", Value: Null()},
	)
	want := map[string]any{
		"vlan_id": json.Number("5"),
		"tags":    []any{"a"},
		"enabled": true,
		"note":    nil,
	}
	if diff := cmp.Diff(want, record.Interface()); diff != "" {
		t.Fatalf("unexpected instance (-want +got):\n%s", diff)
	}
}

func TestBatchResultWithIsSticky(t *testing.T) {
	result := BatchResult{}
	result = result.With(FileOutcome{Path: "a.yml"})
	assert.False(t, result.Failed)
	result = result.With(FileOutcome{Path: "b.yml", Kind: ErrorKindLoad})
	assert.True(t, result.Failed)
	result = result.With(FileOutcome{Path: "c.yml"})
	assert.True(t, result.Failed)
	assert.Equal(t, 1, result.FailedCount())
	assert.Len(t, result.Outcomes, 3)
}

func TestUnitPathTarget(t *testing.T) {
	assert.Equal(t, "site.yml", StandaloneFile("site.yml").Target())
	assert.Equal(t, "roles/foo", UnitMember("roles/foo", "roles/foo/tasks/main.yml").Target())
}

func TestViolationString(t *testing.T) {
	v := Violation{File: "vlans.yml", Context: "Vlan: 10", Message: "vlan_id 10 appears more than once"}
	assert.Equal(t, "File: vlans.yml - Vlan: 10 - vlan_id 10 appears more than once", v.String())
}
