package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precommit-hooks/internal/types"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRecordsKeepsOrderAndTypes(t *testing.T) {
	path := writeFile(t, "vlans.yml", `
site_vlans:
  - vlan_name: mgmt
    vlan_id: 10
    tags: [core, edge]
  - vlan_id: 0x14
    vlan_name: "20"
    enabled: true
    note:
`)
	records, err := NewRecordFileAdapter("site_vlans").LoadRecords(path)
	require.NoError(t, err)

	want := []types.Record{
		types.NewRecord(0,
			types.Field{Name: "vlan_name", Value: types.String("mgmt")},
			types.Field{Name: "vlan_id", Value: types.Int(10)},
			types.Field{Name: "tags", Value: types.List(types.String("core"), types.String("edge"))},
		),
		types.NewRecord(1,
			types.Field{Name: "vlan_id", Value: types.Int(20)},
			types.Field{Name: "vlan_name", Value: types.String("20")},
			types.Field{Name: "enabled", Value: types.Bool(true)},
			types.Field{Name: "note", Value: types.Null()},
		),
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestLoadRecordsResolvesAliases(t *testing.T) {
	path := writeFile(t, "vlans.yml", `
common: &tags [core]
site_vlans:
  - vlan_id: 10
    tags: *tags
`)
	records, err := NewRecordFileAdapter("site_vlans").LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	tags, ok := records[0].Get("tags")
	require.True(t, ok)
	assert.Equal(t, types.List(types.String("core")), tags)
}

func TestLoadRecordsEmptyList(t *testing.T) {
	for _, content := range []string{"site_vlans: []\n", "site_vlans:\n"} {
		path := writeFile(t, "vlans.yml", content)
		records, err := NewRecordFileAdapter("site_vlans").LoadRecords(path)
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestLoadRecordsFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "site_vlans: [\n"},
		{name: "empty file", content: ""},
		{name: "top level list", content: "- vlan_id: 1\n"},
		{name: "missing key", content: "other: []\n"},
		{name: "not a list", content: "site_vlans: 10\n"},
		{name: "record not a mapping", content: "site_vlans:\n  - 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "vlans.yml", tt.content)
			_, err := NewRecordFileAdapter("site_vlans").LoadRecords(path)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := NewRecordFileAdapter("site_vlans").LoadRecords(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
