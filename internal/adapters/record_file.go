package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

// RecordFileAdapter loads records from a YAML document shaped as
// `{<TopLevelKey>: [ {field: value, ...}, ... ]}`.
type RecordFileAdapter struct {
	TopLevelKey string
}

func NewRecordFileAdapter(topLevelKey string) RecordFileAdapter {
	return RecordFileAdapter{TopLevelKey: topLevelKey}
}

func (a RecordFileAdapter) LoadRecords(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("record file not readable").
			WithCause(err)
	}
	return a.DecodeRecords(data)
}

func (a RecordFileAdapter) DecodeRecords(data []byte) ([]types.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse record yaml").
			WithCause(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, invalidRecords("record file is empty")
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, invalidRecords("record file top level is not a mapping")
	}
	list := lookupKey(root, a.TopLevelKey)
	if list == nil {
		return nil, invalidRecords(fmt.Sprintf("record file has no %q key", a.TopLevelKey))
	}
	list = resolveAlias(list)
	if isNullNode(list) {
		return nil, nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, invalidRecords(fmt.Sprintf("%q is not a list", a.TopLevelKey))
	}
	records := make([]types.Record, 0, len(list.Content))
	for idx, item := range list.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, invalidRecords(fmt.Sprintf("%s[%d] is not a mapping", a.TopLevelKey, idx))
		}
		fields, err := decodeFields(item)
		if err != nil {
			return nil, err
		}
		records = append(records, types.NewRecord(idx, fields...))
	}
	return records, nil
}

func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func decodeFields(mapping *yaml.Node) ([]types.Field, error) {
	fields := make([]types.Field, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		value, err := decodeValue(mapping.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, types.Field{Name: mapping.Content[i].Value, Value: value})
	}
	return fields, nil
}

func decodeValue(node *yaml.Node) (types.Value, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.SequenceNode:
		items := make([]types.Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeValue(child)
			if err != nil {
				return types.Value{}, err
			}
			items = append(items, item)
		}
		return types.List(items...), nil
	case yaml.MappingNode:
		fields, err := decodeFields(node)
		if err != nil {
			return types.Value{}, err
		}
		return types.Map(fields...), nil
	case yaml.ScalarNode:
		return decodeScalar(node)
	default:
		return types.Null(), nil
	}
}

func decodeScalar(node *yaml.Node) (types.Value, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return types.Value{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid value at line %d", node.Line)).
			WithCause(err)
	}
	switch value := raw.(type) {
	case nil:
		return types.Null(), nil
	case string:
		return types.String(value), nil
	case bool:
		return types.Bool(value), nil
	case int:
		return types.Int(int64(value)), nil
	case int64:
		return types.Int(value), nil
	case uint64:
		return types.Uint(value), nil
	case float64:
		return types.Float(value), nil
	default:
		return types.String(node.Value), nil
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNullNode(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func invalidRecords(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

var _ ports.RecordLoaderPort = RecordFileAdapter{}
