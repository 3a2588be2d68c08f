package adapters

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"precommit-hooks/internal/ports"
	"precommit-hooks/internal/types"
)

//go:embed schemas/vlan.schema.json
var vlanSchemaJSON string

const (
	embeddedSchemaName = "vlan.schema.json"
	fileSchemaName     = "record.schema.json"
)

var schemaPrinter = message.NewPrinter(language.English)

// SchemaRuleAdapter validates each record against a compiled JSON schema.
type SchemaRuleAdapter struct {
	schema *jsonschema.Schema
}

// NewSchemaRuleAdapter compiles the schema at path, or the embedded VLAN
// schema when path is empty.
func NewSchemaRuleAdapter(path string) (SchemaRuleAdapter, error) {
	raw := vlanSchemaJSON
	url := embeddedSchemaName
	source := "embedded vlan schema"
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return SchemaRuleAdapter{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("schema file not readable").
				WithCause(err)
		}
		raw = string(data)
		url = fileSchemaName
		source = path
	}
	schema, err := compileSchema(raw, url, source)
	if err != nil {
		return SchemaRuleAdapter{}, err
	}
	return SchemaRuleAdapter{schema: schema}, nil
}

func compileSchema(raw string, url string, source string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse schema %s", source)).
			WithCause(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to add schema %s", source)).
			WithCause(err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to compile schema %s", source)).
			WithCause(err)
	}
	return schema, nil
}

func (a SchemaRuleAdapter) Name() types.RuleName {
	return types.RuleFieldTypes
}

func (a SchemaRuleAdapter) Check(records []types.Record) []types.Violation {
	var violations []types.Violation
	for _, record := range records {
		for _, msg := range a.validate(record.Interface()) {
			violations = append(violations, types.Violation{
				RecordIndex: record.Index,
				Rule:        a.Name(),
				Message:     msg,
			})
		}
	}
	return violations
}

func (a SchemaRuleAdapter) validate(instance any) []string {
	err := a.schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return msgs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(schemaPrinter)))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

var _ ports.RulePort = SchemaRuleAdapter{}
