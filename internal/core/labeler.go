package core

import (
	"fmt"

	"precommit-hooks/internal/types"
)

// RecordLabeler renders the context column of a diagnostic line.
type RecordLabeler struct {
	IdentifierField string
	Prefix          string
}

func NewRecordLabeler(identifierField string, prefix string) RecordLabeler {
	return RecordLabeler{IdentifierField: identifierField, Prefix: prefix}
}

// Label falls back to the 1-based record position when the identifier
// field is absent or null.
func (l RecordLabeler) Label(record types.Record) string {
	if l.IdentifierField != "" {
		if value, ok := record.Get(l.IdentifierField); ok && !value.IsNull() {
			return fmt.Sprintf("%s: %s", l.Prefix, value)
		}
	}
	return fmt.Sprintf("Record: #%d", record.Index+1)
}
