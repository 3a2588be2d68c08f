package ports

import "precommit-hooks/internal/types"

// RecordLoaderPort decodes a file into its ordered record list. Any failure
// (missing file, unreadable file, malformed document) is a load error.
type RecordLoaderPort interface {
	LoadRecords(path string) ([]types.Record, error)
}
