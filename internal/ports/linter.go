package ports

import "context"

// LinterPort runs the external linter on a file or unit root. A nil error
// means the target passed.
type LinterPort interface {
	Lint(ctx context.Context, target string) error
}
