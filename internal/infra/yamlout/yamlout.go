// Package yamlout renders values as YAML documents for console output.
package yamlout

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"
)

const indent = 2

// Write encodes each doc as its own YAML document ("---" separated).
func Write(w io.Writer, docs ...any) error {
	if len(docs) == 0 {
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)

	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return &domain.OpError{
				Op:   "yamlout.write",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
	}

	if err := enc.Close(); err != nil {
		return &domain.OpError{
			Op:   "yamlout.close",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return nil
}
