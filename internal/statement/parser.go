// Package statement parses bank statement exports into transactions.
package statement

import (
	"io"
	"strings"

	"github.com/bogie-dev/bogie/internal/model"
)

// Parser converts a statement export file into transaction skeletons.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Dialect() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate dialect.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Dialect())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser dialect: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for dialect, or nil.
func (r *Registry) Get(dialect string) Parser {
	return r.parsers[strings.ToLower(dialect)]
}
