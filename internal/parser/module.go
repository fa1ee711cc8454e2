package parser

import (
	"fmt"

	"github.com/aaurelions/combicode/internal/loggy"
)

// Recognizer is a language module that extracts structural elements from
// source text.
type Recognizer interface {
	// Name returns the name of the language this recognizer handles
	Name() string
	// CanHandle returns true if this recognizer handles the given extension
	CanHandle(ext string) bool
	// Scan returns the flat element list found in the content
	Scan(content string, lines []string) []*Element
}

// Registry manages and provides access to language recognizers
type Registry struct {
	logger      *loggy.Logger
	recognizers []Recognizer
}

// NewRegistry creates a new recognizer registry
func NewRegistry(logger *loggy.Logger) *Registry {
	return &Registry{
		logger:      logger,
		recognizers: make([]Recognizer, 0),
	}
}

// Register adds a recognizer to the registry
func (r *Registry) Register(rec Recognizer) {
	r.recognizers = append(r.recognizers, rec)
}

// ForExtension returns the recognizer that handles the given file extension
func (r *Registry) ForExtension(ext string) (Recognizer, error) {
	for _, rec := range r.recognizers {
		if rec.CanHandle(ext) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("no recognizer found for extension: %s", ext)
}
