package parser

import (
	"path/filepath"
	"strings"

	"github.com/aaurelions/combicode/internal/loggy"
)

// Service provides code structure extraction
type Service struct {
	logger           *loggy.Logger
	languageDetector *LanguageDetector
	registry         *Registry
}

// NewService creates a new parser service with all language recognizers
// registered.
func NewService(logger *loggy.Logger) *Service {
	s := &Service{
		logger:           logger,
		languageDetector: NewLanguageDetector(logger),
		registry:         NewRegistry(logger),
	}

	s.registerDefaultRecognizers()

	return s
}

func (s *Service) registerDefaultRecognizers() {
	s.registry.Register(newPythonRecognizer())
	s.registry.Register(newJavaScriptRecognizer())
	s.registry.Register(newTypeScriptRecognizer())
	s.registry.Register(newGoRecognizer())
	s.registry.Register(newRustRecognizer())
	s.registry.Register(newJavaRecognizer())
	s.registry.Register(newCFamilyRecognizer())
	s.registry.Register(newCSharpRecognizer())
	s.registry.Register(newPHPRecognizer())
	s.registry.Register(newRubyRecognizer())
	s.registry.Register(newSwiftRecognizer())
	s.registry.Register(newKotlinRecognizer())
	s.registry.Register(newScalaRecognizer())
	s.registry.Register(newLuaRecognizer())
	s.registry.Register(newPerlRecognizer())
	s.registry.Register(newBashRecognizer())
}

// Structure extracts the nested element forest for a file. Files in
// languages with no recognizer produce an empty forest, never an error.
func (s *Service) Structure(filePath string, content string) []*Element {
	ext := strings.ToLower(filepath.Ext(filePath))

	rec, err := s.registry.ForExtension(ext)
	if err != nil {
		language := s.languageDetector.DetectLanguage(filePath, []byte(content))
		s.logger.Debug("No recognizer for file", "path", filePath, "language", language)
		return nil
	}

	lines := strings.Split(content, "\n")
	elements := rec.Scan(content, lines)
	if len(elements) == 0 {
		return nil
	}

	s.logger.Debug("Extracted structure", "path", filePath, "language", rec.Name(), "elements", len(elements))
	return Nest(elements)
}

// Detector exposes the language detector for callers that only need binary
// or language checks.
func (s *Service) Detector() *LanguageDetector {
	return s.languageDetector
}

// RegisterRecognizer registers an additional language recognizer
func (s *Service) RegisterRecognizer(rec Recognizer) {
	s.registry.Register(rec)
}
