// Package decode reads job requirement and candidate documents from JSON or
// YAML. Documents are parsed into a generic map, checked against the embedded
// schema and then decoded into typed structs.
package decode

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// specEnvelope is the optional top-level key wrapping a requirement.
const specEnvelope = "spec"

// JobRequirement parses a requirement document.
func JobRequirement(data []byte, format Format) (types.JobRequirement, error) {
	m, err := toMap(data, format)
	if err != nil {
		return types.JobRequirement{}, err
	}
	return JobRequirementFromMap(m)
}

// JobRequirementFromMap validates and decodes an already parsed requirement.
// A document of the form {"spec": {...}} is unwrapped first.
func JobRequirementFromMap(m map[string]any) (types.JobRequirement, error) {
	if inner, ok := m[specEnvelope].(map[string]any); ok {
		m = inner
	}
	var job types.JobRequirement
	if err := schemas.ValidateValue(schemas.JobRequirement, m); err != nil {
		return job, err
	}
	if err := decodeMap(m, &job); err != nil {
		return job, err
	}
	return job, nil
}

// Candidate parses a candidate document.
func Candidate(data []byte, format Format) (types.Candidate, error) {
	m, err := toMap(data, format)
	if err != nil {
		return types.Candidate{}, err
	}
	return CandidateFromMap(m)
}

// CandidateFromMap validates and decodes an already parsed candidate.
func CandidateFromMap(m map[string]any) (types.Candidate, error) {
	var candidate types.Candidate
	if err := schemas.ValidateValue(schemas.Candidate, m); err != nil {
		return candidate, err
	}
	if err := decodeMap(m, &candidate); err != nil {
		return candidate, err
	}
	return candidate, nil
}

func toMap(data []byte, format Format) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &FormatError{Format: format.String(), Message: "document is empty"}
	}

	var m map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, &FormatError{Format: format.String(), Message: "failed to parse", Cause: err}
	}
	if m == nil {
		return nil, &FormatError{Format: format.String(), Message: "top level must be an object"}
	}
	return m, nil
}

// decodeMap uses the json tag names so one set of tags serves both formats,
// and weak typing so "8" and 8 both decode as a level.
func decodeMap(m map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(m); err != nil {
		return &FormatError{Message: "unexpected structure", Cause: err}
	}
	return nil
}
