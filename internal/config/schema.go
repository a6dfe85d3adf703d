// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed config_schema.yaml
var defaultSchema []byte

// schemaURL is the resource name the schema is registered under in the
// compiler. It never leaves the process.
const schemaURL = "provisioning-config-schema.json"

// Schema is a JSON Schema (written in YAML) describing the provisioning
// document. It is used once and then discarded.
type Schema struct {
	doc *Document
}

// LoadSchema reads and parses the schema document at path.
// Returns [ErrSchemaParse] (wrapped together with the [os.ReadFile] error)
// if the file cannot be read or is not
// well-formed YAML. Whether it is a valid JSON Schema is only checked by
// [Schema.Validate].
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaParse, err)
	}

	return parseSchema(path, data)
}

// DefaultSchema returns the schema built into the binary.
func DefaultSchema() (*Schema, error) {
	return parseSchema("built-in", defaultSchema)
}

func parseSchema(path string, data []byte) (*Schema, error) {
	doc, err := parseDocument(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaParse, err)
	}

	return &Schema{doc: doc}, nil
}

// Path returns where the schema was loaded from, or "built-in".
func (s *Schema) Path() string {
	return s.doc.path
}

// Validate checks doc against the schema.
//
// Returns [ErrSchemaDefinition] (wrapped) if the schema itself does not
// compile, or [ErrConfigValidation] (wrapped) if doc does not conform.
func (s *Schema) Validate(doc *Document) error {
	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaDefinition, err)
	}

	instance, err := jsonValue(doc.tree)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}

	if err = compiled.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}

	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	if s.doc.tree == nil {
		return nil, errors.New("schema document is empty")
	}

	schemaDoc, err := jsonValue(s.doc.tree)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, err
	}

	return compiler.Compile(schemaURL)
}
