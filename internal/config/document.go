// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-endpoint-provisioner/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Document is a parsed provisioning configuration document. It keeps both
// the generic tree, which is what the schema validates, and the YAML node
// the typed view is decoded from.
type Document struct {
	path string
	node yaml.Node
	tree any
}

// LoadDocument reads and parses the provisioning document at path.
// Returns [ErrConfigParse] (wrapped) if the file cannot be read or is not
// well-formed YAML.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	doc, err := parseDocument(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Provisioning decodes the typed view of the document. Call it after the
// document passed [Schema.Validate]; a type mismatch the schema did not
// catch is reported as [ErrConfigValidation].
func (d *Document) Provisioning() (models.Provisioning, error) {
	var p models.Provisioning
	if d.node.Kind == 0 {
		return p, fmt.Errorf("%w: empty document", ErrConfigValidation)
	}
	if err := d.node.Decode(&p); err != nil {
		return models.Provisioning{}, fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}

	// nested mappings with non-string keys would not encode as JSON
	if p.Metadata != nil {
		p.Metadata = stringKeys(p.Metadata).(map[string]any)
	}
	if p.CustomProperties != nil {
		p.CustomProperties = stringKeys(map[string]any(p.CustomProperties)).(map[string]any)
	}

	return p, nil
}

func parseDocument(path string, data []byte) (*Document, error) {
	doc := &Document{path: path}
	if err := yaml.Unmarshal(data, &doc.node); err != nil {
		return nil, err
	}

	// an empty file yields a zero node and a nil tree
	if doc.node.Kind == 0 {
		return doc, nil
	}

	if err := doc.node.Decode(&doc.tree); err != nil {
		return nil, err
	}

	return doc, nil
}

// jsonValue converts a tree decoded from YAML into the representation the
// jsonschema package expects (numbers as json.Number, string map keys).
func jsonValue(tree any) (any, error) {
	data, err := json.Marshal(stringKeys(tree))
	if err != nil {
		return nil, err
	}

	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// stringKeys rewrites map[any]any produced for mappings with non-string keys
// so the tree can be encoded as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}
