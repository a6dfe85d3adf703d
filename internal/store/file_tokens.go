// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// fileTokenStore is the YAML-file implementation of [TokenStore]. Each
// Append is a full read-modify-write of the file.
type fileTokenStore struct {
	path string
}

// NewFileTokenStore constructs a [TokenStore] backed by the YAML file at
// path. The file is not touched until the first call.
func NewFileTokenStore(path string, logger *logger.Logger) TokenStore {
	logger.Debug().Str("path", path).Msg("creating token file store")
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Path() string {
	return s.path
}

// Append implements [TokenStore]. It logs through the logger carried by ctx
// (see [logger.FromContext]). The file is opened for reading and
// writing and created when absent, so existing content is never truncated
// before it has been parsed.
//
// Error handling:
//   - open/create failure → [ErrOutputWrite].
//   - unreadable or malformed content → [ErrOutputParse]; the file is left
//     unchanged.
//   - rewrite failure → [ErrOutputWrite].
func (s *fileTokenStore) Append(ctx context.Context, record models.TokenRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error opening token file")
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error reading token file")
		return fmt.Errorf("%w: %w", ErrOutputParse, err)
	}

	doc, err := decodeTokenFile(data)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error decoding token file")
		return err
	}

	doc.Tokens = append(doc.Tokens, record)

	out, err := encodeTokenFile(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	if err = rewrite(f, out); err != nil {
		log.Err(err).Str("path", s.path).Msg("error writing token file")
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	log.Info().
		Str("path", s.path).
		Str("uuid", record.UUID).
		Int("tokens", len(doc.Tokens)).
		Msg("token appended")

	return nil
}

// Load implements [TokenStore].
func (s *fileTokenStore) Load(ctx context.Context) (models.TokenFile, error) {
	if err := ctx.Err(); err != nil {
		return models.TokenFile{}, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.TokenFile{Tokens: []models.TokenRecord{}}, nil
	}
	if err != nil {
		return models.TokenFile{}, fmt.Errorf("%w: %w", ErrOutputParse, err)
	}

	return decodeTokenFile(data)
}

func decodeTokenFile(data []byte) (models.TokenFile, error) {
	var doc models.TokenFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.TokenFile{}, fmt.Errorf("%w: %w", ErrOutputParse, err)
	}
	if doc.Tokens == nil {
		doc.Tokens = []models.TokenRecord{}
	}
	return doc, nil
}

func encodeTokenFile(doc models.TokenFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rewrite replaces the whole content of f with data.
func rewrite(f *os.File, data []byte) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
