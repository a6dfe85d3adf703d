// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui reads interactive input from the operator.
package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

//go:generate mockgen -source=prompter.go -destination=../mock/prompter_mock.go -package=mock

var (
	// ErrUserQuit is returned when the operator aborts the prompt.
	ErrUserQuit = errors.New("user quit the prompt")

	// ErrInputClosed is returned when the input ends before a non-empty
	// answer was given.
	ErrInputClosed = errors.New("input closed before an answer was given")
)

// Prompter asks the operator for a single non-empty value.
type Prompter interface {
	// Prompt shows label and blocks until a non-blank answer is entered.
	// The answer is returned with surrounding whitespace removed.
	Prompt(ctx context.Context, label string) (string, error)
}

// NewPrompter picks a prompter for in. The bubbletea text input is used when
// in is a terminal and plain is false; otherwise answers are read line by
// line.
func NewPrompter(in *os.File, out io.Writer, plain bool) Prompter {
	if !plain && isTerminal(in) {
		return NewTextInputPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
