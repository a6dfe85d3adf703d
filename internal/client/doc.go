// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the provisioner runtime.
//
// It loads and validates the provisioning document, then wires the HTTP
// adapter, the token store and the operator prompt into a single
// provisioning run.
package client
