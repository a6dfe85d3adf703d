// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Endpoint is a device entity registered with the remote management service.
//
// Only the fields this tool changes are modelled explicitly. Every other
// field returned by the server is kept in extra and written back unchanged,
// so the PUT request always carries the full entity.
type Endpoint struct {
	UUID             string
	FriendlyName     string
	MetaData         map[string]any
	Banned           bool
	GroupMemberships []string

	extra map[string]json.RawMessage
}

var endpointKnownFields = []string{"uuid", "friendlyName", "metaData", "banned", "groupMemberships"}

// WithSettings returns a copy of e with metaData, banned and groupMemberships
// taken from p. Fields the server sent that are not touched here are carried
// over as they are.
func (e Endpoint) WithSettings(p Provisioning) Endpoint {
	out := e
	out.MetaData = maps.Clone(p.Metadata)
	out.Banned = p.Banned
	out.GroupMemberships = slices.Clone(p.EndpointGroups)
	out.extra = maps.Clone(e.extra)
	return out
}

// UnmarshalJSON decodes an endpoint entity and keeps unknown fields.
func (e *Endpoint) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var out Endpoint
	decode := func(name string, dst any) error {
		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			return nil
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("endpoint field %q: %w", name, err)
		}
		return nil
	}

	if err := decode("uuid", &out.UUID); err != nil {
		return err
	}
	if err := decode("friendlyName", &out.FriendlyName); err != nil {
		return err
	}
	if err := decode("metaData", &out.MetaData); err != nil {
		return err
	}
	if err := decode("banned", &out.Banned); err != nil {
		return err
	}
	if err := decode("groupMemberships", &out.GroupMemberships); err != nil {
		return err
	}

	for _, name := range endpointKnownFields {
		delete(fields, name)
	}
	if len(fields) > 0 {
		out.extra = fields
	}

	*e = out
	return nil
}

// MarshalJSON encodes the full entity, including fields kept from the
// server response.
func (e Endpoint) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(e.extra)+len(endpointKnownFields))
	for k, v := range e.extra {
		fields[k] = v
	}

	fields["uuid"] = e.UUID
	fields["friendlyName"] = e.FriendlyName
	fields["metaData"] = e.MetaData
	fields["banned"] = e.Banned
	fields["groupMemberships"] = e.GroupMemberships

	return json.Marshal(fields)
}

// ProvisionTokenRequest is the body of the token request.
type ProvisionTokenRequest struct {
	CustomProperties CustomProperties `json:"customProperties"`
}
