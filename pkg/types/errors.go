// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error taxonomy shared by every pipeline stage. Stages wrap these sentinels
// with %w so callers can classify failures with errors.Is without depending
// on message text.
var (
	// ErrInvalidInput marks empty or malformed caller input (empty text,
	// out-of-range numeric parameter, unknown strategy or emotion).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup miss against a fixed catalog.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable marks exhaustion of every external capability
	// that could have served the request (both TTS engines failed).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
