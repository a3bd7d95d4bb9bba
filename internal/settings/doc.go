// Package settings provides generic helpers for comparing live resource
// settings against declared parameters and for building before/after diff
// payloads.
//
// The helpers are deliberately schema-agnostic: both sides of a comparison
// are flat string-keyed maps. List-valued settings are compared with set
// semantics because the server does not guarantee element order.
package settings
