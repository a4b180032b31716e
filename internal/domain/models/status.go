// internal/domain/models/status.go
package models

import (
	"errors"
	"strings"
)

// Status is one of the four fixed activity outcomes tracked by the board.
// The set is closed; labels are the display strings and are stored as-is.
type Status string

const (
	StatusRealizado   Status = "Realizado"
	StatusPendiente   Status = "Pendiente"
	StatusPospuesto   Status = "Pospuesto"
	StatusSinRealizar Status = "Sin Realizar"
)

// ErrUnknownStatus is returned by ParseStatus for values outside the closed set.
var ErrUnknownStatus = errors.New("unknown status")

// statusOrder is the single source of truth for display order.
// Cards, charts, the detail list and exports all iterate in this order.
var statusOrder = []Status{
	StatusRealizado,
	StatusPendiente,
	StatusPospuesto,
	StatusSinRealizar,
}

// AllStatuses returns the four statuses in display order.
// The returned slice is a copy and may be modified by the caller.
func AllStatuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Position returns the zero-based display position of s, or -1 if s is unknown.
func (s Status) Position() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	return s.Position() >= 0
}

// Slug returns a lowercase, DOM- and URL-safe identifier ("sin-realizar").
func (s Status) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

func (s Status) String() string { return string(s) }

// ParseStatus accepts either the exact label or its slug (case-insensitive).
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, st := range statusOrder {
		if v == string(st) {
			return st, nil
		}
	}
	norm := strings.ReplaceAll(strings.ToLower(v), " ", "-")
	for _, st := range statusOrder {
		if norm == st.Slug() {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}
