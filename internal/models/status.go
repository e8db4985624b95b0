// Package models contains the domain types for the toolstate tracker.
package models

import (
	"encoding/json"
	"fmt"
)

// Status is the recorded outcome of building and testing one tool on one
// platform. The ordering is meaningful: a lower rank is a worse outcome.
type Status int

const (
	StatusBuildFail Status = iota
	StatusTestFail
	StatusTestPass
)

const (
	buildFailStr = "build-fail"
	testFailStr  = "test-fail"
	testPassStr  = "test-pass"
)

// ParseStatus converts the wire form of a status into its enum value.
func ParseStatus(s string) (Status, error) {
	switch s {
	case buildFailStr:
		return StatusBuildFail, nil
	case testFailStr:
		return StatusTestFail, nil
	case testPassStr:
		return StatusTestPass, nil
	}
	return StatusBuildFail, fmt.Errorf("unknown status %q", s)
}

// String returns the wire form of the status.
func (s Status) String() string {
	switch s {
	case StatusBuildFail:
		return buildFailStr
	case StatusTestFail:
		return testFailStr
	case StatusTestPass:
		return testPassStr
	}
	return fmt.Sprintf("invalid-status-%d", int(s))
}

// Rank returns the numeric ordering of the status. Higher is better.
func (s Status) Rank() int {
	return int(s)
}

// Description returns the human phrasing used in regression notifications.
func (s Status) Description() string {
	if s == StatusTestFail {
		return "has failing tests"
	}
	return "no longer builds"
}

// MarshalJSON encodes the status as its wire string.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the status from its wire string.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
