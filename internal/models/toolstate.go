package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ToolState is one entry of the persisted status table: the status of a
// single tool on every tracked platform, plus the commit and timestamp of
// the last observed change.
type ToolState struct {
	Tool      string
	Platforms map[string]Status
	Commit    string
	Datetime  string
}

// RegressionEvent captures one tool/platform transition to a worse status.
// It drives issue creation and is never persisted.
type RegressionEvent struct {
	Tool        string
	Platform    string
	Old         Status
	New         Status
	Maintainers []string
	RepoURL     string
}

// MarshalJSON writes the table-entry wire form: the tool name first, then
// one field per platform in sorted order, then commit and datetime.
func (t *ToolState) MarshalJSON() ([]byte, error) {
	platforms := make([]string, 0, len(t.Platforms))
	for p := range t.Platforms {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeField("tool", t.Tool); err != nil {
		return nil, err
	}
	for _, p := range platforms {
		if err := writeField(p, t.Platforms[p]); err != nil {
			return nil, err
		}
	}
	if err := writeField("commit", t.Commit); err != nil {
		return nil, err
	}
	if err := writeField("datetime", t.Datetime); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the table-entry wire form. Every field that is not
// tool, commit or datetime is a platform status.
func (t *ToolState) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Platforms = make(map[string]Status)
	for key, value := range raw {
		switch key {
		case "tool":
			t.Tool = value
		case "commit":
			t.Commit = value
		case "datetime":
			t.Datetime = value
		default:
			status, err := ParseStatus(value)
			if err != nil {
				return fmt.Errorf("tool %q, platform %q: %w", raw["tool"], key, err)
			}
			t.Platforms[key] = status
		}
	}

	if t.Tool == "" {
		return fmt.Errorf("table entry is missing the tool field")
	}
	return nil
}
