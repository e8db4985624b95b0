// Package config holds the static registry of tracked tools: who maintains
// them, where their upstream repositories live, and how regressions are
// labelled. The registry is loaded once at process start and treated as
// read-only afterwards.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Tool describes one tracked tool or documentation book.
type Tool struct {
	// Maintainers are GitHub logins (without the leading @). They must be
	// assignable collaborators of the tracked repository; CI verifies this.
	Maintainers []string `toml:"maintainers"`
	// Repo is the upstream repository where follow-up fixes land.
	Repo string `toml:"repo"`
	// IssueOnTestFail files an issue for test failures too, not only build
	// failures. Most tools skip this because test failures can be spurious.
	IssueOnTestFail bool `toml:"issue_on_test_fail"`
}

// Registry is the full static configuration of the tracker.
type Registry struct {
	// Slug is the repository whose merges drive the toolstate ("owner/name").
	Slug string `toml:"slug"`
	// Platforms are the tracked build platforms, one history log each.
	Platforms []string `toml:"platforms"`
	// Labels are applied to every regression issue.
	Labels []string `toml:"labels"`
	// InfraPing is appended to every change line in the summary message.
	InfraPing string `toml:"infra_ping"`
	// TriagePing is mentioned in regression issues for prioritization.
	TriagePing string `toml:"triage_ping"`

	Tools map[string]Tool `toml:"tools"`
}

// Default returns the built-in registry.
func Default() *Registry {
	return &Registry{
		Slug:       "rust-lang/rust",
		Platforms:  []string{"windows", "linux"},
		Labels:     []string{"T-compiler", "I-nominated"},
		InfraPing:  "@rust-lang/infra",
		TriagePing: "@rust-lang/compiler",
		Tools: map[string]Tool{
			"miri": {
				Maintainers:     []string{"oli-obk", "RalfJung", "eddyb"},
				Repo:            "https://github.com/rust-lang/miri",
				IssueOnTestFail: true,
			},
			"clippy-driver": {
				Maintainers: []string{"Manishearth", "llogiq", "mcarton", "oli-obk", "phansch", "flip1995", "yaahc"},
				Repo:        "https://github.com/rust-lang/rust-clippy",
			},
			"rls": {
				Maintainers: []string{"Xanewok"},
				Repo:        "https://github.com/rust-lang/rls",
			},
			"rustfmt": {
				Maintainers: []string{"topecongiro"},
				Repo:        "https://github.com/rust-lang/rustfmt",
			},
			"book": {
				Maintainers: []string{"carols10cents", "steveklabnik"},
				Repo:        "https://github.com/rust-lang/book",
			},
			"nomicon": {
				Maintainers: []string{"frewsxcv", "Gankra"},
				Repo:        "https://github.com/rust-lang-nursery/nomicon",
			},
			"reference": {
				Maintainers: []string{"steveklabnik", "Havvy", "matthewjasper", "ehuss"},
				Repo:        "https://github.com/rust-lang-nursery/reference",
			},
			"rust-by-example": {
				Maintainers: []string{"steveklabnik", "marioidival", "projektir"},
				Repo:        "https://github.com/rust-lang/rust-by-example",
			},
			"embedded-book": {
				Maintainers: []string{"adamgreig", "andre-richter", "jamesmunns", "korken89", "ryankurte", "thejpster", "therealprof"},
				Repo:        "https://github.com/rust-embedded/book",
			},
			"edition-guide": {
				Maintainers: []string{"ehuss", "Centril", "steveklabnik"},
				Repo:        "https://github.com/rust-lang-nursery/edition-guide",
			},
			"rustc-guide": {
				Maintainers: []string{"mark-i-m", "spastorino", "amanjeev"},
				Repo:        "https://github.com/rust-lang/rustc-guide",
			},
		},
	}
}

// Load returns the built-in registry, optionally overridden from a TOML
// file. Top-level fields present in the file replace the defaults; a tool
// listed under [tools.<name>] fully replaces the default entry for that
// tool, while unlisted tools keep their defaults.
func Load(path string) (*Registry, error) {
	reg := Default()
	if path == "" {
		return reg, nil
	}

	if _, err := toml.DecodeFile(path, reg); err != nil {
		return nil, fmt.Errorf("failed to load registry from %s: %w", path, err)
	}
	return reg, nil
}

// Mention returns the maintainers of a tool as a space-separated list of
// @-mentions, or an empty string for an unknown tool.
func (r *Registry) Mention(tool string) string {
	t, ok := r.Tools[tool]
	if !ok {
		return ""
	}
	mentions := make([]string, len(t.Maintainers))
	for i, m := range t.Maintainers {
		mentions[i] = "@" + m
	}
	return strings.Join(mentions, " ")
}

// RepoURL returns the upstream repository of a tool, or an empty string
// for an unknown tool.
func (r *Registry) RepoURL(tool string) string {
	return r.Tools[tool].Repo
}
