package models

import "testing"

func TestParseChangeRef(t *testing.T) {
	ref := ParseChangeRef("rust-lang/rust", "Auto merge of #42 - alice:branch, r=bob")

	if ref.Number != 42 {
		t.Errorf("Number = %d, want 42", ref.Number)
	}
	if ref.Author != "alice" {
		t.Errorf("Author = %q, want alice", ref.Author)
	}
	if ref.Reviewer != "bob" {
		t.Errorf("Reviewer = %q, want bob", ref.Reviewer)
	}
	if ref.Label != "rust-lang/rust#42" {
		t.Errorf("Label = %q, want rust-lang/rust#42", ref.Label)
	}
	if ref.URL != "https://github.com/rust-lang/rust/pull/42" {
		t.Errorf("URL = %q", ref.URL)
	}
}

func TestParseChangeRef_Malformed(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{"empty", ""},
		{"plain commit", "Fix typo in docs"},
		{"rollup merge", "Rollup merge of #99 - carol:patch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseChangeRef("rust-lang/rust", tt.msg)
			if ref.Number != -1 {
				t.Errorf("Number = %d, want -1", ref.Number)
			}
			if ref.Author != "ghost" || ref.Reviewer != "ghost" {
				t.Errorf("expected ghost placeholders, got author %q reviewer %q", ref.Author, ref.Reviewer)
			}
			if ref.Label != "<unknown PR>" {
				t.Errorf("Label = %q, want <unknown PR>", ref.Label)
			}
		})
	}
}

func TestParseChangeRef_EmbeddedInMergeMessage(t *testing.T) {
	msg := "Auto merge of #61330 - Centril:stabilize-stuff, r=oli-obk\n\nStabilize a few things"
	ref := ParseChangeRef("rust-lang/rust", msg)
	if ref.Number != 61330 {
		t.Errorf("Number = %d, want 61330", ref.Number)
	}
	if ref.Reviewer != "oli-obk" {
		t.Errorf("Reviewer = %q, want oli-obk", ref.Reviewer)
	}
}
