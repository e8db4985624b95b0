package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// mergeCommitPattern matches the merge commits produced by the merge bot,
// e.g. "Auto merge of #42 - alice:fix-branch, r=bob".
var mergeCommitPattern = regexp.MustCompile(`Auto merge of #([0-9]+) - ([^:]+):[^,]+, r=(\S+)`)

// ChangeRef identifies the pull request whose merge triggered a toolstate
// run, as extracted from the merge commit message.
type ChangeRef struct {
	Number   int
	Label    string
	URL      string
	Author   string
	Reviewer string
}

// ParseChangeRef extracts the PR reference from a merge commit message.
// Messages that do not match the merge pattern yield placeholder values
// rather than an error so that the pipeline still completes.
func ParseChangeRef(slug, commitMsg string) ChangeRef {
	m := mergeCommitPattern.FindStringSubmatch(commitMsg)
	if m == nil {
		return ChangeRef{
			Number:   -1,
			Label:    "<unknown PR>",
			URL:      "<unknown>",
			Author:   "ghost",
			Reviewer: "ghost",
		}
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		number = -1
	}
	return ChangeRef{
		Number:   number,
		Label:    fmt.Sprintf("%s#%s", slug, m[1]),
		URL:      fmt.Sprintf("https://github.com/%s/pull/%s", slug, m[1]),
		Author:   m[2],
		Reviewer: m[3],
	}
}
