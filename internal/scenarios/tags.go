package scenarios

import (
	"os"
	"strings"
)

// Tags group scenarios for selective runs.
const (
	TagSmoke      = "smoke"
	TagRegression = "regression"
	TagNegative   = "negative"
)

// TagsEnv lists the tags to run, comma separated. Empty runs everything.
const TagsEnv = "MARKETPROBE_TAGS"

// Skipper is the part of *testing.T that Mark needs.
type Skipper interface {
	Helper()
	Skipf(format string, args ...any)
}

// Mark skips the calling test unless one of tags is selected by
// MARKETPROBE_TAGS.
func Mark(t Skipper, tags ...string) {
	t.Helper()
	selected := selectedTags(os.Getenv(TagsEnv))
	if len(selected) == 0 {
		return
	}
	for _, tag := range tags {
		if _, ok := selected[tag]; ok {
			return
		}
	}
	t.Skipf("tags %v not selected by %s", tags, TagsEnv)
}

func selectedTags(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range strings.Split(raw, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out[p] = struct{}{}
		}
	}
	return out
}
