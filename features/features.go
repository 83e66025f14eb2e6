/*
Package features patches OpenType feature file source. Its single job is
replacing the body of one named feature block, which is how a master or
instance carries feature code diverging from the font-wide text.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package features

import (
	"fmt"
	"regexp"
	"strings"
)

// Replace substitutes the body of the feature block tagged tag inside
// existing feature text. The replacement keeps the surrounding
// "feature <tag> { … } <tag>;" frame. If no block with the tag exists, a
// new one is appended at the end of the text.
func Replace(tag, replacement, existing string) (string, error) {
	if strings.TrimSpace(tag) == "" {
		return "", fmt.Errorf("empty feature tag")
	}
	if !strings.HasSuffix(replacement, "\n") {
		replacement += "\n"
	}
	pattern, err := regexp.Compile(
		`(?ms)^feature ` + regexp.QuoteMeta(tag) + ` \{\n(.*?)^\} ` + regexp.QuoteMeta(tag) + `;`)
	if err != nil {
		return "", fmt.Errorf("feature tag %q: %w", tag, err)
	}
	loc := pattern.FindStringSubmatchIndex(existing)
	if loc == nil {
		block := fmt.Sprintf("feature %s {\n%s} %s;\n", tag, replacement, tag)
		if existing == "" {
			return block, nil
		}
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		return existing + "\n" + block, nil
	}
	// loc[2]:loc[3] is the block body.
	return existing[:loc[2]] + replacement + existing[loc[3]:], nil
}
