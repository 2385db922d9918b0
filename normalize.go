// CLAUDE:SUMMARY Entity normalization: decodes HTML entities to a stable fixpoint before classification.
package gridpipe

import "golang.org/x/net/html"

// Normalize decodes HTML entities in extracted content. Upstream extractors
// sometimes double-encode, so decoding repeats until the text is stable;
// that makes Normalize idempotent. Markup is never interpreted here.
func Normalize(raw string) string {
	out := raw
	for {
		next := html.UnescapeString(out)
		if next == out {
			return out
		}
		out = next
	}
}
