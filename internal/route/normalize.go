package route

import (
	"fmt"
	"strings"
)

const (
	// WildcardParam is the chi URL parameter holding the segments matched by
	// a trailing wildcard.
	WildcardParam = "*"

	tableWildcard = "**"
)

// NormalizePath rewrites a route table template into a chi pattern.
//
// The template gets exactly one leading "/", every {name} placeholder is
// validated and kept as a chi named parameter, and a trailing "**" segment
// becomes chi's "*". Placeholders are handled before wildcards, so
// "/file/{configId}/get/**" becomes "/file/{configId}/get/*".
//
// The rewrite is purely textual and idempotent: a pattern it produced is
// returned unchanged.
func NormalizePath(template string) (string, error) {
	trimmed := strings.TrimLeft(template, "/")
	if trimmed == "" {
		return "/", nil
	}

	segments := strings.Split(trimmed, "/")
	seen := make(map[string]struct{})

	for i, seg := range segments {
		last := i == len(segments)-1

		if strings.Contains(seg, "*") {
			if seg != tableWildcard && seg != WildcardParam {
				return "", fmt.Errorf("%w: %q: wildcard must be a whole segment", ErrMalformedTemplate, template)
			}
			if !last {
				return "", fmt.Errorf("%w: %q: wildcard must be the last segment", ErrMalformedTemplate, template)
			}
			segments[i] = WildcardParam
			continue
		}

		normalized, err := normalizeSegment(seg, seen)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrMalformedTemplate, template, err)
		}
		segments[i] = normalized
	}

	return "/" + strings.Join(segments, "/"), nil
}

// normalizeSegment validates the placeholders of one segment. Literal text
// around a placeholder is allowed ("{id}.json"), nesting is not.
func normalizeSegment(seg string, seen map[string]struct{}) (string, error) {
	var b strings.Builder
	b.Grow(len(seg))

	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '}':
			return "", fmt.Errorf("unmatched '}' in %q", seg)
		case '{':
			end := strings.IndexByte(seg[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unmatched '{' in %q", seg)
			}
			name := seg[i+1 : i+1+end]
			if !validParamName(name) {
				return "", fmt.Errorf("invalid placeholder name %q", name)
			}
			if _, dup := seen[name]; dup {
				return "", fmt.Errorf("placeholder %q repeated", name)
			}
			seen[name] = struct{}{}

			b.WriteByte('{')
			b.WriteString(name)
			b.WriteByte('}')
			i += end + 1
		default:
			b.WriteByte(seg[i])
		}
	}

	return b.String(), nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
