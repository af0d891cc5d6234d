// Package keypath parses dotted key paths addressing locations inside
// document nodes.
//
// A key path is an ordered, non-empty sequence of field components,
// written with '.' separators:
//
//   - "a" → one component
//   - "a.b.c" → three components
//   - "'a.b'.c" → two components, the first containing a dot
//
// Components containing dots, quotes or whitespace are written in
// single quotes with backslash-escaped quotes inside.
package keypath

import (
	"fmt"
	"strings"
)

// Path is a parsed key path. It is never empty and is immutable once
// parsed.
type Path []string

// Parse parses a dotted key path. The empty string is not a valid
// path; callers that treat "" as "unmapped" must check before parsing.
func Parse(p string) (Path, error) {
	if p == "" {
		return nil, fmt.Errorf("empty key path")
	}
	var res Path
	rest := p
	for {
		comp, tail, err := parseComponent(rest)
		if err != nil {
			return nil, fmt.Errorf("key path %q: %w", p, err)
		}
		res = append(res, comp)
		if tail == "" {
			return res, nil
		}
		if tail[0] != '.' {
			return nil, fmt.Errorf("key path %q: expected '.' before %q", p, tail)
		}
		rest = tail[1:]
	}
}

func parseComponent(frag string) (comp, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected component at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty component")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, comp := range p {
		parts[i] = quoteComponent(comp)
	}
	return strings.Join(parts, ".")
}

// Prefix returns the path truncated to its first n components,
// rendered as a string. Used in structural error reporting.
func (p Path) Prefix(n int) string {
	if n > len(p) {
		n = len(p)
	}
	return p[:n].String()
}

func quoteComponent(comp string) string {
	if comp != "" && strings.IndexAny(comp, ".' \t") == -1 {
		return comp
	}
	return "'" + strings.Replace(comp, "'", "\\'", -1) + "'"
}
