package router

import (
	"fmt"
	"strings"
)

// CatchAll is the pattern matching any path not matched by another route.
const CatchAll = "*"

// segment is one compiled path segment.
type segment struct {
	literal string
	param   string
}

// CompiledPattern is a pre-split route pattern.
type CompiledPattern struct {
	// Route is the route the pattern belongs to.
	Route Route

	segments []segment
}

// CompilePattern splits pattern into literal and parameter segments.
func CompilePattern(pattern string) (*CompiledPattern, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern %q: must start with /", pattern)
	}

	parts := splitPath(Normalize(pattern))
	c := &CompiledPattern{segments: make([]segment, 0, len(parts))}
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		name, isParam, err := paramName(part)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if !isParam {
			c.segments = append(c.segments, segment{literal: part})
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("pattern %q: duplicate parameter %q", pattern, name)
		}
		seen[name] = true
		c.segments = append(c.segments, segment{param: name})
	}
	return c, nil
}

// Match matches pre-split path segments, returning captured parameters.
func (c *CompiledPattern) Match(parts []string) (map[string]string, bool) {
	if len(parts) != len(c.segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, seg := range c.segments {
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			params[seg.param] = parts[i]
			continue
		}
		if parts[i] != seg.literal {
			return nil, false
		}
	}
	return params, true
}

// Key returns a form of the pattern with parameter names erased, so that
// "/a/{x}" and "/a/{y}" compare equal.
func (c *CompiledPattern) Key() string {
	var b strings.Builder
	for _, seg := range c.segments {
		b.WriteByte('/')
		if seg.param != "" {
			b.WriteString("{}")
			continue
		}
		b.WriteString(seg.literal)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func paramName(part string) (string, bool, error) {
	open := strings.HasPrefix(part, "{")
	closed := strings.HasSuffix(part, "}")
	switch {
	case !open && !closed:
		if strings.ContainsAny(part, "{}*") {
			return "", false, fmt.Errorf("invalid segment %q", part)
		}
		return "", false, nil
	case open && closed && len(part) > 2:
		name := part[1 : len(part)-1]
		if strings.ContainsAny(name, "{}*") {
			return "", false, fmt.Errorf("invalid parameter %q", part)
		}
		return name, true, nil
	default:
		return "", false, fmt.Errorf("invalid parameter %q", part)
	}
}
