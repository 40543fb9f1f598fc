package router

import (
	"fmt"
	"strings"
)

// pattern is a compiled route pattern. Three shapes are supported:
//
//	/exact/path            literal match
//	/users/{id}            segment params
//	/static/*              trailing wildcard (must be last)
//
// Wildcard patterns match the bare prefix too, so "/static/*" matches both
// "/static" and "/static/css/site.css".
type pattern struct {
	raw      string
	prefix   string   // set for wildcard patterns, includes trailing slash
	segments []string // set for param patterns
	wildcard bool
	params   bool
}

func compilePattern(raw string) pattern {
	if raw == "" || raw[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, raw))
	}

	p := pattern{raw: raw}

	if strings.HasSuffix(raw, "*") {
		prefix := strings.TrimSuffix(raw, "*")
		if !strings.HasSuffix(prefix, "/") {
			panic(fmt.Errorf("%w: %q", ErrWildcardPosition, raw))
		}
		if strings.ContainsAny(prefix, "*{}") {
			panic(fmt.Errorf("%w: %q", ErrInvalidPattern, raw))
		}
		p.wildcard = true
		p.prefix = prefix
		return p
	}

	if strings.Contains(raw, "*") {
		panic(fmt.Errorf("%w: %q", ErrWildcardPosition, raw))
	}

	if strings.Contains(raw, "{") {
		p.params = true
		p.segments = strings.Split(strings.TrimPrefix(raw, "/"), "/")
		seen := make(map[string]bool)
		for _, seg := range p.segments {
			name, ok := paramName(seg)
			if !ok {
				continue
			}
			if name == "" {
				panic(fmt.Errorf("%w: %q", ErrInvalidPattern, raw))
			}
			if seen[name] {
				panic(fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, raw))
			}
			seen[name] = true
		}
	}

	return p
}

// match reports whether path matches the pattern and returns extracted
// params (nil when the pattern has none).
func (p pattern) match(path string) (map[string]string, bool) {
	if p.wildcard {
		if strings.HasPrefix(path, p.prefix) || path+"/" == p.prefix {
			return nil, true
		}
		return nil, false
	}

	if !p.params {
		return nil, path == p.raw
	}

	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segs) != len(p.segments) {
		return nil, false
	}

	var params map[string]string
	for i, want := range p.segments {
		name, isParam := paramName(want)
		if !isParam {
			if segs[i] != want {
				return nil, false
			}
			continue
		}
		if segs[i] == "" {
			return nil, false
		}
		if params == nil {
			params = make(map[string]string, 2)
		}
		params[name] = segs[i]
	}
	return params, true
}

// paramName extracts the name from a "{name}" segment.
func paramName(seg string) (string, bool) {
	if len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}' {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
