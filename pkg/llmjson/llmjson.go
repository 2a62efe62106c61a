// Package llmjson turns free-form model output into parseable JSON text.
//
// Models are instructed to answer with bare JSON but routinely wrap it in
// Markdown fences or surround it with commentary. StripCodeFences removes the
// wrapper; ExtractArray and ExtractObject locate the first balanced top-level
// value, honouring string literals and escapes.
package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrNoArray  = errors.New("no JSON array found")
	ErrNoObject = errors.New("no JSON object found")
)

const fence = "```"

// StripCodeFences removes one leading fence marker (optionally tagged "json")
// and one trailing fence marker, then trims surrounding whitespace.
// Strings without fences are only trimmed.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, fence); ok {
		if tagged, ok := cutFold(rest, "json"); ok {
			rest = tagged
		}
		rest = strings.TrimPrefix(rest, "\r")
		rest = strings.TrimPrefix(rest, "\n")
		s = rest
	}

	if trimmed := strings.TrimRightFunc(s, isSpace); strings.HasSuffix(trimmed, fence) {
		s = strings.TrimSuffix(trimmed, fence)
	}

	return strings.TrimSpace(s)
}

// ExtractArray returns the first balanced JSON array in s whose elements are
// objects (an empty array qualifies). The substring is returned verbatim.
func ExtractArray(s string) (string, error) {
	if v, ok := extract(s, '[', isObjectArray); ok {
		return v, nil
	}
	return "", ErrNoArray
}

// ExtractObject returns the first balanced JSON object in s, verbatim.
func ExtractObject(s string) (string, error) {
	if v, ok := extract(s, '{', nil); ok {
		return v, nil
	}
	return "", ErrNoObject
}

// extract tries every occurrence of open as a candidate start and returns the
// first candidate that balances, is valid JSON, and passes accept.
func extract(s string, open byte, accept func(string) bool) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != open {
			continue
		}
		end, ok := balancedEnd(s, i)
		if !ok {
			continue
		}
		candidate := s[i : end+1]
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if accept != nil && !accept(candidate) {
			continue
		}
		return candidate, true
	}
	return "", false
}

// balancedEnd scans from s[start] (an opening bracket or brace) and returns
// the index of its matching closer. Brackets inside string literals are
// ignored. A mismatched closer fails the candidate.
func balancedEnd(s string, start int) (int, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isObjectArray(candidate string) bool {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &elems); err != nil {
		return false
	}
	for _, e := range elems {
		if len(e) == 0 || e[0] != '{' {
			return false
		}
	}
	return true
}

func cutFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
