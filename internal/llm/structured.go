package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON decodes the first JSON object or array found in raw model
// output into T. Markdown fences, prose around the value, comments, trailing
// commas and bare leading decimals such as ".8" are tolerated. validate may
// be nil; a validation failure is reported as ErrInvalidOutput.
func ExtractJSON[T any](raw string, validate func(T) error) (T, error) {
	var zero T

	block := firstJSONValue(dropFenceLines(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}
	block = outsideStrings(block, skipComment)
	block = outsideStrings(block, skipTrailingComma)
	block = outsideStrings(block, padLeadingDecimal)

	var out T
	if err := json.Unmarshal([]byte(block), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// dropFenceLines removes ``` and ```json marker lines, keeping their content.
func dropFenceLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstJSONValue returns the first balanced {...} or [...] in s, honoring
// brackets inside string literals. It returns "" when none closes.
func firstJSONValue(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	open, closer := s[start], byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	var str stringState
	for i := start; i < len(s); i++ {
		if str.step(s[i]) {
			continue
		}
		switch s[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stringState tracks whether a byte stream is inside a JSON string literal.
type stringState struct {
	in      bool
	escaped bool
}

// step consumes c and reports whether c belongs to a string literal,
// including its quotes.
func (st *stringState) step(c byte) bool {
	switch {
	case st.escaped:
		st.escaped = false
		return true
	case st.in && c == '\\':
		st.escaped = true
		return true
	case c == '"':
		st.in = !st.in
		return true
	default:
		return st.in
	}
}

// rewriteFunc handles s[i], a byte outside any string literal. It writes the
// replacement to b and returns how many bytes it consumed, at least one.
type rewriteFunc func(b *strings.Builder, s string, i int) int

// outsideStrings copies s, passing every byte outside string literals to fn.
func outsideStrings(s string, fn rewriteFunc) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var str stringState
	for i := 0; i < len(s); {
		if str.step(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += fn(&b, s, i)
	}
	return b.String()
}

// skipComment drops // line and /* block */ comments.
func skipComment(b *strings.Builder, s string, i int) int {
	rest := s[i:]
	switch {
	case strings.HasPrefix(rest, "//"):
		if n := strings.IndexByte(rest, '\n'); n >= 0 {
			return n
		}
		return len(rest)
	case strings.HasPrefix(rest, "/*"):
		if n := strings.Index(rest[2:], "*/"); n >= 0 {
			return n + 4
		}
		return len(rest)
	}
	b.WriteByte(s[i])
	return 1
}

// skipTrailingComma drops a comma that directly precedes } or ].
func skipTrailingComma(b *strings.Builder, s string, i int) int {
	if s[i] == ',' {
		if next := nextNonSpace(s, i+1); next == '}' || next == ']' {
			return 1
		}
	}
	b.WriteByte(s[i])
	return 1
}

// padLeadingDecimal rewrites ".5" and "-.5" as "0.5" and "-0.5".
func padLeadingDecimal(b *strings.Builder, s string, i int) int {
	c := s[i]
	if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prevNonSpace(s, i-1)) {
		b.WriteByte('0')
	}
	b.WriteByte(c)
	return 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		if !isSpace(s[i]) {
			return s[i]
		}
	}
	return 0
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if !isSpace(s[i]) {
			return s[i]
		}
	}
	return 0
}

// startsNumber reports whether a number may begin right after c.
func startsNumber(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
