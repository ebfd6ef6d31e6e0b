package tourpipe

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RepairJSON parses a string that is expected to contain JSON but may be
// truncated, wrapped in prose, or syntactically broken, the realistic
// shape of generative-model output. Strategies are tried in order and the
// first that yields a parseable result wins:
//
//  1. direct parse
//  2. largest bracket-delimited substring
//  3. structural repairs, then parse
//  4. extraction (2) followed by repairs (3), then parse
//  5. control-character strip, then parse
//  6. regex scan for quoted title fields, synthesizing a partial list
//
// Failures of individual strategies are swallowed. Returns nil if all six
// fail; RepairJSON never panics or returns an error.
func RepairJSON(raw string) any {
	strategies := []func(string) (any, bool){
		parseDirect,
		parseExtracted,
		parseRepaired,
		parseExtractedRepaired,
		parseStripped,
		parseTitleScan,
	}
	for _, strategy := range strategies {
		if v, ok := strategy(raw); ok {
			return v
		}
	}
	return nil
}

func parseDirect(raw string) (any, bool) {
	return tryParse(raw)
}

func parseExtracted(raw string) (any, bool) {
	return tryParse(extractJSON(raw))
}

func parseRepaired(raw string) (any, bool) {
	return tryParse(repairStructure(raw))
}

func parseExtractedRepaired(raw string) (any, bool) {
	return tryParse(repairStructure(extractJSON(raw)))
}

func parseStripped(raw string) (any, bool) {
	return tryParse(stripControlChars(raw))
}

// titleRe matches a title field in near-JSON text, tolerating single
// quotes and unquoted keys. Intentionally narrow: the last-resort scan
// only recovers titles, nothing else.
var titleRe = regexp.MustCompile(`["']?title["']?\s*:\s*["']([^"']+)["']`)

func parseTitleScan(raw string) (any, bool) {
	matches := titleRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil, false
	}
	items := make([]any, 0, len(matches))
	for _, m := range matches {
		items = append(items, map[string]any{"title": m[1]})
	}
	return items, true
}

func tryParse(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	// A bare string or number is not a usable extraction result.
	switch v.(type) {
	case map[string]any, []any:
		return v, true
	}
	return nil, false
}

// extractJSON returns the largest bracket-delimited substring: from the
// first [ or { to the matching last ] or }. Returns "" when no bracket
// pair is present.
func extractJSON(raw string) string {
	starts := map[byte]byte{'[': ']', '{': '}'}
	first := -1
	var closer byte
	for i := 0; i < len(raw); i++ {
		if c, ok := starts[raw[i]]; ok {
			first = i
			closer = c
			break
		}
	}
	if first == -1 {
		return ""
	}
	last := strings.LastIndexByte(raw, closer)
	if last <= first {
		// Truncated output with no closer; take the rest and let the
		// repair pass balance the brackets.
		return raw[first:]
	}
	return raw[first : last+1]
}

var (
	missingCommaRe  = regexp.MustCompile(`(["\}\]0-9])(\s*\n\s*)(["\{\[])`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[\]\}])`)
)

// repairStructure applies heuristic fixes to near-JSON text: trims
// non-JSON preamble/postamble, closes strings left open at a newline,
// inserts commas between adjacent tokens split by a newline, strips
// illegal trailing commas, and appends missing closing brackets.
func repairStructure(raw string) string {
	s := trimToJSON(raw)
	if s == "" {
		return ""
	}
	s = closeOpenStrings(s)
	s = missingCommaRe.ReplaceAllString(s, "$1,$2$3")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = balanceBrackets(s)
	return s
}

// trimToJSON drops leading text before the first bracket and trailing
// text after the last closing bracket.
func trimToJSON(raw string) string {
	start := strings.IndexAny(raw, "[{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndexAny(raw, "]}")
	if end > start {
		return raw[start : end+1]
	}
	return raw[start:]
}

// closeOpenStrings appends a closing quote to any line containing an odd
// number of unescaped double quotes. Model output truncated mid-string
// otherwise poisons everything after it.
func closeOpenStrings(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		count := 0
		for j := 0; j < len(line); j++ {
			if line[j] == '"' && (j == 0 || line[j-1] != '\\') {
				count++
			}
		}
		if count%2 == 1 {
			lines[i] = line + `"`
		}
	}
	return strings.Join(lines, "\n")
}

// balanceBrackets appends closers for brackets left open outside string
// literals, innermost first.
func balanceBrackets(s string) string {
	var stack []byte
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if n := len(stack); n > 0 && stack[n-1] == '{' {
				stack = stack[:n-1]
			}
		case ']':
			if n := len(stack); n > 0 && stack[n-1] == '[' {
				stack = stack[:n-1]
			}
		}
	}
	if inString {
		s += `"`
	}
	var b strings.Builder
	b.WriteString(s)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// stripControlChars removes ASCII control characters, which some models
// emit raw inside string values where strict JSON forbids them.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
}
