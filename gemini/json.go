package gemini

import "strings"

// ExtractJSON pulls a JSON document out of a model response. It strips
// Markdown code fences when present, then falls back to matching from
// the first opening brace or bracket to its balanced close. Models
// occasionally wrap JSON in prose despite instructions not to.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+len("```"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	return balancedJSON(text)
}

// balancedJSON returns the substring from the first { or [ to its
// matching close, or the input unchanged when no balanced document is
// found. String contents are respected so braces inside values don't
// confuse the match.
func balancedJSON(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}

	open := text[start]
	var closer byte = '}'
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return text
}
