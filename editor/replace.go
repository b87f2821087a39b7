package editor

import "strings"

// ReplaceAllFold replaces every case-insensitive occurrence of needle in
// text with repl and reports how many were replaced. Matching is literal;
// needle is never treated as a pattern. An empty needle replaces nothing.
func ReplaceAllFold(text, needle, repl string) (string, int) {
	if needle == "" {
		return text, 0
	}

	var out strings.Builder
	n := len(needle)
	count := 0

	for i := 0; i < len(text); {
		if i+n <= len(text) && strings.EqualFold(text[i:i+n], needle) {
			out.WriteString(repl)
			i += n
			count++
			continue
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String(), count
}
