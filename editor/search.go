package editor

import "strings"

// matchOffsets returns the byte offset of every case-insensitive occurrence
// of needle in text, in scan order. Matches do not overlap.
func matchOffsets(text, needle string) []int {
	if needle == "" {
		return nil
	}

	var offsets []int
	n := len(needle)
	for i := 0; i+n <= len(text); {
		if strings.EqualFold(text[i:i+n], needle) {
			offsets = append(offsets, i)
			i += n
			continue
		}
		i++
	}
	return offsets
}

// nextMatch picks the first offset at or after from, wrapping to the start
// when nothing follows. Returns -1 for an empty offset list.
func nextMatch(offsets []int, from int) int {
	if len(offsets) == 0 {
		return -1
	}
	for i, off := range offsets {
		if off >= from {
			return i
		}
	}
	return 0
}

// prevMatch picks the last offset before from, wrapping to the end.
func prevMatch(offsets []int, from int) int {
	if len(offsets) == 0 {
		return -1
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		if offsets[i] < from {
			return i
		}
	}
	return len(offsets) - 1
}

// lineCol converts a byte offset into zero-based line and column indexes.
func lineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line = strings.Count(before, "\n")
	if last := strings.LastIndexByte(before, '\n'); last >= 0 {
		col = len(before) - last - 1
	} else {
		col = len(before)
	}
	return line, col
}
