package viz

import (
	"strings"
	"unicode/utf8"
)

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// pad right-pads or truncates s to exactly w runes.
func pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	n := runeLen(s)
	if n == w {
		return s
	}
	if n > w {
		return string([]rune(s)[:w])
	}
	return s + strings.Repeat(" ", w-n)
}

func center(s string, w int) string {
	n := runeLen(s)
	if n >= w {
		return pad(s, w)
	}
	left := (w - n) / 2
	return pad(strings.Repeat(" ", left)+s, w)
}

func right(s string, w int) string {
	n := runeLen(s)
	if n >= w {
		return pad(s, w)
	}
	return strings.Repeat(" ", w-n) + s
}

// spread places l at the left edge and r at the right edge of a w-wide line.
func spread(l, r string, w int) string {
	gap := w - runeLen(l) - runeLen(r)
	if gap < 1 {
		gap = 1
	}
	return pad(l+strings.Repeat(" ", gap)+r, w)
}

// wrap breaks text into lines of at most w runes on word boundaries.
func wrap(text string, w int) []string {
	if w < 1 {
		return nil
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		for runeLen(word) > w {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			rs := []rune(word)
			lines = append(lines, string(rs[:w]))
			word = string(rs[w:])
		}
		switch {
		case cur == "":
			cur = word
		case runeLen(cur)+1+runeLen(word) <= w:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// hjoin places equal-height blocks side by side separated by gap spaces.
func hjoin(gap int, blocks ...[]string) []string {
	height := 0
	for _, b := range blocks {
		if len(b) > height {
			height = len(b)
		}
	}
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		for _, l := range b {
			if n := runeLen(l); n > widths[i] {
				widths[i] = n
			}
		}
	}
	out := make([]string, height)
	sep := strings.Repeat(" ", gap)
	for y := 0; y < height; y++ {
		parts := make([]string, len(blocks))
		for i, b := range blocks {
			line := ""
			if y < len(b) {
				line = b[y]
			}
			parts[i] = pad(line, widths[i])
		}
		out[y] = strings.Join(parts, sep)
	}
	return out
}

// boxed draws a w-wide border around lines using the given corner and edge
// runes: tl, t, tr, l, r, bl, b, br.
func boxed(lines []string, w int, edges [8]string) []string {
	inner := w - 2
	if inner < 1 {
		return lines
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, edges[0]+strings.Repeat(edges[1], inner)+edges[2])
	for _, l := range lines {
		out = append(out, edges[3]+pad(l, inner)+edges[4])
	}
	out = append(out, edges[5]+strings.Repeat(edges[6], inner)+edges[7])
	return out
}
