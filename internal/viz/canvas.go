package viz

import "strings"

// Canvas is a fixed-size grid of runes. Writes outside the grid are clipped,
// which is how oversized non-adaptive pages overflow the device frame.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = ' '
		}
	}
}

func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Grid[y][x] = r
}

func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0
	}
	return c.Grid[y][x]
}

// Text writes s starting at (x, y) and returns how many runes were clipped.
func (c *Canvas) Text(x, y int, s string) int {
	clipped := 0
	for _, r := range s {
		if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
			clipped++
		} else {
			c.Grid[y][x] = r
		}
		x++
	}
	return clipped
}

// Row returns line y as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.Height {
		return ""
	}
	return string(c.Grid[y])
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.Grid {
		sb.WriteString(string(row))
		if i < len(c.Grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
