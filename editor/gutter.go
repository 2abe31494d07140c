package editor

import (
	"fmt"
	"strconv"
)

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digit count of lineCount plus one separator column.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

// LineNumberText returns the gutter text for the 1-based line number n,
// right-aligned and padded to width. Numbers wider than the gutter keep their
// least significant digits.
func LineNumberText(n, width int) string {
	if width <= 0 {
		return ""
	}
	digits := width - 1
	if digits <= 0 {
		return " "
	}
	s := strconv.Itoa(n)
	if len(s) > digits {
		s = s[len(s)-digits:]
	}
	return fmt.Sprintf("%*s ", digits, s)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// gutterWidth returns the gutter width used for mapping and painting. The
// gutter is dropped when it would leave no column for text.
func (st *State) gutterWidth() int {
	if !st.showLineNums {
		return 0
	}
	w := st.fixedGutter
	if st.gutterPolicy == GutterDynamic {
		w = LineNumberWidth(st.buf.Len())
	}
	if w >= st.width {
		return 0
	}
	return w
}
