package layout

// bar is an open histogram bar on the sweep stack: its height and the
// leftmost column it extends back to.
type bar struct {
	height int
	left   int
}

// barStack is an array-backed stack of open bars.
type barStack []bar

func (s *barStack) push(b bar) {
	*s = append(*s, b)
}

func (s *barStack) pop() bar {
	old := *s
	b := old[len(old)-1]
	*s = old[:len(old)-1]
	return b
}

func (s barStack) top() bar {
	return s[len(s)-1]
}

func (s barStack) empty() bool {
	return len(s) == 0
}

// FindLargest returns the largest rectangle that fits under histogram and
// ends at row number rowIndex (1-based; the row's zero-based index plus one).
//
// The sweep keeps a stack of bars with non-decreasing heights. A bar shorter
// than the stack top closes every open bar at least as tall as itself; each
// closed bar is a candidate rectangle. A trailing zero bar closes whatever is
// still open. Only a strictly larger area replaces the best candidate, so the
// first of several equal-area rectangles to close is kept.
//
// A histogram of all zeros returns the empty Rectangle. histogram is not
// modified.
func FindLargest(rowIndex int, histogram []int) Rectangle {
	bars := make([]int, len(histogram)+1)
	copy(bars, histogram)

	stack := make(barStack, 0, len(bars))
	var best Rectangle

	for pos, h := range bars {
		switch {
		case stack.empty():
			// A bar taller than the rows seen so far cannot come from a
			// real histogram.
			if h <= rowIndex {
				stack.push(bar{height: h, left: pos})
			}
		case h > stack.top().height:
			stack.push(bar{height: h, left: pos})
		case h < stack.top().height:
			left := pos
			for !stack.empty() && stack.top().height >= h {
				open := stack.pop()
				width := pos - open.left
				if area := open.height * width; area > best.Area {
					best = Rectangle{
						MinX:   open.left,
						MaxX:   pos,
						MinY:   rowIndex - open.height,
						MaxY:   rowIndex,
						Width:  width,
						Height: open.height,
						Area:   area,
					}
				}
				left = open.left
			}
			stack.push(bar{height: h, left: left})
		}
		// Equal height: the open bar already extends over pos.
	}

	return best
}
