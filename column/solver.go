// Package column solves table column widths: given a table width, a set
// of explicit/auto column requests, and a minimum viable width, it
// distributes spare width and hides columns that don't fit.
package column

// Width is a resolved column width: -1 means the column is hidden.
type Width int

const (
	// Hidden marks a column that the solver could not fit.
	Hidden Width = -1
	// Auto marks an input column with no explicit width request.
	Auto = 0
)

// Solve computes final widths for a table. T is the total table width,
// m is the minimum viable width for any visible column, sep is the
// width of the separator printed between adjacent visible columns, and
// w holds the per-column request: w[i] > 0 is explicit, w[i] == 0 is
// auto.
//
// Explicit widths are never increased. Auto columns share any surplus
// round-robin. If the table still doesn't fit, the rightmost visible
// column is shrunk by the overage, or hidden if that would take it below
// m, strictly right-to-left until the table fits (or none are left).
func Solve(T, m, sep int, w []int) []Width {
	n := len(w)
	out := make([]Width, n)
	for i, v := range w {
		out[i] = Width(v)
	}
	if n == 0 {
		return out
	}

	visibleCount := func() int {
		c := 0
		for _, v := range out {
			if v > 0 {
				c++
			}
		}
		return c
	}
	totalWidth := func() int {
		sum := 0
		v := visibleCount()
		for _, x := range out {
			if x > 0 {
				sum += int(x)
			}
		}
		if v > 1 {
			sum += sep * (v - 1)
		}
		return sum
	}

	allExplicit := true
	for _, v := range w {
		if v <= 0 {
			allExplicit = false
			break
		}
	}
	if allExplicit && totalWidth() <= T {
		return out
	}

	// Step 2: every auto column starts at the minimum, then surplus (if
	// any) is distributed round-robin across auto columns only.
	for i, v := range w {
		if v == 0 {
			out[i] = Width(m)
		}
	}

	cur := totalWidth()
	if cur <= T {
		surplus := T - cur
		autoIdx := autoIndices(w)
		for surplus > 0 && len(autoIdx) > 0 {
			for _, i := range autoIdx {
				if surplus <= 0 {
					break
				}
				out[i]++
				surplus--
			}
		}
		return out
	}

	// Step 3: trim loop, hiding the rightmost visible column when it
	// can't absorb the overage without dropping below m.
	for totalWidth() > T {
		i := rightmostVisible(out)
		if i < 0 {
			break
		}
		overage := totalWidth() - T
		if int(out[i])-overage < m {
			out[i] = Hidden
			continue
		}
		out[i] = Width(int(out[i]) - overage)
	}

	return out
}

func autoIndices(w []int) []int {
	var idx []int
	for i, v := range w {
		if v == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func rightmostVisible(w []Width) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] > 0 {
			return i
		}
	}
	return -1
}
