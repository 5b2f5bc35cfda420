package find

// Locate returns the fractional index of query in ref.
//
// Implementation:
//   - Stage 1: exact match scan; return the first equal index.
//   - Stage 2: "less" end. If ref[0] < query, walk forward while values stay
//     below query, keeping the latest index whose value is >= the best so
//     far. Otherwise, if ref[last] < query, walk backward the same way.
//     Otherwise there is no bracket.
//   - Stage 3: "more" end. First value > query scanning forward from the
//     less index, else scanning backward from it.
//   - Stage 4: less + (query-lessVal)/(moreVal-lessVal)*(more-less).
//
// Returns ok=false when ref is empty or no bracket exists.
//
// Complexity: O(len(ref)).
func Locate(query float64, ref []float64) (pos float64, ok bool) {
	n := len(ref)
	if n == 0 {
		return 0, false
	}

	for i, v := range ref {
		if v == query {
			return float64(i), true
		}
	}

	var less int
	switch {
	case ref[0] < query:
		less = scanLess(query, ref, 0, 1)
	case ref[n-1] < query:
		less = scanLess(query, ref, n-1, -1)
	default:
		return 0, false
	}

	more := -1
	for i := less; i < n; i++ {
		if ref[i] > query {
			more = i

			break
		}
	}
	if more == -1 {
		for i := less; i >= 0; i-- {
			if ref[i] > query {
				more = i

				break
			}
		}
	}
	if more == -1 {
		return 0, false
	}

	lv, mv := ref[less], ref[more]

	return (query-lv)/(mv-lv)*float64(more-less) + float64(less), true
}

// scanLess walks from start in direction step while values stay below
// query and returns the index of the running maximum (ties move forward in
// scan order). ref[start] must be below query.
func scanLess(query float64, ref []float64, start, step int) int {
	best, bestVal := start, ref[start]
	for i := start + step; i >= 0 && i < len(ref); i += step {
		v := ref[i]
		if !(v < query) {
			break
		}
		if v >= bestVal {
			best, bestVal = i, v
		}
	}

	return best
}
