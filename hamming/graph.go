package hamming

// GraphStatistics describes the Hamming graph over a set of strings, with
// distances capped at a threshold.
type GraphStatistics struct {
	Strings []string

	// Eccentricities[i] is the largest capped distance from Strings[i] to any
	// string in the set, itself included.
	Eccentricities []int
	Radius         int
	Diameter       int
}

// GraphStatistics computes pairwise distances over strs. A pair farther apart
// than threshold, or of unequal length, counts as exactly threshold, so the
// eccentricities, radius and diameter are all bounded by it. An empty input
// yields a zero radius and diameter.
func (s *Searcher) GraphStatistics(strs []string, threshold int) GraphStatistics {
	eccentricities := make([]int, len(strs))

	s.each(len(strs), func(i int) {
		max := 0
		for _, other := range strs {
			distance, ok := Within(strs[i], other, threshold)
			if !ok {
				distance = threshold
			}
			if distance > max {
				max = distance
			}
		}
		eccentricities[i] = max
	})

	out := GraphStatistics{
		Strings:        strs,
		Eccentricities: eccentricities,
	}

	for i, e := range eccentricities {
		if i == 0 || e < out.Radius {
			out.Radius = e
		}
		if e > out.Diameter {
			out.Diameter = e
		}
	}

	return out
}
