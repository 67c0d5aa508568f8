// Package hamming finds strings within a bounded Hamming distance of one
// another. Comparisons stop as soon as the bound is exceeded, which keeps bulk
// searches of short barcodes against large reference sets cheap.
package hamming

// Within returns the Hamming distance between a and b and true if that
// distance is at most threshold. Strings of unequal length have no Hamming
// distance and are never within threshold.
func Within(a, b string, threshold int) (int, bool) {
	return within(a, b, threshold, false)
}

// WithinFold is like Within but treats ASCII letters case-insensitively.
func WithinFold(a, b string, threshold int) (int, bool) {
	return within(a, b, threshold, true)
}

func within(a, b string, threshold int, fold bool) (int, bool) {
	if len(a) != len(b) || threshold < 0 {
		return 0, false
	}

	distance := 0
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if fold {
			ca, cb = upper(ca), upper(cb)
		}

		if ca != cb {
			distance++
			if distance > threshold {
				return 0, false
			}
		}
	}

	return distance, true
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
