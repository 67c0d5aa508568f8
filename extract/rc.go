package extract

import "fmt"

var complement = [256]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'N': 'N',
}

// ReverseComplement reverse-complements a sequence of A, C, G, T and N. Any
// other symbol, lower case included, is an error.
func ReverseComplement(sequence string) (string, error) {
	out := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		c := complement[sequence[i]]
		if c == 0 {
			return "", fmt.Errorf("cannot reverse-complement %q: non-ACGTN base %q at position %d", sequence, sequence[i], i)
		}
		out[len(sequence)-1-i] = c
	}

	return string(out), nil
}
