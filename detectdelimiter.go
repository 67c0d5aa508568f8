package bccount

import (
	"bufio"
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// sniffBytes is how much of a stream is inspected when guessing its delimiter.
const sniffBytes = 32 * 1024

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// PeekDelimiter guesses the delimiter of br from its first few kilobytes
// without consuming anything.
func PeekDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(sniffBytes)
	if len(head) == 0 {
		return '\t'
	}

	return DetermineDelimiter(bytes.NewReader(head))
}
