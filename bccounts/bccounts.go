// Package bccounts groups raw barcode observations into per-pair read counts.
package bccounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// Column names that must appear in the header of an observation file.
const (
	ColBC1 = "BC1"
	ColBC2 = "BC2"
)

// Pair is one distinct (BC1, BC2) combination and the number of reads that
// carried it.
type Pair struct {
	BC1       string
	BC2       string
	ReadCount uint64
}

type pairKey struct {
	bc1, bc2 string
}

// Count reads a tab-delimited file of observations, one read per row, and
// returns one Pair per distinct (BC1, BC2) in order of first appearance. Other
// columns are ignored. A missing header column, a row with the wrong number of
// fields, or an empty BC1 or BC2 is an error.
func Count(in io.Reader) ([]Pair, error) {
	r := csv.NewReader(in)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, pfx.Err(fmt.Errorf("no header found"))
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	bc1Col, bc2Col := -1, -1
	for i, name := range header {
		switch name {
		case ColBC1:
			bc1Col = i
		case ColBC2:
			bc2Col = i
		}
	}
	if bc1Col < 0 {
		return nil, pfx.Err(fmt.Errorf("column '%s' was not found in header %v", ColBC1, header))
	}
	if bc2Col < 0 {
		return nil, pfx.Err(fmt.Errorf("column '%s' was not found in header %v", ColBC2, header))
	}

	pairs := make([]Pair, 0)
	seen := make(map[pairKey]int)

	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if row[bc1Col] == "" || row[bc2Col] == "" {
			return nil, pfx.Err(fmt.Errorf("line %d: empty %s or %s", line, ColBC1, ColBC2))
		}

		key := pairKey{row[bc1Col], row[bc2Col]}
		if i, exists := seen[key]; exists {
			pairs[i].ReadCount++
			continue
		}

		seen[key] = len(pairs)
		pairs = append(pairs, Pair{BC1: key.bc1, BC2: key.bc2, ReadCount: 1})
	}

	return pairs, nil
}
