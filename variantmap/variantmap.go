// Package variantmap holds the table of known barcodes and the variant each
// one was linked to by long-read sequencing.
package variantmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ErrDuplicateBarcode is returned when a barcode appears on more than one row
// of a reference table.
var ErrDuplicateBarcode = errors.New("duplicate reference barcode")

// Entry is one known barcode and its variant.
type Entry struct {
	BC     string
	VarRef string
	VarPos int64
	VarAlt string
}

// Label identifies the variant, e.g. "G10T". Two entries with the same label
// describe the same variant.
func (e Entry) Label() string {
	return e.VarRef + strconv.FormatInt(e.VarPos, 10) + e.VarAlt
}

// referenceRecord is one row of the reference TSV. The read_count column must
// be present but is not kept.
type referenceRecord struct {
	BC        string `csv:"BC"`
	VarRef    string `csv:"var_ref"`
	VarPos    int64  `csv:"var_pos"`
	VarAlt    string `csv:"var_alt"`
	ReadCount string `csv:"read_count"`
}

// Table is an immutable, barcode-unique reference table that remembers the
// order its rows were loaded in.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New builds a table from entries, failing with ErrDuplicateBarcode if any
// barcode repeats.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		if prior, exists := t.index[entry.BC]; exists {
			return nil, fmt.Errorf("%w: %s on rows %d and %d", ErrDuplicateBarcode, entry.BC, prior+1, i+1)
		}
		t.index[entry.BC] = len(t.entries)
		t.entries = append(t.entries, entry)
	}

	return t, nil
}

// Read parses a tab-delimited reference table with the columns BC, var_ref,
// var_pos, var_alt and read_count. Missing columns, ragged rows and
// non-integer positions are errors, as are duplicate barcodes.
func Read(in io.Reader) (*Table, error) {
	r := csv.NewReader(in)
	r.Comma = '\t'
	r.LazyQuotes = true

	gocsv.FailIfUnmatchedStructTags = true

	records := []*referenceRecord{}
	if err := gocsv.UnmarshalCSV(r, &records); err != nil {
		return nil, pfx.Err(err)
	}

	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		if record.BC == "" {
			return nil, pfx.Err(fmt.Errorf("reference row %d has an empty BC", i+1))
		}

		entries = append(entries, Entry{
			BC:     record.BC,
			VarRef: record.VarRef,
			VarPos: record.VarPos,
			VarAlt: record.VarAlt,
		})
	}

	return New(entries)
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for barcode bc.
func (t *Table) Lookup(bc string) (Entry, bool) {
	i, exists := t.index[bc]
	if !exists {
		return Entry{}, false
	}

	return t.entries[i], true
}

func (t *Table) Contains(bc string) bool {
	_, exists := t.index[bc]
	return exists
}

// Barcodes returns every barcode in load order.
func (t *Table) Barcodes() []string {
	out := make([]string, len(t.entries))
	for i, entry := range t.entries {
		out[i] = entry.BC
	}

	return out
}
