package correction

import (
	"sort"

	"github.com/carbocation/bccount/bccounts"
	"github.com/carbocation/bccount/variantmap"
	"gopkg.in/guregu/null.v3"
)

// FinalRow is one (BC1, BC2) pair after correction, annotated with the variant
// of its (possibly corrected) BC1. The nullable columns are null when no
// correction was applied, or when BC1 is still not a reference barcode.
type FinalRow struct {
	BC1       string
	BC2       string
	ReadCount uint64

	CorrectionDistance null.Int
	UncorrectedBC1     null.String

	VarRef null.String
	VarPos null.Int
	VarAlt null.String
}

// Apply rewrites BC1 for every pair that has a correction, keeping the original
// value in UncorrectedBC1, sorts by descending read count (ties keep input
// order), and joins the reference variant onto BC1. There is exactly one row
// per input pair. Neither input is modified.
func Apply(pairs []bccounts.Pair, corrections Corrections, reference *variantmap.Table) []FinalRow {
	rows := make([]FinalRow, len(pairs))

	for i, pair := range pairs {
		row := FinalRow{
			BC1:       pair.BC1,
			BC2:       pair.BC2,
			ReadCount: pair.ReadCount,
		}

		if correction, exists := corrections[pair.BC1]; exists {
			row.UncorrectedBC1 = null.StringFrom(pair.BC1)
			row.BC1 = correction.Corrected
			row.CorrectionDistance = null.IntFrom(int64(correction.Distance))
		}

		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ReadCount > rows[j].ReadCount
	})

	for i := range rows {
		entry, exists := reference.Lookup(rows[i].BC1)
		if !exists {
			continue
		}

		rows[i].VarRef = null.StringFrom(entry.VarRef)
		rows[i].VarPos = null.IntFrom(entry.VarPos)
		rows[i].VarAlt = null.StringFrom(entry.VarAlt)
	}

	return rows
}
