package correction

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes a finished count table.
type Summary struct {
	Pairs      int
	Reads      uint64
	Exact      int // BC1 was a reference barcode as observed
	Corrected  int // BC1 was rewritten to a reference barcode
	Unassigned int // no variant could be attached

	MeanReads   float64
	MedianReads float64
	MaxReads    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pairs (%d reads): %d exact, %d corrected, %d unassigned. Reads per pair: mean %.2f, median %.1f, max %.0f",
		s.Pairs, s.Reads, s.Exact, s.Corrected, s.Unassigned, s.MeanReads, s.MedianReads, s.MaxReads)
}

// Summarize tallies rows as produced by Apply.
func Summarize(rows []FinalRow) (Summary, error) {
	out := Summary{Pairs: len(rows)}
	if len(rows) == 0 {
		return out, nil
	}

	counts := make([]float64, 0, len(rows))
	for _, row := range rows {
		out.Reads += row.ReadCount
		counts = append(counts, float64(row.ReadCount))

		switch {
		case !row.VarRef.Valid:
			out.Unassigned++
		case row.UncorrectedBC1.Valid:
			out.Corrected++
		default:
			out.Exact++
		}
	}

	data := stats.LoadRawData(counts)

	var err error
	if out.MeanReads, err = data.Mean(); err != nil {
		return out, err
	}
	if out.MedianReads, err = data.Median(); err != nil {
		return out, err
	}
	if out.MaxReads, err = data.Max(); err != nil {
		return out, err
	}

	return out, nil
}
