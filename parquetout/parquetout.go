// Package parquetout writes the annotated count table as a Parquet file.
package parquetout

import (
	"io"

	"github.com/carbocation/bccount/correction"
	"github.com/carbocation/pfx"
	"github.com/parquet-go/parquet-go"
)

// Row is the on-disk layout. Optional columns are null wherever the matching
// FinalRow field is null.
type Row struct {
	BC1                  string  `parquet:"BC1"`
	BC2                  string  `parquet:"BC2"`
	ReadCount            uint64  `parquet:"read_count"`
	CorrectedBC1Distance *uint64 `parquet:"corrected_BC1_distance,optional"`
	UncorrectedBC1       *string `parquet:"uncorrected_BC1,optional"`
	VarRef               *string `parquet:"var_ref,optional"`
	VarPos               *int64  `parquet:"var_pos,optional"`
	VarAlt               *string `parquet:"var_alt,optional"`
}

// rowGroupSize bounds how many rows are buffered before a row group is flushed.
const rowGroupSize = 64 * 1024

// FromFinalRow converts a FinalRow to its on-disk layout.
func FromFinalRow(r correction.FinalRow) Row {
	out := Row{
		BC1:            r.BC1,
		BC2:            r.BC2,
		ReadCount:      r.ReadCount,
		UncorrectedBC1: r.UncorrectedBC1.Ptr(),
		VarRef:         r.VarRef.Ptr(),
		VarPos:         r.VarPos.Ptr(),
		VarAlt:         r.VarAlt.Ptr(),
	}

	if r.CorrectionDistance.Valid {
		d := uint64(r.CorrectionDistance.Int64)
		out.CorrectedBC1Distance = &d
	}

	return out
}

// Write encodes rows, in order, as a zstd-compressed Parquet file.
func Write(w io.Writer, rows []correction.FinalRow) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Zstd))

	buf := make([]Row, 0, rowGroupSize)
	for _, r := range rows {
		buf = append(buf, FromFinalRow(r))
		if len(buf) < rowGroupSize {
			continue
		}

		if _, err := pw.Write(buf); err != nil {
			return pfx.Err(err)
		}
		buf = buf[:0]
	}

	if _, err := pw.Write(buf); err != nil {
		return pfx.Err(err)
	}

	if err := pw.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
