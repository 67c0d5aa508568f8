package extract

import (
	"encoding/json"
	"io"
)

// RunStats counts the reads seen during an extraction run.
type RunStats struct {
	TotalReads  int `json:"total_reads"`
	ReadsWithBC int `json:"reads_with_BC"`
}

// WriteJSON writes s as an indented JSON object.
func (s RunStats) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")

	return enc.Encode(s)
}
