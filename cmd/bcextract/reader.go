package main

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// lockstepReader hands out the records of one FASTQ source one at a time,
// buffering the chunks that fastx parses in the background.
type lockstepReader struct {
	path    string
	chunks  chan fastx.RecordChunk
	pending []*fastx.Record
	done    bool
}

func newLockstepReader(path string, fq *fastx.Reader) *lockstepReader {
	return &lockstepReader{
		path:   path,
		chunks: fq.ChunkChan(chunkBuffer, chunkSize),
	}
}

// Next returns io.EOF once the source is exhausted.
func (r *lockstepReader) Next() (*fastx.Record, error) {
	for len(r.pending) == 0 {
		if r.done {
			return nil, io.EOF
		}

		chunk, ok := <-r.chunks
		if !ok {
			r.done = true
			continue
		}

		if chunk.Err != nil && chunk.Err != io.EOF {
			r.done = true
			return nil, fmt.Errorf("%s: %w", r.path, chunk.Err)
		}

		r.pending = chunk.Data
	}

	record := r.pending[0]
	r.pending = r.pending[1:]

	return record, nil
}
