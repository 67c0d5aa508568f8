// bcextract pulls barcodes out of amplicon FASTQ files. Each source is paired
// with one regex whose named capture groups mark the barcodes; sources are read
// in lockstep so that mate reads stay together. The output is a tab-delimited
// table with one column per capture group, suitable as the SOURCE of
// countbcs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "github.com/carbocation/bccount/compileinfoprint"
	"github.com/carbocation/bccount/extract"
	"github.com/carbocation/pfx"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

const (
	chunkBuffer = 10
	chunkSize   = 1000
)

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type options struct {
	Sources           []string
	Regexes           []string
	Output            string
	ReverseComplement bool
	ReadIDs           bool
	RunStats          string
}

func main() {
	var sources, regexes stringSlice
	opts := options{}

	flag.Var(&sources, "source", "A FASTQ file containing amplicon reads. Repeat once per read of a template.")
	flag.Var(&regexes, "regex", "Regex whose named capture groups, e.g. (?P<BC1>[ACGTN]{16}), match the barcodes. Give one per -source, in the same order.")
	flag.StringVar(&opts.Output, "output", "", "Path to the tab-delimited barcode table. Compressed if it ends in .gz.")
	flag.BoolVar(&opts.ReverseComplement, "reverse-complement-output", false, "Reverse-complement every captured barcode after matching.")
	flag.BoolVar(&opts.ReadIDs, "output-read-ids", false, "Write the FASTQ read IDs as leading columns.")
	flag.StringVar(&opts.RunStats, "run-stats", "", "(Optional) path to a JSON file of run statistics.")
	flag.Parse()

	opts.Sources = sources
	opts.Regexes = regexes

	if len(opts.Sources) == 0 || opts.Output == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Fatalln(err)
	}
}

func run(opts options) error {
	if len(opts.Sources) != len(opts.Regexes) {
		return fmt.Errorf("the number of regexes (%d) must match the number of sources (%d)", len(opts.Regexes), len(opts.Sources))
	}

	extractors := make([]*extract.Extractor, 0, len(opts.Regexes))
	for _, expr := range opts.Regexes {
		e, err := extract.New(expr)
		if err != nil {
			return err
		}
		extractors = append(extractors, e)
	}

	readers := make([]*lockstepReader, 0, len(opts.Sources))
	for _, source := range opts.Sources {
		fq, err := fastx.NewDefaultReader(source)
		if err != nil {
			return pfx.Err(fmt.Errorf("%s: %w", source, err))
		}
		defer fq.Close()

		readers = append(readers, newLockstepReader(source, fq))
	}

	out, err := xopen.Wopen(opts.Output)
	if err != nil {
		return pfx.Err(err)
	}

	stats, err := extractAll(out, readers, extractors, opts)
	if err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	log.Printf("Extracted barcodes from %d of %d reads\n", stats.ReadsWithBC, stats.TotalReads)

	if opts.RunStats == "" {
		return nil
	}

	sf, err := os.Create(opts.RunStats)
	if err != nil {
		return pfx.Err(err)
	}

	if err := stats.WriteJSON(sf); err != nil {
		sf.Close()
		return pfx.Err(err)
	}

	if err := sf.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// extractAll writes the header and then one line per set of reads that every
// extractor matches. It stops as soon as any source is exhausted.
func extractAll(w io.Writer, readers []*lockstepReader, extractors []*extract.Extractor, opts options) (extract.RunStats, error) {
	stats := extract.RunStats{}

	header := make([]string, 0)
	if opts.ReadIDs {
		for i := range readers {
			header = append(header, fmt.Sprintf("read%d_id", i+1))
		}
	}
	for _, e := range extractors {
		header = append(header, e.Names()...)
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return stats, pfx.Err(err)
	}

	records := make([]*fastx.Record, len(readers))
	fields := make([]string, 0, len(header))

READS:
	for {
		for i, r := range readers {
			record, err := r.Next()
			if err == io.EOF {
				break READS
			} else if err != nil {
				return stats, err
			}
			records[i] = record
		}
		stats.TotalReads++

		fields = fields[:0]
		if opts.ReadIDs {
			for _, record := range records {
				fields = append(fields, string(record.ID))
			}
		}

		for i, e := range extractors {
			captures, matched := e.Extract(string(records[i].Seq.Seq))
			if !matched {
				continue READS
			}

			for _, capture := range captures {
				if opts.ReverseComplement {
					rc, err := extract.ReverseComplement(capture)
					if err != nil {
						return stats, pfx.Err(fmt.Errorf("read %s: %w", records[i].ID, err))
					}
					capture = rc
				}
				fields = append(fields, capture)
			}
		}
		stats.ReadsWithBC++

		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return stats, pfx.Err(err)
		}
	}

	return stats, nil
}
