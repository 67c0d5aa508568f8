// countbcs counts reads per (BC1, BC2) pair, corrects BC1 values that are a
// single substitution away from a known barcode, annotates each pair with the
// variant linked to its barcode, and writes the table as Parquet.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/bccount"
	_ "github.com/carbocation/bccount/compileinfoprint"
	"github.com/carbocation/bccount/bccounts"
	"github.com/carbocation/bccount/correction"
	"github.com/carbocation/bccount/hamming"
	"github.com/carbocation/bccount/parquetout"
	"github.com/carbocation/bccount/variantmap"
	"github.com/carbocation/pfx"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s SOURCE REFERENCE OUTPUT\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "SOURCE     Tab-delimited extracted barcodes with BC1 and BC2 columns, one read per row.")
		fmt.Fprintln(os.Stderr, "REFERENCE  Tab-delimited barcode-variant map with BC, var_ref, var_pos, var_alt and read_count columns.")
		fmt.Fprintln(os.Stderr, "OUTPUT     Parquet file to write.")
		fmt.Fprintln(os.Stderr, "\nAny path may be a google storage URL (gs://). Inputs may be compressed.")
		fmt.Fprintf(os.Stderr, "Set %s to limit the number of threads used.\n", bccount.SchedulerThreadsVar)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), bccount.AvailableThreads()); err != nil {
		log.Fatalln(err)
	}
}

func run(sourcePath, referencePath, outputPath string, threads int) error {
	ctx := context.Background()

	var client *storage.Client
	if bccount.NeedsGoogleStorage(sourcePath, referencePath, outputPath) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	log.Println("Loading barcode-variant map from", referencePath)
	reference, err := loadReference(ctx, referencePath, client)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d reference barcodes\n", reference.Len())

	log.Println("Counting barcode pairs in", sourcePath)
	pairs, err := countPairs(ctx, sourcePath, client)
	if err != nil {
		return err
	}
	log.Printf("Found %d distinct barcode pairs\n", len(pairs))

	unmatched := correction.Unmatched(pairs, reference)
	log.Printf("%d distinct BC1 values are not exact matches; searching with %d threads\n", len(unmatched), threads)

	corrector := correction.New(reference, hamming.NewSearcher(threads).NearbyWithinThreshold)
	corrections, tally, err := corrector.Correct(unmatched)
	if err != nil {
		return pfx.Err(err)
	}
	for _, outcome := range []correction.Outcome{correction.SingleCandidate, correction.ConcordantTie, correction.DiscordantTie, correction.NoCandidates} {
		log.Printf("\t%s: %d\n", outcome, tally[outcome])
	}
	log.Printf("Corrected %d of %d unmatched BC1 values\n", len(corrections), len(unmatched))

	rows := correction.Apply(pairs, corrections, reference)

	summary, err := correction.Summarize(rows)
	if err != nil {
		return pfx.Err(err)
	}
	log.Println(summary)

	log.Println("Writing", outputPath)
	if err := writeRows(ctx, outputPath, client, rows); err != nil {
		return err
	}

	log.Println("Done")

	return nil
}

func loadReference(ctx context.Context, path string, client *storage.Client) (*variantmap.Table, error) {
	r, err := bccount.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	br := bufio.NewReader(r)
	warnIfNotTabDelimited(path, br)

	table, err := variantmap.Read(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

func countPairs(ctx context.Context, path string, client *storage.Client) ([]bccounts.Pair, error) {
	r, err := bccount.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	br := bufio.NewReaderSize(r, 1<<20)
	warnIfNotTabDelimited(path, br)

	pairs, err := bccounts.Count(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}

func warnIfNotTabDelimited(path string, br *bufio.Reader) {
	if delim := bccount.PeekDelimiter(br); delim != '\t' {
		log.Printf("Warning: %s looks %q-delimited, but will be parsed as tab-delimited\n", path, delim)
	}
}

// writeRows only creates the output once every row is ready, and reports a
// failure to finalize it.
func writeRows(ctx context.Context, path string, client *storage.Client, rows []correction.FinalRow) error {
	w, err := bccount.Create(ctx, path, client)
	if err != nil {
		return err
	}

	if err := parquetout.Write(w, rows); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
