// bcgraphstats describes how well separated the barcodes of a barcode-variant
// map are: the radius and diameter of their Hamming graph, the spread of
// per-barcode eccentricities, and optionally every pair of barcodes that lie
// close enough to be confused by error correction.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/bccount"
	_ "github.com/carbocation/bccount/compileinfoprint"
	"github.com/carbocation/bccount/hamming"
	"github.com/carbocation/bccount/variantmap"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

func main() {
	var reference string
	var threshold, pairThreshold int
	var pairs bool

	flag.StringVar(&reference, "reference", "", "Tab-delimited barcode-variant map with BC, var_ref, var_pos, var_alt and read_count columns. May be a gs:// URL.")
	flag.IntVar(&threshold, "threshold", 4, "Distances above this are counted as this value when computing eccentricities.")
	flag.BoolVar(&pairs, "pairs", false, "Also print every pair of barcodes within -pair-threshold of each other. Quadratic in memory.")
	flag.IntVar(&pairThreshold, "pair-threshold", 2, "Largest distance at which a pair is printed by -pairs.")
	flag.Parse()

	if reference == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(os.Stdout, reference, threshold, pairs, pairThreshold, bccount.AvailableThreads()); err != nil {
		log.Fatalln(err)
	}
}

func run(w io.Writer, referencePath string, threshold int, pairs bool, pairThreshold, threads int) error {
	ctx := context.Background()

	var client *storage.Client
	if bccount.NeedsGoogleStorage(referencePath) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	r, err := bccount.Open(ctx, referencePath, client)
	if err != nil {
		return err
	}
	defer r.Close()

	table, err := variantmap.Read(bufio.NewReader(r))
	if err != nil {
		return fmt.Errorf("%s: %w", referencePath, err)
	}

	barcodes := table.Barcodes()
	searcher := hamming.NewSearcher(threads)

	log.Printf("Computing graph statistics for %d barcodes at threshold %d\n", len(barcodes), threshold)
	graph := searcher.GraphStatistics(barcodes, threshold)

	fmt.Fprintf(w, "barcodes\t%d\n", len(barcodes))
	fmt.Fprintf(w, "threshold\t%d\n", threshold)
	fmt.Fprintf(w, "radius\t%d\n", graph.Radius)
	fmt.Fprintf(w, "diameter\t%d\n", graph.Diameter)

	printEccentricities(graph)

	if !pairs {
		return nil
	}

	return printPairs(w, table, searcher.Distances(barcodes, barcodes, pairThreshold))
}

// printEccentricities draws a histogram to stderr. uniplot cannot bucket a
// set of identical values, so that case is only logged.
func printEccentricities(graph hamming.GraphStatistics) {
	if graph.Diameter == graph.Radius {
		log.Printf("All %d barcodes have eccentricity %d\n", len(graph.Eccentricities), graph.Radius)
		return
	}

	values := make([]float64, 0, len(graph.Eccentricities))
	for _, e := range graph.Eccentricities {
		values = append(values, float64(e))
	}

	hist := histogram.Hist(graph.Diameter-graph.Radius+1, values)
	if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(40)); err != nil {
		log.Println(err)
	}
}

func printPairs(w io.Writer, table *variantmap.Table, distances [][]null.Int) error {
	barcodes := table.Barcodes()

	if _, err := fmt.Fprintln(w, "BC_a\tBC_b\tdistance\tvariant_a\tvariant_b"); err != nil {
		return pfx.Err(err)
	}

	for i, row := range distances {
		for j := i + 1; j < len(row); j++ {
			if !row[j].Valid {
				continue
			}

			a, _ := table.Lookup(barcodes[i])
			b, _ := table.Lookup(barcodes[j])

			if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", a.BC, b.BC, row[j].Int64, a.Label(), b.Label()); err != nil {
				return pfx.Err(err)
			}
		}
	}

	return nil
}
