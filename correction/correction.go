// Package correction maps observed barcodes that are absent from the reference
// table onto the reference barcode they most plausibly came from, then builds
// the annotated count table.
package correction

import (
	"fmt"

	"github.com/carbocation/bccount/bccounts"
	"github.com/carbocation/bccount/hamming"
	"github.com/carbocation/bccount/variantmap"
)

// DefaultThreshold is the largest number of substitutions that is corrected.
const DefaultThreshold = 1

// Oracle returns, for each query, every reference within threshold of it
// together with its distance. The result must have one entry per query, in
// query order. (*hamming.Searcher).NearbyWithinThreshold is an Oracle.
type Oracle func(queries, references []string, threshold int, caseInsensitive bool) [][]hamming.Match

// Correction maps an unmatched barcode onto a reference barcode.
type Correction struct {
	Uncorrected string
	Corrected   string
	Distance    int
}

// Corrections is keyed by the uncorrected barcode, so no barcode is ever
// corrected two ways.
type Corrections map[string]Correction

// Outcome records how an unmatched barcode was resolved.
type Outcome int

const (
	NoCandidates Outcome = iota
	SingleCandidate
	ConcordantTie
	DiscordantTie
)

func (o Outcome) String() string {
	switch o {
	case NoCandidates:
		return "no candidates"
	case SingleCandidate:
		return "single candidate"
	case ConcordantTie:
		return "concordant tie"
	case DiscordantTie:
		return "discordant tie"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Corrected reports whether the outcome produces a correction.
func (o Outcome) Corrected() bool {
	return o == SingleCandidate || o == ConcordantTie
}

// Tally counts outcomes over the distinct unmatched barcodes.
type Tally map[Outcome]int

// Corrector resolves unmatched barcodes against a reference table.
type Corrector struct {
	Reference       *variantmap.Table
	Oracle          Oracle
	Threshold       int
	CaseInsensitive bool
}

// New returns a Corrector that fixes single substitutions, comparing case
// exactly.
func New(reference *variantmap.Table, oracle Oracle) *Corrector {
	return &Corrector{
		Reference: reference,
		Oracle:    oracle,
		Threshold: DefaultThreshold,
	}
}

// Unmatched returns the distinct BC1 values of pairs that are not reference
// barcodes, in order of first appearance.
func Unmatched(pairs []bccounts.Pair, reference *variantmap.Table) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})

	for _, pair := range pairs {
		if reference.Contains(pair.BC1) {
			continue
		}
		if _, exists := seen[pair.BC1]; exists {
			continue
		}
		seen[pair.BC1] = struct{}{}
		out = append(out, pair.BC1)
	}

	return out
}

// Correct runs one bulk oracle search for all unmatched barcodes and resolves
// each one independently. Barcodes that cannot be resolved are left out of
// the returned Corrections.
func (c *Corrector) Correct(unmatched []string) (Corrections, Tally, error) {
	corrections := make(Corrections)
	tally := make(Tally)

	queries := make([]string, 0, len(unmatched))
	seen := make(map[string]struct{}, len(unmatched))
	for _, bc := range unmatched {
		if _, exists := seen[bc]; exists {
			continue
		}
		seen[bc] = struct{}{}
		queries = append(queries, bc)
	}

	if len(queries) == 0 {
		return corrections, tally, nil
	}

	results := c.Oracle(queries, c.Reference.Barcodes(), c.Threshold, c.CaseInsensitive)
	if len(results) != len(queries) {
		return nil, nil, fmt.Errorf("distance search returned %d results for %d barcodes", len(results), len(queries))
	}

	for i, bc := range queries {
		best, outcome, err := Resolve(results[i], c.Reference)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", bc, err)
		}

		tally[outcome]++
		if !outcome.Corrected() {
			continue
		}

		corrections[bc] = Correction{
			Uncorrected: bc,
			Corrected:   best.Target,
			Distance:    best.Distance,
		}
	}

	return corrections, tally, nil
}

// Resolve picks the correction for one barcode from its candidates.
//
// A lone candidate is taken as is. With several, only those at the shortest
// distance are considered; if they all carry the same variant label the last
// of them, in candidate order, is chosen. Disagreeing labels leave the
// barcode unresolved, as does an empty candidate list.
//
// Every candidate considered must be a reference barcode.
func Resolve(candidates []hamming.Match, reference *variantmap.Table) (hamming.Match, Outcome, error) {
	switch len(candidates) {
	case 0:
		return hamming.Match{}, NoCandidates, nil
	case 1:
		return candidates[0], SingleCandidate, nil
	}

	shortest := candidates[0].Distance
	for _, candidate := range candidates[1:] {
		if candidate.Distance < shortest {
			shortest = candidate.Distance
		}
	}

	var (
		label string
		last  hamming.Match
		first = true
	)

	for _, candidate := range candidates {
		if candidate.Distance != shortest {
			continue
		}

		entry, exists := reference.Lookup(candidate.Target)
		if !exists {
			return hamming.Match{}, NoCandidates, fmt.Errorf("candidate %s is not a reference barcode", candidate.Target)
		}

		if first {
			label = entry.Label()
			first = false
		} else if entry.Label() != label {
			return hamming.Match{}, DiscordantTie, nil
		}

		last = candidate
	}

	return hamming.Match{Target: last.Target, Distance: shortest}, ConcordantTie, nil
}
