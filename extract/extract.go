// Package extract pulls barcodes out of amplicon reads with regular
// expressions whose named capture groups mark the barcodes.
package extract

import (
	"fmt"
	"regexp"

	"github.com/carbocation/pfx"
)

// Extractor applies one regular expression to a read sequence.
type Extractor struct {
	matcher *regexp.Regexp
	names   []string
}

// New compiles expr. It must contain at least one named capture group, e.g.
// `ACGT(?P<BC1>[ACGTN]{16})GGTA`.
func New(expr string) (*Extractor, error) {
	matcher, err := regexp.Compile(expr)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("invalid regex %q: %w", expr, err))
	}

	names := make([]string, 0)
	for _, name := range matcher.SubexpNames() {
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, pfx.Err(fmt.Errorf("barcode-matching regex (%q) has no named capture groups", expr))
	}

	return &Extractor{
		matcher: matcher,
		names:   names,
	}, nil
}

// Names lists the named capture groups in the order they appear in the
// expression.
func (e *Extractor) Names() []string {
	return e.names
}

// Extract returns the text of each named group, in Names order, from the
// leftmost match in sequence. It returns false if the expression does not
// match. A named group that did not take part in the match yields "".
func (e *Extractor) Extract(sequence string) ([]string, bool) {
	loc := e.matcher.FindStringSubmatchIndex(sequence)
	if loc == nil {
		return nil, false
	}

	out := make([]string, 0, len(e.names))
	for i, name := range e.matcher.SubexpNames() {
		if name == "" {
			continue
		}

		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, sequence[start:end])
	}

	return out, true
}
