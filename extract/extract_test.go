package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	e, err := New(`GGTA(?P<BC1>[ACGTN]{4})CC(?P<BC2>[ACGTN]{4})`)
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(e.Names(), ","); got != "BC1,BC2" {
		t.Errorf("Names: %s", got)
	}

	for _, bad := range []string{`ACGT([ACGT]{4})`, `ACGT`, `(?P<BC1>[ACGT`} {
		if _, err := New(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestExtract(t *testing.T) {
	e, err := New(`GGTA(?P<BC1>[ACGTN]{4})(AA)?CC(?P<BC2>[ACGTN]{4})`)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []struct {
		Sequence string
		Expected []string
		OK       bool
	}{
		{"TTGGTAACGTCCTTTTGA", []string{"ACGT", "TTTT"}, true},
		{"GGTAACGTAACCNNNN", []string{"ACGT", "NNNN"}, true},
		{"TTGGTAACGTGGTTTT", nil, false},
		{"", nil, false},
	} {
		got, ok := e.Extract(v.Sequence)
		if ok != v.OK || strings.Join(got, ",") != strings.Join(v.Expected, ",") {
			t.Errorf("%s: got %v, %t; expected %v, %t", v.Sequence, got, ok, v.Expected, v.OK)
		}
	}
}

func TestExtractOptionalGroup(t *testing.T) {
	e, err := New(`AC(?P<UMI>TT)?(?P<BC1>GG)`)
	if err != nil {
		t.Fatal(err)
	}

	got, ok := e.Extract("ACGG")
	if !ok || len(got) != 2 || got[0] != "" || got[1] != "GG" {
		t.Errorf("Got %q, %t", got, ok)
	}
}

func TestReverseComplement(t *testing.T) {
	for _, v := range []struct {
		In, Out string
	}{
		{"ACGTN", "NACGT"},
		{"AAAC", "GTTT"},
		{"", ""},
	} {
		got, err := ReverseComplement(v.In)
		if err != nil {
			t.Fatal(err)
		}
		if got != v.Out {
			t.Errorf("%s: got %s, expected %s", v.In, got, v.Out)
		}
	}

	for _, bad := range []string{"ACGU", "acgt", "AC-T"} {
		if _, err := ReverseComplement(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestRunStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (RunStats{TotalReads: 10, ReadsWithBC: 7}).WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	expected := "{\n\t\"total_reads\": 10,\n\t\"reads_with_BC\": 7\n}\n"
	if buf.String() != expected {
		t.Errorf("Got %q, expected %q", buf.String(), expected)
	}
}
