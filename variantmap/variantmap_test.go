package variantmap

import (
	"errors"
	"strings"
	"testing"
)

const referenceTSV = "BC\tvar_ref\tvar_pos\tvar_alt\tread_count\n" +
	"AAAA\tG\t10\tT\t52\n" +
	"CCCC\tA\t5\tC\t8\n" +
	"AAAT\tG\t10\tT\t3\n"

func TestRead(t *testing.T) {
	table, err := Read(strings.NewReader(referenceTSV))
	if err != nil {
		t.Fatal(err)
	}

	if table.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", table.Len())
	}

	if got := strings.Join(table.Barcodes(), ","); got != "AAAA,CCCC,AAAT" {
		t.Errorf("Barcodes out of load order: %s", got)
	}

	entry, exists := table.Lookup("CCCC")
	if !exists {
		t.Fatal("CCCC not found")
	}
	if entry != (Entry{BC: "CCCC", VarRef: "A", VarPos: 5, VarAlt: "C"}) {
		t.Errorf("Unexpected entry %+v", entry)
	}

	if table.Contains("GGGG") {
		t.Error("GGGG should not be present")
	}
	if _, exists := table.Lookup("GGGG"); exists {
		t.Error("Lookup of GGGG should fail")
	}
}

func TestReadColumnOrderIndependent(t *testing.T) {
	in := "read_count\tvar_alt\tBC\tvar_pos\tvar_ref\n" +
		"1\tT\tAAAA\t10\tG\n"

	table, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	entry, _ := table.Lookup("AAAA")
	if entry.Label() != "G10T" {
		t.Errorf("Expected G10T, got %s", entry.Label())
	}
}

func TestReadFailures(t *testing.T) {
	for name, in := range map[string]string{
		"missing column": "BC\tvar_ref\tvar_pos\tread_count\nAAAA\tG\t10\t1\n",
		"ragged row":     "BC\tvar_ref\tvar_pos\tvar_alt\tread_count\nAAAA\tG\t10\n",
		"bad position":   "BC\tvar_ref\tvar_pos\tvar_alt\tread_count\nAAAA\tG\tten\tT\t1\n",
		"empty barcode":  "BC\tvar_ref\tvar_pos\tvar_alt\tread_count\n\tG\t10\tT\t1\n",
		"empty file":     "",
	} {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestReadDuplicateBarcode(t *testing.T) {
	in := referenceTSV + "CCCC\tT\t7\tA\t1\n"

	_, err := Read(strings.NewReader(in))
	if !errors.Is(err, ErrDuplicateBarcode) {
		t.Fatalf("Expected ErrDuplicateBarcode, got %v", err)
	}
	if !strings.Contains(err.Error(), "CCCC") {
		t.Errorf("Error should name the barcode: %v", err)
	}
}

func TestLabel(t *testing.T) {
	for _, v := range []struct {
		Entry    Entry
		Expected string
	}{
		{Entry{VarRef: "G", VarPos: 10, VarAlt: "T"}, "G10T"},
		{Entry{VarRef: "A", VarPos: 5, VarAlt: "C"}, "A5C"},
		{Entry{VarRef: "GA", VarPos: 123, VarAlt: "-"}, "GA123-"},
	} {
		if got := v.Entry.Label(); got != v.Expected {
			t.Errorf("Got %s, expected %s", got, v.Expected)
		}
	}
}
