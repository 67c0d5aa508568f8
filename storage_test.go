package bccount

import (
	"context"
	"io"
	"path/filepath"
	"testing"
)

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := splitGoogleStoragePath("gs://my-bucket/runs/counts.parquet")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || object != "runs/counts.parquet" {
		t.Errorf("Got bucket %q object %q", bucket, object)
	}

	for _, bad := range []string{"gs://", "gs://bucket-only", "gs:///object"} {
		if _, _, err := splitGoogleStoragePath(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestNeedsGoogleStorage(t *testing.T) {
	if NeedsGoogleStorage("a.tsv", "b.tsv", "out.parquet") {
		t.Error("Local paths should not need a storage client")
	}
	if !NeedsGoogleStorage("a.tsv", "gs://bucket/b.tsv") {
		t.Error("A gs:// path should need a storage client")
	}
}

func TestCreateThenOpenLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcs.tsv")

	w, err := Create(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, "BC1\tBC2\n"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "BC1\tBC2\n" {
		t.Errorf("Got %q", out)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "absent.tsv"), nil)
	if err == nil {
		t.Fatal("Expected an error opening a missing file")
	}
}
