package bccount

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"
)

func TestDetectDataType(t *testing.T) {
	for _, v := range []struct {
		Head     []byte
		Expected DataType
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00}, DataTypeGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x14}, DataTypeZip},
		{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, DataTypeXZ},
		{[]byte{0x42, 0x5a, 0x68, 0x39}, DataTypeBZip2},
		{[]byte("BC1\tBC2\n"), DataTypeNoCompression},
		{[]byte{0x1f}, DataTypeNoCompression},
		{nil, DataTypeNoCompression},
	} {
		if dt := DetectDataType(v.Head); dt != v.Expected {
			t.Errorf("%v: got %s, expected %s", v.Head, dt, v.Expected)
		}
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	payload := "BC1\tBC2\nAAAA\tCCCC\n"

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	r, dt, err := MaybeDecompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if dt != DataTypeGzip {
		t.Errorf("Expected gzip, got %s", dt)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != payload {
		t.Errorf("Got %q, expected %q", out, payload)
	}
}

func TestMaybeDecompressPassthrough(t *testing.T) {
	for _, payload := range []string{"", "AC", "BC1\tBC2\nAAAA\tCCCC\n"} {
		r, dt, err := MaybeDecompress(bytes.NewBufferString(payload))
		if err != nil {
			t.Fatal(err)
		}

		if dt != DataTypeNoCompression {
			t.Errorf("%q: expected no compression, got %s", payload, dt)
		}

		out, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != payload {
			t.Errorf("Got %q, expected %q", out, payload)
		}
	}
}
