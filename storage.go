// Package bccount holds the I/O plumbing shared by the barcode commands:
// local and Google Storage paths, transparent decompression, delimiter
// sniffing, and the scheduler thread hint.
package bccount

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names an object in Google Storage.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// NeedsGoogleStorage reports whether any of paths requires a storage client.
func NeedsGoogleStorage(paths ...string) bool {
	for _, path := range paths {
		if IsGoogleStoragePath(path) {
			return true
		}
	}

	return false
}

func splitGoogleStoragePath(path string) (bucketName, objectName string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// Open opens a local file or, when client is non-nil and the path starts with
// gs://, a Google Storage object. Compressed inputs are transparently
// decompressed. Closing the returned reader closes the underlying source.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	var src io.ReadCloser

	if client != nil && IsGoogleStoragePath(path) {
		bucketName, objectName, err := splitGoogleStoragePath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}
		src = rdr
	} else {
		f, err := os.Open(ExpandHome(path))
		if err != nil {
			return nil, pfx.Err(err)
		}
		src = f
	}

	r, _, err := MaybeDecompress(src)
	if err != nil {
		src.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &chainedCloser{Reader: r, closers: []io.Closer{r, src}}, nil
}

// Create opens path for writing, either as a local file or, when client is
// non-nil and the path starts with gs://, as a Google Storage object. For
// Google Storage the object only becomes visible once Close returns without
// error.
func Create(ctx context.Context, path string, client *storage.Client) (io.WriteCloser, error) {
	if client != nil && IsGoogleStoragePath(path) {
		bucketName, objectName, err := splitGoogleStoragePath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		return client.Bucket(bucketName).Object(objectName).NewWriter(ctx), nil
	}

	f, err := os.Create(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

type chainedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainedCloser) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
