package testutil

import (
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeCBPack gunzips and decodes a cBpack file, checks its header and
// returns the bucket lists in index order.
func DecodeCBPack(tb testing.TB, path string) [][]string {
	tb.Helper()

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("open cBpack %s: %v", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		tb.Fatalf("cBpack: open gzip reader: %v", err)
	}
	defer zr.Close()

	dec := msgpack.NewDecoder(zr)

	n, err := dec.DecodeArrayLen()
	if err != nil {
		tb.Fatalf("cBpack: decode outer array: %v", err)
	}

	if n < 1 {
		tb.Fatalf("cBpack: outer array has %d elements; want a header", n)
	}

	header, err := dec.DecodeMap()
	if err != nil {
		tb.Fatalf("cBpack: decode header: %v", err)
	}

	if format, _ := header["format"].(string); format != "cB" {
		tb.Fatalf("cBpack: header format = %v; want %q", header["format"], "cB")
	}

	version, ok := toInt(header["version"])
	if !ok || version != 1 {
		tb.Fatalf("cBpack: header version = %v; want 1", header["version"])
	}

	buckets := make([][]string, 0, n-1)
	for i := 1; i < n; i++ {
		var bucket []string
		if err := dec.Decode(&bucket); err != nil {
			tb.Fatalf("cBpack: decode bucket %d: %v", i-1, err)
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// BucketOf returns the index of the bucket holding token, or -1.
func BucketOf(buckets [][]string, token string) int {
	for i, bucket := range buckets {
		for _, t := range bucket {
			if t == token {
				return i
			}
		}
	}

	return -1
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
