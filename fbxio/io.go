// Package fbxio provides the little-endian primitive reads/writes and the
// DEFLATE (zlib-format) wrap shared by the property and node binary codecs.
package fbxio

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/g3n/fbxkit/fbxerr"
)

// ReadU8 reads one unsigned byte.
func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read u8: %w", fbxerr.Truncated)
	}
	return b[0], nil
}

// ReadU32 reads a little-endian uint32.
func ReadU32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("read u32: %w", fbxerr.Truncated)
	}
	return v, nil
}

// ReadI64 reads a little-endian int64.
func ReadI64(r io.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("read i64: %w", fbxerr.Truncated)
	}
	return v, nil
}

// ReadBytes reads exactly n raw bytes.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", n, fbxerr.Truncated)
	}
	return buf, nil
}

// WriteU8 writes one unsigned byte.
func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// WriteU32 writes a little-endian uint32.
func WriteU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// WriteI64 writes a little-endian int64.
func WriteI64(w io.Writer, v int64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// Inflate decompresses a zlib-wrapped DEFLATE buffer and checks the result
// length against wantLen exactly, per the array-property encoding contract.
func Inflate(compressed []byte, wantLen int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("zlib open: %w", fbxerr.DecompressMismatch)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("zlib inflate: %w", fbxerr.DecompressMismatch)
	}
	if len(out) != wantLen {
		return nil, fmt.Errorf("inflated %d bytes, want %d: %w", len(out), wantLen, fbxerr.DecompressMismatch)
	}
	return out, nil
}

// Deflate compresses raw with zlib framing. fbxkit's writer always emits
// encoding=0 (raw) for array properties, and readers decode encoding=1 input
// through Inflate; this helper is used by tests to build encoding=1 input.
func Deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
