package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/dulp/ndarray"
)

// Codec defines the compression of an input stream.
type Codec uint8

const (
	// CodecNone reads the stream as is.
	CodecNone Codec = iota
	// CodecZstd reads a zstd frame stream.
	CodecZstd
	// CodecLZ4 reads an LZ4 frame stream.
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCodec parses a codec name.
func ParseCodec(s string) (Codec, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "raw":
		return CodecNone, true
	case "zstd", "zst":
		return CodecZstd, true
	case "lz4":
		return CodecLZ4, true
	default:
		return CodecNone, false
	}
}

// newReader wraps r with the decompressor for c.
func newReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

func readFloat64s(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("input length %d is not a multiple of 8", len(data))
	}
	out := make([]float64, len(data)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return out, nil
}

func readFloat32s(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("input length %d is not a multiple of 4", len(data))
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}

// decodeStream decompresses r and decodes it into an array. A stream with
// exactly one element becomes a zero-dimensional array so it broadcasts.
func decodeStream[T any](r io.Reader, c Codec, decode func([]byte) ([]T, error)) (*ndarray.Array[T], error) {
	rc, err := newReader(r, c)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c, err)
	}
	values, err := decode(data)
	if err != nil {
		return nil, err
	}
	if len(values) == 1 {
		return ndarray.Scalar(values[0]), nil
	}
	return ndarray.FromSlice(values)
}

func loadFile[T any](path string, c Codec, decode func([]byte) ([]T, error)) (*ndarray.Array[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	arr, err := decodeStream(f, c, decode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arr, nil
}
