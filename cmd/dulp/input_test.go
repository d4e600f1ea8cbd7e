package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode64(values ...float64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func encode32(values ...float32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func compress(t *testing.T, c Codec, raw []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	switch c {
	case CodecZstd:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = enc.Write(raw)
		require.NoError(t, err)
		require.NoError(t, enc.Close())
	case CodecLZ4:
		w := lz4.NewWriter(&buf)
		_, err := w.Write(raw)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		buf.Write(raw)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		in   string
		want Codec
		ok   bool
	}{
		{"", CodecNone, true},
		{"none", CodecNone, true},
		{"ZSTD", CodecZstd, true},
		{"zst", CodecZstd, true},
		{" lz4 ", CodecLZ4, true},
		{"gzip", CodecNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseCodec(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, "lz4", CodecLZ4.String())
	assert.Equal(t, "unknown", Codec(9).String())
}

func TestDecodeStream(t *testing.T) {
	want := []float64{0, -0.5, 1e300, math.Inf(-1), 3}

	for _, c := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			data := compress(t, c, encode64(want...))
			arr, err := decodeStream(bytes.NewReader(data), c, readFloat64s)
			require.NoError(t, err)
			assert.Equal(t, []int{len(want)}, arr.Shape())
			assert.Equal(t, want, arr.Data())
		})
	}
}

func TestDecodeStreamSingleValue(t *testing.T) {
	arr, err := decodeStream(bytes.NewReader(encode32(2.5)), CodecNone, readFloat32s)
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Ndim())
	assert.Equal(t, float32(2.5), arr.At())
}

func TestDecodeStreamErrors(t *testing.T) {
	_, err := decodeStream(bytes.NewReader([]byte{1, 2, 3}), CodecNone, readFloat32s)
	assert.ErrorContains(t, err, "not a multiple of 4")

	_, err = decodeStream(bytes.NewReader(encode64(1)), CodecZstd, readFloat64s)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "a.lz4", compress(t, CodecLZ4, encode32(1, 2, 3)))

	arr, err := loadFile(path, CodecLZ4, readFloat32s)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, arr.Data())

	_, err = loadFile(filepath.Join(t.TempDir(), "missing"), CodecNone, readFloat32s)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
