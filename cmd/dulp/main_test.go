package main

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dulp"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunScalar(t *testing.T) {
	out, _, err := runCLI(t, "1", "1.0000000000000004")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = runCLI(t, "-32", "1", "0.99999994")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	out, _, err = runCLI(t, "--", "-0", "0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRunScalarErrors(t *testing.T) {
	_, _, err := runCLI(t, "1")
	assert.ErrorContains(t, err, "expected two values")

	_, _, err = runCLI(t, "1", "x")
	assert.Error(t, err)

	_, _, err = runCLI(t, "-a", "only")
	assert.ErrorContains(t, err, "both -a and -b")

	_, _, err = runCLI(t, "-codec", "gzip", "1", "2")
	assert.ErrorContains(t, err, "unknown codec")

	_, _, err = runCLI(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRunFiles(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, dulp.Step64(2, 5), 3, dulp.Step64(4, -7)}

	for _, c := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			pa := writeFile(t, "a.bin", compress(t, c, encode64(a...)))
			pb := writeFile(t, "b.bin", compress(t, c, encode64(b...)))

			out, _, err := runCLI(t, "-codec", c.String(), "-a", pa, "-b", pb)
			require.NoError(t, err)
			assert.Contains(t, out, "elements:   4\n")
			assert.Contains(t, out, "differing:  2\n")
			assert.Contains(t, out, "max |dulp|: 7\n")
			assert.Contains(t, out, "first differing: [1 3]\n")
		})
	}
}

func TestRunFilesBroadcast32(t *testing.T) {
	pa := writeFile(t, "a.bin", encode32(1))
	pb := writeFile(t, "b.bin", encode32(1, dulp.Step32(1, 3), dulp.Step32(1, -1)))

	out, _, err := runCLI(t, "-32", "-show", "0", "-a", pa, "-b", pb)
	require.NoError(t, err)
	assert.Contains(t, out, "elements:   3\n")
	assert.Contains(t, out, "differing:  2\n")
	assert.Contains(t, out, "max |dulp|: 3\n")
	assert.NotContains(t, out, "first differing")
}

func TestRunFilesShapeMismatch(t *testing.T) {
	pa := writeFile(t, "a.bin", encode64(1, 2))
	pb := writeFile(t, "b.bin", encode64(1, 2, 3))

	_, _, err := runCLI(t, "-a", pa, "-b", pb)
	assert.ErrorIs(t, err, dulp.ErrShapeMismatch)
}

func TestRunJSONLogs(t *testing.T) {
	pa := writeFile(t, "a.bin", encode64(1))
	pb := writeFile(t, "b.bin", encode64(2))

	_, logs, err := runCLI(t, "-json", "-log-level", "debug", "-a", pa, "-b", pb)
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"comparison finished"`)
}
