package imaging

import (
	"image/color"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestFingerprintBytes_KnownVectors(t *testing.T) {
	t.Parallel()

	// published XXH64 test vectors, seed 0
	assert.Equal(t, "ef46db3751d8e999", FingerprintBytes(nil))
	assert.Equal(t, "44bc2cf5ad770999", FingerprintBytes([]byte("abc")))
}

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "data.bin", []byte("some bytes that are not an image"))

	first, err := Fingerprint(path)
	require.NoError(t, err)
	second, err := Fingerprint(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, hexDigest, first)
}

func TestFingerprint_SingleByteChange(t *testing.T) {
	t.Parallel()

	data := encodeAs(t, newFilledImage(32, 32, color.White), "png")
	path := writeFile(t, "image.png", data)
	before, err := Fingerprint(path)
	require.NoError(t, err)

	data[len(data)/2] ^= 0x01
	require.NoError(t, os.WriteFile(path, data, 0o644))
	after, err := Fingerprint(path)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFingerprint_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty", nil)

	got, err := Fingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, FingerprintBytes(nil), got)
}

func TestFingerprint_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"nonexistent": "/nonexistent/file.bin",
		"directory":   t.TempDir(),
	}

	for name, path := range tests {
		path := path
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Fingerprint(path)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrRead)
			assert.Equal(t, KindRead, KindOf(err))
		})
	}
}
