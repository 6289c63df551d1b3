package imaging

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// FingerprintAlgorithm names the hash behind Fingerprint. XXH64 has a
// published specification, so fingerprints are stable across builds,
// architectures and processes.
const FingerprintAlgorithm = "xxh64"

// Fingerprint hashes the raw bytes of the file at path with XXH64 (seed 0)
// and returns the digest as 16 lowercase hex digits.
//
// The file is not required to be an image. It is read into memory in full;
// a fingerprint is never computed over a partial read.
//
// It is meant for fast change detection, not as a collision resistant
// identity. All failures are *Error with KindRead.
func Fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindRead, "read", path, err)
	}
	return FingerprintBytes(data), nil
}

// FingerprintBytes is Fingerprint over an in-memory byte sequence.
func FingerprintBytes(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
