package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/zeebo/xxh3"
)

// Hashable is anything that can feed its identity into a hash. Two values
// that write the same bytes are considered the same.
type Hashable interface {
	UpdateHash(w io.Writer) error
}

// Sha256 returns the hex-encoded SHA-256 of h. Use it when the digest is
// stored or compared across processes.
func Sha256(h Hashable) (string, error) {
	hasher := sha256.New()

	if err := h.UpdateHash(hasher); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// XXH3 returns the 64-bit xxh3 digest of h. It is much faster than Sha256
// and meant for in-process comparisons.
func XXH3(h Hashable) (uint64, error) {
	hasher := xxh3.New()

	if err := h.UpdateHash(hasher); err != nil {
		return 0, err
	}

	return hasher.Sum64(), nil
}

// Int64s hashes as the little-endian encoding of each element in order, so
// the digest changes whenever the order changes.
type Int64s []int64

func (s Int64s) UpdateHash(w io.Writer) error {
	buf := make([]byte, 0, 8*len(s)) //nolint:mnd
	for _, v := range s {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //nolint:gosec
	}

	_, err := w.Write(buf)

	return err
}

// String hashes as its UTF-8 bytes.
type String string

func (s String) UpdateHash(w io.Writer) error {
	_, err := io.WriteString(w, string(s))

	return err
}
