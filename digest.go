package multihash

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
)

// MaxSize is the fixed capacity of Digest.
const MaxSize = 64

// Digest holds up to MaxSize digest bytes and their actual length. The array
// beyond Size() stays zero, so Digest is comparable.
type Digest struct {
	b [MaxSize]byte
	n int
}

func NewDigest(b []byte) (Digest, error) {
	if len(b) > MaxSize {
		return Digest{}, DigestTooLargeError.Errorf("len=%d > max=%d", len(b), MaxSize)
	}

	var d Digest
	d.n = copy(d.b[:], b)

	return d, nil
}

func MustNewDigest(b []byte) Digest {
	d, err := NewDigest(b)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Digest) Size() int {
	return d.n
}

func (d Digest) Bytes() []byte {
	return d.b[:d.n]
}

func (d Digest) IsEmpty() bool {
	return d.n < 1
}

func (d Digest) Equal(b Digest) bool {
	return d.n == b.n && bytes.Equal(d.b[:d.n], b.b[:b.n])
}

// Compare orders digests lexicographically over their meaningful bytes.
func (d Digest) Compare(b Digest) int {
	return bytes.Compare(d.b[:d.n], b.b[:b.n])
}

func (d Digest) String() string {
	return base58.Encode(d.Bytes())
}
