package multihash

import (
	"github.com/btcsuite/btcutil/base58"

	"github.com/spikeekips/multihash/util"
	"github.com/spikeekips/multihash/varint"
)

// Multihash pairs a hash function code with its digest; self-describing on
// the wire as `code varint || length varint || digest bytes`.
type Multihash struct {
	code   uint64
	digest Digest
}

func New(code uint64, digest []byte) (Multihash, error) {
	d, err := NewDigest(digest)
	if err != nil {
		return Multihash{}, err
	}

	return NewWithDigest(code, d), nil
}

func NewWithDigest(code uint64, d Digest) Multihash {
	return Multihash{code: code, digest: d}
}

// NewFromString decodes the base58 form produced by String.
func NewFromString(s string) (Multihash, error) {
	b := base58.Decode(s)

	mh, n, err := Parse(b)
	if err != nil {
		return Multihash{}, err
	}
	if n != len(b) {
		return Multihash{}, InvalidMultihashError.Errorf("%d trailing bytes", len(b)-n)
	}

	return mh, nil
}

func (mh Multihash) Code() uint64 {
	return mh.code
}

func (mh Multihash) Digest() []byte {
	return mh.digest.Bytes()
}

// Size returns the digest length in bytes.
func (mh Multihash) Size() int {
	return mh.digest.Size()
}

func (mh Multihash) Equal(b Multihash) bool {
	return mh.code == b.code && mh.digest.Equal(b.digest)
}

func (mh Multihash) IsEmpty() bool {
	return mh.code == 0 && mh.digest.IsEmpty()
}

func (mh Multihash) IsValid([]byte) error {
	if mh.IsEmpty() {
		return EmptyError
	}

	return nil
}

// Bytes returns the wire encoding.
func (mh Multihash) Bytes() []byte {
	return util.ConcatBytesSlice(
		varint.Encode(mh.code),
		varint.Encode(uint64(mh.digest.Size())),
		mh.digest.Bytes(),
	)
}

func (mh Multihash) String() string {
	return base58.Encode(mh.Bytes())
}
