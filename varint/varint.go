package varint

import (
	"io"

	"github.com/spikeekips/multihash/util"
)

// MaxLen is the longest canonical encoding of a uint64, in bytes.
const MaxLen = 10

var (
	MalformedError    = util.NewError("malformed varint")
	OverflowError     = util.NewError("varint overflows uint64")
	NonCanonicalError = util.NewError("non-canonical varint")
)

// Len returns the number of bytes Encode produces for v.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Encode encodes v into 7bit groups, little-endian group order, the high bit
// of every byte except the last marking continuation. The result is always
// the minimal-length encoding.
func Encode(v uint64) []byte {
	b := make([]byte, 0, MaxLen)
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}

	return append(b, byte(v))
}

// Decode decodes one varint from the head of b, returning the value and the
// number of bytes consumed. Non-minimal encodings are rejected with
// NonCanonicalError; see the multiformats unsigned-varint rule.
func Decode(b []byte) (uint64, int, error) {
	var v uint64
	for i, c := range b {
		if i == MaxLen-1 && c > 0x01 {
			// 9 full groups hold 63 bits; only the lowest bit of the
			// 10th group can be set.
			return 0, 0, OverflowError.Errorf("%d bytes", i+1)
		}

		v |= uint64(c&0x7f) << uint(7*i)

		if c&0x80 == 0 {
			if c == 0x00 && i > 0 {
				return 0, 0, NonCanonicalError.Errorf("trailing zero group")
			}

			return v, i + 1, nil
		}
	}

	return 0, 0, MalformedError.Errorf("unexpected end of input")
}

// Read reads one varint from r, one byte at a time. io.EOF before the first
// byte is returned as is so that callers can detect a cleanly ended stream.
func Read(r io.Reader) (uint64, error) {
	var b [MaxLen]byte
	for i := 0; i < MaxLen; i++ {
		if _, err := io.ReadFull(r, b[i:i+1]); err != nil {
			if i == 0 && err == io.EOF {
				return 0, err
			}

			return 0, MalformedError.Wrap(err)
		}

		if b[i]&0x80 == 0 {
			v, _, err := Decode(b[: i+1 : i+1])

			return v, err
		}
	}

	return 0, OverflowError.Errorf("more than %d bytes", MaxLen)
}
