package multihash

import (
	"io"

	"github.com/spikeekips/multihash/varint"
)

// EncodedLen returns the exact number of bytes Write produces for a multihash
// of the given code and digest length.
func EncodedLen(code uint64, size int) int {
	return varint.Len(code) + varint.Len(uint64(size)) + size
}

// Write encodes mh into w; the sink decides whether it can hold the result
// (FixedWriter fails with InsufficientBufferError, it never truncates).
func Write(w io.Writer, mh Multihash) (int, error) {
	var written int
	for _, b := range [][]byte{
		varint.Encode(mh.Code()),
		varint.Encode(uint64(mh.Size())),
		mh.Digest(),
	} {
		n, err := w.Write(b)
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// Read decodes one multihash from r, consuming exactly its encoded length;
// anything after it is left in r for the caller.
func Read(r io.Reader) (Multihash, error) {
	code, err := varint.Read(r)
	if err != nil {
		return Multihash{}, err
	}

	size, err := varint.Read(r)
	if err != nil {
		if err == io.EOF {
			return Multihash{}, TruncatedError.Errorf("missing digest length")
		}

		return Multihash{}, err
	}

	if size > MaxSize {
		return Multihash{}, DigestTooLargeError.Errorf("len=%d > max=%d", size, MaxSize)
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return Multihash{}, TruncatedError.Errorf("%d bytes declared; %v", size, err)
	}

	return New(code, b)
}

// Parse decodes one multihash from the head of b, returning the number of
// bytes consumed; trailing bytes are the caller's.
func Parse(b []byte) (Multihash, int, error) {
	code, n, err := varint.Decode(b)
	if err != nil {
		return Multihash{}, 0, err
	}

	size, m, err := varint.Decode(b[n:])
	if err != nil {
		return Multihash{}, 0, err
	}
	n += m

	if size > MaxSize {
		return Multihash{}, 0, DigestTooLargeError.Errorf("len=%d > max=%d", size, MaxSize)
	}

	if uint64(len(b)-n) < size {
		return Multihash{}, 0, TruncatedError.Errorf("%d bytes declared, %d remain", size, len(b)-n)
	}

	mh, err := New(code, b[n:n+int(size)])
	if err != nil {
		return Multihash{}, 0, err
	}

	return mh, n + int(size), nil
}
