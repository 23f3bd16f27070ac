package codetable

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// codes from the multiformats multicodec table
const (
	SHA1        uint64 = 0x11
	SHA2_256    uint64 = 0x12
	SHA2_512    uint64 = 0x13
	SHA3_512    uint64 = 0x14
	SHA3_384    uint64 = 0x15
	SHA3_256    uint64 = 0x16
	SHA3_224    uint64 = 0x17
	KECCAK_256  uint64 = 0x1b
	KECCAK_512  uint64 = 0x1d
	BLAKE3      uint64 = 0x1e
	BLAKE2B_256 uint64 = 0xb220
	BLAKE2B_512 uint64 = 0xb240
	BLAKE2S_256 uint64 = 0xb260
)

var defaultTable = MustNewTable(
	Entry{Name: "sha1", Code: SHA1, Size: sha1.Size, Hasher: sum1},
	Entry{Name: "sha2-256", Code: SHA2_256, Size: sha256.Size, Hasher: sum256},
	Entry{Name: "sha2-512", Code: SHA2_512, Size: sha512.Size, Hasher: sum512},
	Entry{Name: "sha3-224", Code: SHA3_224, Size: 28, Hasher: sum3224},
	Entry{Name: "sha3-256", Code: SHA3_256, Size: 32, Hasher: sum3256},
	Entry{Name: "sha3-384", Code: SHA3_384, Size: 48, Hasher: sum3384},
	Entry{Name: "sha3-512", Code: SHA3_512, Size: 64, Hasher: sum3512},
	Entry{Name: "keccak-256", Code: KECCAK_256, Size: 32, Hasher: sumKeccak256},
	Entry{Name: "keccak-512", Code: KECCAK_512, Size: 64, Hasher: sumKeccak512},
	Entry{Name: "blake2b-256", Code: BLAKE2B_256, Size: blake2b.Size256, Hasher: sumBlake2b256},
	Entry{Name: "blake2b-512", Code: BLAKE2B_512, Size: blake2b.Size, Hasher: sumBlake2b512},
	Entry{Name: "blake2s-256", Code: BLAKE2S_256, Size: blake2s.Size, Hasher: sumBlake2s256},
	Entry{Name: "blake3", Code: BLAKE3, Size: 32, Hasher: sumBlake3},
)

// Default returns the table of the common multiformats hash functions.
func Default() *Table {
	return defaultTable
}

func sum1(b []byte) []byte {
	d := sha1.Sum(b)
	return d[:]
}

func sum256(b []byte) []byte {
	d := sha256.Sum256(b)
	return d[:]
}

func sum512(b []byte) []byte {
	d := sha512.Sum512(b)
	return d[:]
}

func sum3224(b []byte) []byte {
	d := sha3.Sum224(b)
	return d[:]
}

func sum3256(b []byte) []byte {
	d := sha3.Sum256(b)
	return d[:]
}

func sum3384(b []byte) []byte {
	d := sha3.Sum384(b)
	return d[:]
}

func sum3512(b []byte) []byte {
	d := sha3.Sum512(b)
	return d[:]
}

func sumKeccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(b)
	return h.Sum(nil)
}

func sumKeccak512(b []byte) []byte {
	h := sha3.NewLegacyKeccak512()
	_, _ = h.Write(b)
	return h.Sum(nil)
}

func sumBlake2b256(b []byte) []byte {
	d := blake2b.Sum256(b)
	return d[:]
}

func sumBlake2b512(b []byte) []byte {
	d := blake2b.Sum512(b)
	return d[:]
}

func sumBlake2s256(b []byte) []byte {
	d := blake2s.Sum256(b)
	return d[:]
}

func sumBlake3(b []byte) []byte {
	d := blake3.Sum256(b)
	return d[:]
}
