package codetable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testDefaultTable struct {
	suite.Suite
}

func (t *testDefaultTable) TestAllEntries() {
	tb := Default()

	for _, code := range tb.Codes() {
		e, found := tb.Entry(code)
		t.True(found)

		mh, err := e.Hash([]byte("showme"))
		t.NoError(err, "name=%q", e.Name)
		t.Equal(code, mh.Code())
		t.Equal(e.Size, mh.Size())

		// wire roundtrip through the table
		umh, n, err := tb.Parse(mh.Bytes())
		t.NoError(err)
		t.Equal(len(mh.Bytes()), n)
		t.True(mh.Equal(umh))
	}
}

func (t *testDefaultTable) TestSha2_256() {
	mh, err := Default().HashByName("sha2-256", []byte("my hash"))
	t.NoError(err)

	t.Equal(SHA2_256, mh.Code())
	t.Equal(32, mh.Size())

	b := mh.Bytes()
	t.Equal(byte(0x12), b[0])
	t.Equal(byte(0x20), b[1])
	t.Equal("QmQRwzjH1x4QT6Ucv1A9NkWnn6EV9FSTEs3fLB18Kiq7w8", mh.String())
}

func (t *testDefaultTable) TestKnownStrings() {
	input := []byte("showme")

	for name, expected := range map[string]string{
		"sha1":        "5drLKJtkRXH8kN88fWPn4cgRQiE4ou",
		"sha3-256":    "W1eZedm8yM6NxqQiUoxar5zfeoca7eQBRZn82ruR2dj9dy",
		"blake2b-256": "2DrjgbDdM9rgbsqVxvqsBAt9TkEE9sYQALFe7zyWfc8SSt9bSG",
		"blake2s-256": "2i3XjxE7F66F4eLBttU6pV9S16UkoPegUZWDdbu4MS9eVpRDS8",
	} {
		mh, err := Default().HashByName(name, input)
		t.NoError(err)
		t.Equal(expected, mh.String(), "name=%q", name)
	}
}

func (t *testDefaultTable) TestSha2_512() {
	mh, err := Default().HashByName("sha2-512", []byte("my hash"))
	t.NoError(err)

	t.Equal(SHA2_512, mh.Code())
	t.Equal(64, mh.Size())
	t.Equal("8VwMTGLygKk8o4PRtdwWb8JAJJkhXqLX66QV3XTAt46HhmwHV2w2MhCAcuGh73XtxitpdSFHKCbV7KoXL2dFyoTv2c", mh.String())
}

func (t *testDefaultTable) TestBlake2bCodeVarint() {
	mh, err := Default().Hash(BLAKE2B_256, []byte("showme"))
	t.NoError(err)

	// 0xb220 occupies 3 varint bytes
	b := mh.Bytes()
	t.Equal([]byte{0xa0, 0xe4, 0x02, 0x20}, b[:4])
	t.Equal(4+32, len(b))
}

func TestDefaultTable(t *testing.T) {
	suite.Run(t, new(testDefaultTable))
}
