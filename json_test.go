package multihash

import (
	"crypto/sha256"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testMultihashJSON struct {
	suite.Suite
}

func (t *testMultihashJSON) TestMarshal() {
	d := sha256.Sum256([]byte("killme"))
	mh, err := New(0x12, d[:])
	t.NoError(err)

	b, err := json.Marshal(mh)
	t.NoError(err)

	var s string
	t.NoError(json.Unmarshal(b, &s))
	t.Equal(mh.String(), s)

	var umh Multihash
	t.NoError(json.Unmarshal(b, &umh))
	t.True(mh.Equal(umh))
}

func (t *testMultihashJSON) TestUnmarshalInvalid() {
	var umh Multihash
	t.Error(json.Unmarshal([]byte(`"not a multihash"`), &umh))
	t.Error(json.Unmarshal([]byte(`{}`), &umh))
}

func (t *testMultihashJSON) TestText() {
	d := sha256.Sum256([]byte("killme"))
	mh, err := New(0x12, d[:])
	t.NoError(err)

	b, err := mh.MarshalText()
	t.NoError(err)

	var umh Multihash
	t.NoError(umh.UnmarshalText(b))
	t.True(mh.Equal(umh))
}

func TestMultihashJSON(t *testing.T) {
	suite.Run(t, new(testMultihashJSON))
}
