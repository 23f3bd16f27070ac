package util

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testNError struct {
	suite.Suite
}

func (t *testNError) TestIs() {
	e := NewError("show me")

	t.True(xerrors.Is(e, e))
	t.True(xerrors.Is(e.Errorf("findme"), e))
	t.False(xerrors.Is(e, NewError("find me")))
}

func (t *testNError) TestWrap() {
	e := NewError("show me")
	in := NewError("find me")
	w := e.Wrap(in)

	t.True(xerrors.Is(w, e))
	t.True(xerrors.Is(w, in))
	t.Contains(w.Error(), "find me")
}

func (t *testNError) TestErrorf() {
	e := NewError("show me")
	w := e.Errorf("n=%d", 3)

	t.True(xerrors.Is(w, e))
	t.Contains(w.Error(), "n=3")
}

func TestNError(t *testing.T) {
	suite.Run(t, new(testNError))
}
