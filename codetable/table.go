package codetable

import (
	"io"
	"sort"

	"github.com/spikeekips/multihash"
	"github.com/spikeekips/multihash/util"
)

var (
	UnknownCodeError    = util.NewError("unknown multihash code")
	SizeMismatchError   = util.NewError("multihash size mismatch")
	DuplicatedCodeError = util.NewError("code already registered")
	DuplicatedNameError = util.NewError("name already registered")
	InvalidEntryError   = util.NewError("invalid table entry")
)

// Hasher computes a fixed-size digest from arbitrary input; it is supplied by
// the consumer, the table only dispatches to it.
type Hasher func([]byte) []byte

type Entry struct {
	Name   string
	Code   uint64
	Size   int
	Hasher Hasher
}

// Hash computes the digest of input and pairs it with the entry's code. The
// hasher must honor the declared size.
func (e Entry) Hash(input []byte) (multihash.Multihash, error) {
	d := e.Hasher(input)
	if len(d) != e.Size {
		return multihash.Multihash{}, SizeMismatchError.Errorf(
			"hasher %q returns %d bytes, %d declared", e.Name, len(d), e.Size)
	}

	return multihash.New(e.Code, d)
}

// Table is a closed mapping from codes to hasher capabilities. It is fixed
// at construction; codes outside it always fail with UnknownCodeError.
type Table struct {
	entries map[uint64]Entry
	names   map[string]uint64
}

func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: map[uint64]Entry{},
		names:   map[string]uint64{},
	}

	for _, e := range entries {
		if err := t.add(e); err != nil {
			return nil, InvalidEntryError.Wrap(err)
		}
	}

	return t, nil
}

func MustNewTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Table) add(e Entry) error {
	switch {
	case len(e.Name) < 1:
		return InvalidEntryError.Errorf("empty name")
	case e.Hasher == nil:
		return InvalidEntryError.Errorf("nil hasher")
	case e.Size < 0 || e.Size > multihash.MaxSize:
		return InvalidEntryError.Errorf("size=%d out of range", e.Size)
	}

	if _, found := t.entries[e.Code]; found {
		return DuplicatedCodeError.Errorf("code=0x%x", e.Code)
	}
	if _, found := t.names[e.Name]; found {
		return DuplicatedNameError.Errorf("name=%q", e.Name)
	}

	if n := len(e.Hasher(nil)); n != e.Size {
		return InvalidEntryError.Errorf("hasher %q returns %d bytes, %d declared", e.Name, n, e.Size)
	}

	t.entries[e.Code] = e
	t.names[e.Name] = e.Code

	return nil
}

func (t *Table) Entry(code uint64) (Entry, bool) {
	e, found := t.entries[code]

	return e, found
}

func (t *Table) EntryByName(name string) (Entry, bool) {
	code, found := t.names[name]
	if !found {
		return Entry{}, false
	}

	return t.entries[code], true
}

func (t *Table) Hash(code uint64, input []byte) (multihash.Multihash, error) {
	e, found := t.entries[code]
	if !found {
		return multihash.Multihash{}, UnknownCodeError.Errorf("code=0x%x", code)
	}

	return e.Hash(input)
}

func (t *Table) HashByName(name string, input []byte) (multihash.Multihash, error) {
	e, found := t.EntryByName(name)
	if !found {
		return multihash.Multihash{}, UnknownCodeError.Errorf("name=%q", name)
	}

	return e.Hash(input)
}

func (t *Table) Codes() []uint64 {
	codes := make([]uint64, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}

func (t *Table) Names() []string {
	names := make([]string, 0, len(t.names))
	for name := range t.names {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Read decodes one multihash from r and checks it against the table: the
// code must be known and the digest length must equal the entry's size.
func (t *Table) Read(r io.Reader) (multihash.Multihash, error) {
	mh, err := multihash.Read(r)
	if err != nil {
		return multihash.Multihash{}, err
	}

	if err := t.check(mh); err != nil {
		return multihash.Multihash{}, err
	}

	return mh, nil
}

// Parse is Read over the head of b, returning the bytes consumed.
func (t *Table) Parse(b []byte) (multihash.Multihash, int, error) {
	mh, n, err := multihash.Parse(b)
	if err != nil {
		return multihash.Multihash{}, 0, err
	}

	if err := t.check(mh); err != nil {
		return multihash.Multihash{}, 0, err
	}

	return mh, n, nil
}

func (t *Table) check(mh multihash.Multihash) error {
	e, found := t.entries[mh.Code()]
	if !found {
		return UnknownCodeError.Errorf("code=0x%x", mh.Code())
	}

	if mh.Size() != e.Size {
		return SizeMismatchError.Errorf("code=0x%x declared=%d expected=%d", mh.Code(), mh.Size(), e.Size)
	}

	return nil
}
