package multihash

import "github.com/spikeekips/multihash/util"

func (mh Multihash) MarshalJSON() ([]byte, error) {
	return util.JSONMarshal(mh.String())
}

func (mh *Multihash) UnmarshalJSON(b []byte) error {
	var s string
	if err := util.JSONUnmarshal(b, &s); err != nil {
		return err
	}

	m, err := NewFromString(s)
	if err != nil {
		return err
	}
	*mh = m

	return nil
}

func (mh Multihash) MarshalText() ([]byte, error) {
	return []byte(mh.String()), nil
}

func (mh *Multihash) UnmarshalText(b []byte) error {
	m, err := NewFromString(string(b))
	if err != nil {
		return err
	}
	*mh = m

	return nil
}
