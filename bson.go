package multihash

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

func (mh Multihash) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, mh.String()), nil
}

func (mh *Multihash) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	s, ok := (bson.RawValue{Type: t, Value: b}).StringValueOK()
	if !ok {
		return InvalidMultihashError.Errorf("invalid encoded input for Multihash")
	}

	m, err := NewFromString(s)
	if err != nil {
		return err
	}
	*mh = m

	return nil
}
