package multihash

import "github.com/rs/zerolog"

func (mh Multihash) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("code", mh.code).Int("size", mh.digest.Size()).Str("digest", mh.digest.String())
}
