package multihash

import "github.com/spikeekips/multihash/util"

var (
	EmptyError              = util.NewError("empty multihash")
	TruncatedError          = util.NewError("truncated multihash")
	DigestTooLargeError     = util.NewError("digest too large")
	InsufficientBufferError = util.NewError("insufficient buffer")
	InvalidMultihashError   = util.NewError("invalid multihash")
)
