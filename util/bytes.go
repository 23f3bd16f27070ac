package util

type Byter interface {
	Bytes() []byte
}

func ConcatBytesSlice(sl ...[]byte) []byte {
	var t int
	for _, s := range sl {
		t += len(s)
	}

	n := make([]byte, 0, t)
	for _, s := range sl {
		n = append(n, s...)
	}

	return n
}
