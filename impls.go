package dhash

type Bytes []byte

func (b Bytes) Xxh3(state *Hasher) {
	state.Write(b)
}

func (b Bytes) Xxh3Digest() uint64 {
	return HashBytes(b)
}

type String string

func (s String) Xxh3(state *Hasher) {
	Bytes(s).Xxh3(state)
}

func (s String) Xxh3Digest() uint64 {
	return Bytes(s).Xxh3Digest()
}

type U64 uint64

func (u U64) Xxh3(state *Hasher) {
	state.Write(le.AppendUint64(make([]byte, 0, 8), uint64(u)))
}

func (u U64) Xxh3Digest() uint64 {
	return HashBytes(le.AppendUint64(make([]byte, 0, 8), uint64(u)))
}

// HashOptimized writes the value's fixed-width layout in one shot, there
// is no faster representation of a u64 than its own 8 bytes.
func (u U64) HashOptimized(state *Hasher) {
	var buf [8]byte
	le.PutUint64(buf[:], uint64(u))
	state.Write(buf[:])
}
