package testutil

import "encoding/binary"

// FuzzDecoder interprets fuzz bytes as a deterministic stream of choices.
//
// IMPORTANT: The decoder must be deterministic *for a given input* so Go's fuzzer
// can minimize failing inputs.
type FuzzDecoder struct {
	rawBytes []byte
	cursor   int

	capacity int
}

// NewFuzzDecoder constructs a decoder for fuzz inputs against a Map of the
// given capacity.
func NewFuzzDecoder(fuzzBytes []byte, capacity int) *FuzzDecoder {
	return &FuzzDecoder{
		rawBytes: fuzzBytes,
		capacity: capacity,
	}
}

// HasMore reports whether more fuzz bytes remain.
func (decoder *FuzzDecoder) HasMore() bool {
	return decoder.cursor < len(decoder.rawBytes)
}

// NextByte returns the next byte in the stream (0 if exhausted).
func (decoder *FuzzDecoder) NextByte() byte {
	if decoder.cursor >= len(decoder.rawBytes) {
		return 0
	}

	value := decoder.rawBytes[decoder.cursor]
	decoder.cursor++

	return value
}

// NextUint64 reads the next uint64 value (little-endian, 8 bytes).
// If the stream ends, missing bytes are treated as 0.
func (decoder *FuzzDecoder) NextUint64() uint64 {
	var raw [8]byte
	for index := range raw {
		raw[index] = decoder.NextByte()
	}

	return binary.LittleEndian.Uint64(raw[:])
}

// NextIndex generates an index. Roughly one in sixteen indices is out of
// range (negative, exactly the capacity, or far past it).
func (decoder *FuzzDecoder) NextIndex() int {
	choice := decoder.NextByte()

	if choice%16 == 15 {
		switch decoder.NextByte() % 3 {
		case 0:
			return -1 - int(decoder.NextByte())
		case 1:
			return decoder.capacity
		default:
			return decoder.capacity + 1 + int(decoder.NextByte())
		}
	}

	if decoder.capacity == 0 {
		return 0
	}

	// Bias towards low indices so small capacities see overwrites and
	// removes of live keys.
	if choice%4 == 0 {
		return int(decoder.NextByte()) % min(decoder.capacity, 4)
	}

	return int(decoder.NextByte()) % decoder.capacity
}

// NextValue generates a value, usually small so Find and overwrite paths
// see repeated values.
func (decoder *FuzzDecoder) NextValue() int64 {
	if decoder.NextByte()%4 == 0 {
		return int64(decoder.NextUint64()) //nolint:gosec // wraparound is intended
	}

	return int64(decoder.NextByte() % 8)
}
