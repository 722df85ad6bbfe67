package testutil

// OpKind identifies an operation type for weighted selection.
type OpKind int

// Operation kinds understood by [OpGenerator].
const (
	KindInsert OpKind = iota
	KindGet
	KindAddInPlace
	KindContains
	KindRemove
	KindLen
	KindClear
	KindScan
	KindFind
	KindNextKey
	KindPush
	KindClone
)

// OpGenConfig controls the relative frequency of each operation kind.
//
// A weight of 0 disables the kind.
type OpGenConfig struct {
	Weights map[OpKind]int
}

// DefaultOpGenConfig favors mutations with a steady mix of reads, and keeps
// Clear and Clone rare so state has a chance to build up.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		Weights: map[OpKind]int{
			KindInsert:     30,
			KindGet:        15,
			KindAddInPlace: 6,
			KindContains:   8,
			KindRemove:     18,
			KindLen:        4,
			KindClear:      2,
			KindScan:       6,
			KindFind:       4,
			KindNextKey:    3,
			KindPush:       6,
			KindClone:      1,
		},
	}
}

// OpGenerator turns fuzz bytes into a stream of operations.
type OpGenerator struct {
	decoder *FuzzDecoder
	table   []OpKind
}

// NewOpGenerator builds a generator over fuzzBytes for a Map of the given
// capacity.
func NewOpGenerator(fuzzBytes []byte, capacity int, cfg *OpGenConfig) *OpGenerator {
	var table []OpKind

	// Iterate kinds in declaration order so the table is deterministic.
	for kind := KindInsert; kind <= KindClone; kind++ {
		for range cfg.Weights[kind] {
			table = append(table, kind)
		}
	}

	if len(table) == 0 {
		table = []OpKind{KindLen}
	}

	return &OpGenerator{
		decoder: NewFuzzDecoder(fuzzBytes, capacity),
		table:   table,
	}
}

// HasMore reports whether the underlying fuzz input still has bytes left.
func (generator *OpGenerator) HasMore() bool {
	return generator.decoder.HasMore()
}

// NextOp returns the next operation.
func (generator *OpGenerator) NextOp() Operation {
	decoder := generator.decoder
	kind := generator.table[int(decoder.NextByte())%len(generator.table)]

	switch kind {
	case KindInsert:
		return OpInsert{Index: decoder.NextIndex(), Value: decoder.NextValue()}
	case KindGet:
		return OpGet{Index: decoder.NextIndex()}
	case KindAddInPlace:
		return OpAddInPlace{Index: decoder.NextIndex(), Delta: decoder.NextValue()}
	case KindContains:
		return OpContains{Index: decoder.NextIndex()}
	case KindRemove:
		return OpRemove{Index: decoder.NextIndex()}
	case KindClear:
		return OpClear{}
	case KindScan:
		return OpScan{}
	case KindFind:
		return OpFind{Value: decoder.NextValue()}
	case KindNextKey:
		return OpNextKey{}
	case KindPush:
		return OpPush{Value: decoder.NextValue()}
	case KindClone:
		return OpClone{}
	default:
		return OpLen{}
	}
}
