package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/calvinalkan/emap/pkg/emap"
	"github.com/calvinalkan/emap/pkg/emap/model"
)

// DefaultMaxFuzzOperations is the default maximum number of operations
// to run in a single fuzz iteration or deterministic behavior test.
const DefaultMaxFuzzOperations = 300

// BehaviorRunConfig configures a model-vs-real behavior test run.
type BehaviorRunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareEveryN runs CompareState every N operations (0 to disable).
	// CompareState always runs once after the last operation.
	CompareEveryN int

	// CheckInvariants, if set, is called on the real Map after every
	// operation. Tests in package emap pass the internal invariant check.
	CheckInvariants func(*emap.Map[int64]) error
}

// OpSource produces operations for RunBehavior.
type OpSource interface {
	NextOp() Operation
}

// Harness holds the model and the real Map side by side.
//
// We always apply the same operation to both sides, then compare:
//  1. the direct operation result, and
//  2. the observable state (Len/Get/All).
//
// IMPORTANT: This harness compares PUBLIC API behavior only.
type Harness struct {
	Capacity int
	Model    *model.MapModel[int64]
	Real     *emap.Map[int64]
}

// OpResult is the observable outcome of one operation.
//
// Err holds the message of a returned (model) or recovered (real) error, so
// results compare with cmp without custom error comparers.
type OpResult struct {
	Value   int64
	OK      bool
	Index   int
	Len     int
	Entries []model.Entry[int64]
	Err     string
}

// NewHarness creates a model and a real Map of the given capacity.
func NewHarness(tb testing.TB, capacity int) *Harness {
	tb.Helper()

	modelMap, err := model.New[int64](capacity)
	if err != nil {
		tb.Fatalf("model.New(%d): %v", capacity, err)
	}

	return &Harness{
		Capacity: capacity,
		Model:    modelMap,
		Real:     emap.New[int64](capacity),
	}
}

// RunBehavior executes a deterministic stream of operations and compares
// the public API behavior between the model and the real Map.
func RunBehavior(tb testing.TB, capacity int, src OpSource, cfg BehaviorRunConfig) {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("RunBehavior requires MaxOps > 0")
	}

	harness := NewHarness(tb, capacity)

	history := make([]Operation, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps; opIndex++ {
		operation := src.NextOp()
		history = append(history, operation)

		modelResult := ApplyModel(harness, operation)
		realResult := ApplyReal(harness, operation)

		AssertOpMatch(tb, history, modelResult, realResult)

		if cfg.CheckInvariants != nil {
			err := cfg.CheckInvariants(harness.Real)
			if err != nil {
				tb.Fatalf("invariant violated after %s: %v\nhistory: %s", operation, err, formatHistory(history))
			}
		}

		if cfg.CompareEveryN > 0 && opIndex%cfg.CompareEveryN == 0 {
			CompareState(tb, harness)
		}
	}

	CompareState(tb, harness)
}

// ApplyModel applies operation to the model side.
func ApplyModel(harness *Harness, operation Operation) OpResult {
	m := harness.Model

	switch op := operation.(type) {
	case OpInsert:
		prev, replaced, err := m.Insert(op.Index, op.Value)
		if err != nil {
			return OpResult{Err: err.Error()}
		}

		return OpResult{Value: prev, OK: replaced, Len: m.Len()}
	case OpGet:
		value, ok, err := m.Get(op.Index)

		return OpResult{Value: value, OK: ok, Err: errString(err)}
	case OpAddInPlace:
		value, ok, err := m.Get(op.Index)
		if err != nil || !ok {
			return OpResult{Err: errString(err)}
		}

		_, _, _ = m.Insert(op.Index, value+op.Delta)

		return OpResult{Value: value + op.Delta, OK: true}
	case OpContains:
		ok, err := m.Contains(op.Index)

		return OpResult{OK: ok, Err: errString(err)}
	case OpRemove:
		value, ok, err := m.Remove(op.Index)
		if err != nil {
			return OpResult{Err: err.Error()}
		}

		return OpResult{Value: value, OK: ok, Len: m.Len()}
	case OpLen:
		return OpResult{Len: m.Len()}
	case OpClear:
		m.Clear()

		return OpResult{Len: m.Len()}
	case OpScan:
		return OpResult{Entries: m.Entries(), Len: m.Len()}
	case OpFind:
		for _, entry := range m.Entries() {
			if entry.Value == op.Value {
				return OpResult{Index: entry.Key, Value: entry.Value, OK: true}
			}
		}

		return OpResult{}
	case OpNextKey:
		index, ok := m.NextKey()

		return OpResult{Index: index, OK: ok}
	case OpPush:
		index, ok := m.Push(op.Value)

		return OpResult{Index: index, OK: ok, Len: m.Len()}
	case OpClone:
		clone := m.Clone()
		m.Clear()
		harness.Model = clone

		return OpResult{Len: clone.Len()}
	default:
		panic(fmt.Sprintf("unknown operation %T", operation))
	}
}

// ApplyReal applies operation to the real Map, turning panics into
// OpResult.Err.
func ApplyReal(harness *Harness, operation Operation) (result OpResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err, ok := recovered.(error)
			if !ok {
				panic(recovered)
			}

			result = OpResult{Err: err.Error()}
		}
	}()

	m := harness.Real

	switch op := operation.(type) {
	case OpInsert:
		prev, replaced := m.Insert(op.Index, op.Value)

		return OpResult{Value: prev, OK: replaced, Len: m.Len()}
	case OpGet:
		value, ok := m.Get(op.Index)

		return OpResult{Value: value, OK: ok}
	case OpAddInPlace:
		ptr := m.GetPtr(op.Index)
		if ptr == nil {
			return OpResult{}
		}

		*ptr += op.Delta

		return OpResult{Value: *ptr, OK: true}
	case OpContains:
		return OpResult{OK: m.Contains(op.Index)}
	case OpRemove:
		value, ok := m.Remove(op.Index)

		return OpResult{Value: value, OK: ok, Len: m.Len()}
	case OpLen:
		return OpResult{Len: m.Len()}
	case OpClear:
		m.Clear()

		return OpResult{Len: m.Len()}
	case OpScan:
		return OpResult{Entries: CollectEntries(m), Len: m.Len()}
	case OpFind:
		index, value, ok := m.Find(func(_ int, v int64) bool { return v == op.Value })

		return OpResult{Index: index, Value: value, OK: ok}
	case OpNextKey:
		index, ok := m.NextKey()

		return OpResult{Index: index, OK: ok}
	case OpPush:
		index, ok := m.Push(op.Value)

		return OpResult{Index: index, OK: ok, Len: m.Len()}
	case OpClone:
		clone := m.Clone()
		m.Clear()
		harness.Real = clone

		return OpResult{Len: clone.Len()}
	default:
		panic(fmt.Sprintf("unknown operation %T", operation))
	}
}

// AssertOpMatch fails the test if the two results differ.
func AssertOpMatch(tb testing.TB, history []Operation, modelResult, realResult OpResult) {
	tb.Helper()

	diff := cmp.Diff(modelResult, realResult, cmpopts.EquateEmpty())
	if diff != "" {
		tb.Fatalf("result mismatch for %s (-model +real):\n%s\nhistory: %s",
			history[len(history)-1], diff, formatHistory(history))
	}
}

// CompareState compares every observable of the two sides: Len, the full
// ascending entry list, and Get/Contains for each index.
func CompareState(tb testing.TB, harness *Harness) {
	tb.Helper()

	modelEntries := harness.Model.Entries()
	realEntries := CollectEntries(harness.Real)

	diff := cmp.Diff(modelEntries, realEntries, cmpopts.EquateEmpty())
	if diff != "" {
		tb.Fatalf("entries mismatch (-model +real):\n%s", diff)
	}

	if harness.Model.Len() != harness.Real.Len() {
		tb.Fatalf("Len mismatch: model=%d real=%d", harness.Model.Len(), harness.Real.Len())
	}

	if harness.Real.Len() != len(realEntries) {
		tb.Fatalf("Len()=%d but All yielded %d entries", harness.Real.Len(), len(realEntries))
	}

	if harness.Real.Cap() != harness.Capacity {
		tb.Fatalf("Cap()=%d, want %d", harness.Real.Cap(), harness.Capacity)
	}

	for index := range harness.Capacity {
		modelValue, modelOK, _ := harness.Model.Get(index)
		realValue, realOK := harness.Real.Get(index)

		if modelOK != realOK || modelValue != realValue {
			tb.Fatalf("Get(%d) mismatch: model=(%d,%v) real=(%d,%v)", index, modelValue, modelOK, realValue, realOK)
		}

		if harness.Real.Contains(index) != realOK {
			tb.Fatalf("Contains(%d)=%v disagrees with Get", index, !realOK)
		}
	}
}

// CollectEntries drains m.All into a slice.
func CollectEntries(m *emap.Map[int64]) []model.Entry[int64] {
	entries := make([]model.Entry[int64], 0, m.Len())
	for key, value := range m.All() {
		entries = append(entries, model.Entry[int64]{Key: key, Value: value})
	}

	return entries
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func formatHistory(history []Operation) string {
	const tail = 20

	start := max(0, len(history)-tail)

	out := fmt.Sprintf("(%d ops, last %d)", len(history), len(history)-start)
	for _, operation := range history[start:] {
		out += "\n  " + operation.String()
	}

	return out
}
