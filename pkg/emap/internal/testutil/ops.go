package testutil

import "fmt"

// Operation is a single public-API call we apply to both the model and the
// real Map.
type Operation interface {
	Name() string
	String() string
}

// OpInsert represents an Insert(index, value) call.
type OpInsert struct {
	Index int
	Value int64
}

// Name returns the operation name.
func (OpInsert) Name() string { return "Insert" }
func (operation OpInsert) String() string {
	return fmt.Sprintf("Insert(%d, %d)", operation.Index, operation.Value)
}

// OpGet represents a Get(index) call.
type OpGet struct {
	Index int
}

// Name returns the operation name.
func (OpGet) Name() string { return "Get" }
func (operation OpGet) String() string {
	return fmt.Sprintf("Get(%d)", operation.Index)
}

// OpAddInPlace adds Delta to the value at Index through GetPtr.
// It is a no-op on a vacant index.
type OpAddInPlace struct {
	Index int
	Delta int64
}

// Name returns the operation name.
func (OpAddInPlace) Name() string { return "AddInPlace" }
func (operation OpAddInPlace) String() string {
	return fmt.Sprintf("AddInPlace(%d, %d)", operation.Index, operation.Delta)
}

// OpContains represents a Contains(index) call.
type OpContains struct {
	Index int
}

// Name returns the operation name.
func (OpContains) Name() string { return "Contains" }
func (operation OpContains) String() string {
	return fmt.Sprintf("Contains(%d)", operation.Index)
}

// OpRemove represents a Remove(index) call.
type OpRemove struct {
	Index int
}

// Name returns the operation name.
func (OpRemove) Name() string { return "Remove" }
func (operation OpRemove) String() string {
	return fmt.Sprintf("Remove(%d)", operation.Index)
}

// OpLen represents a Len() call.
type OpLen struct{}

// Name returns the operation name.
func (OpLen) Name() string   { return "Len" }
func (OpLen) String() string { return "Len()" }

// OpClear represents a Clear() call.
type OpClear struct{}

// Name returns the operation name.
func (OpClear) Name() string   { return "Clear" }
func (OpClear) String() string { return "Clear()" }

// OpScan collects All() into a slice.
type OpScan struct{}

// Name returns the operation name.
func (OpScan) Name() string   { return "Scan" }
func (OpScan) String() string { return "Scan()" }

// OpFind represents a Find call matching an exact value.
type OpFind struct {
	Value int64
}

// Name returns the operation name.
func (OpFind) Name() string { return "Find" }
func (operation OpFind) String() string {
	return fmt.Sprintf("Find(value=%d)", operation.Value)
}

// OpNextKey represents a NextKey() call.
type OpNextKey struct{}

// Name returns the operation name.
func (OpNextKey) Name() string   { return "NextKey" }
func (OpNextKey) String() string { return "NextKey()" }

// OpPush represents a Push(value) call.
type OpPush struct {
	Value int64
}

// Name returns the operation name.
func (OpPush) Name() string { return "Push" }
func (operation OpPush) String() string {
	return fmt.Sprintf("Push(%d)", operation.Value)
}

// OpClone replaces both sides with their clones.
//
// The originals are then cleared, so any storage the clone still shared with
// its source would show up as lost entries on the next comparison.
type OpClone struct{}

// Name returns the operation name.
func (OpClone) Name() string   { return "Clone" }
func (OpClone) String() string { return "Clone()" }
