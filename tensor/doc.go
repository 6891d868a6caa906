// Package tensor provides shaped numeric arrays and the structured shape
// descriptors that describe a sampler's output before any data exists.
//
// 🚀 What is tensor?
//
//	The data model for structured numeric values: an output may be a single
//	array, or an arbitrarily nested collection of arrays of heterogeneous
//	shape and dtype. tensor describes such structures (Descriptor), holds
//	them (Value), and maps over their leaves while preserving structure.
//
// ✨ Key features:
//   - Dtype kinds with a floating/non-floating distinction
//   - Leaf — one (shape, dtype) pair; Float64 by default
//   - List / Record — ordered and keyed nesting, to any depth
//   - Walk / Build — deterministic leaf traversal and structure-preserving
//     construction (records always visit keys in sorted order)
//   - Validate — fail-fast construction checks with leaf-path messages
//
// Descriptors are purely structural values: fixed at construction, never
// mutated, carrying no data. Values mirror their descriptor exactly — same
// nesting, same per-leaf shape and dtype.
//
// ⚙️ Usage:
//
//	desc := tensor.Record{
//	  "a": tensor.NewLeaf(2),
//	  "b": tensor.NewLeaf(4).WithDtype(tensor.Float32),
//	}
//	if err := tensor.Validate(desc); err != nil { ... }
package tensor
