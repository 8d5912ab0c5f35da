// SPDX-License-Identifier: MPL-2.0

// Package discovery turns a solution manifest into the ordered record set the
// renderer consumes.
//
// This package intentionally combines two related concerns:
//   - Enumeration: parsing the solution and project manifests and walking each
//     project's directory tree with exclusion rules
//   - Registration: classifying every candidate path and deduplicating it into
//     an insertion-ordered record set
//
// These concerns are tightly coupled because registration order is defined by
// enumeration order. Splitting them would create unnecessary indirection
// without meaningful abstraction benefit.
//
// File organization:
//   - engine.go: Engine (Run orchestration and record registration)
//   - recordset.go: Record, RecordSet and the dedup identity rules
//   - walker.go: directory traversal with pruning and gitignore support
//   - diagnostic.go: structured non-fatal diagnostics returned to callers
package discovery
