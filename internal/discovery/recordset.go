// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
)

const (
	// KindContent marks a record carrying the full decoded text of a file.
	KindContent RecordKind = "content"
	// KindBinaryMetadata marks a record carrying a generated summary of a
	// binary file; the file's bytes are never loaded.
	KindBinaryMetadata RecordKind = "binary_metadata"
	// KindSectionMarker marks a synthetic record that opens a project section
	// in the output. Markers carry the reference label, never file content.
	KindSectionMarker RecordKind = "section_marker"
)

// markerKeyPrefix namespaces marker keys away from normalized absolute paths.
// Real keys are always absolute, so the two spaces can never collide.
const markerKeyPrefix = "section:"

// ErrInvalidRecordKind indicates a record kind outside the known set.
var ErrInvalidRecordKind = errors.New("invalid record kind")

type (
	// RecordKind describes what a record's payload holds.
	RecordKind string

	// Record is one unit of discovered output: a file's content, a binary
	// file's metadata summary, or a section marker.
	Record struct {
		// Key is the dedup identity: the normalized absolute path, or a
		// synthetic marker key for section markers.
		Key string
		// DisplayPath is the human-facing path (workspace-relative, forward
		// slashes) used for headings and anchors. For markers it holds the
		// reference label as written in the solution.
		DisplayPath string
		// Kind describes the payload.
		Kind RecordKind
		// Payload is the full decoded text (Content), the generated summary
		// (BinaryMetadata), or the reference label (SectionMarker).
		Payload string
	}

	// RecordSet holds discovery results in insertion order with first-write-
	// wins deduplication by key. Re-adding an existing key is a no-op; a
	// record is never overwritten.
	RecordSet struct {
		records []*Record
		byKey   map[string]*Record
	}
)

// String returns the record kind as a plain string.
func (k RecordKind) String() string {
	return string(k)
}

// IsValid checks whether the kind is one of the known record kinds.
func (k RecordKind) IsValid() (bool, []error) {
	switch k {
	case KindContent, KindBinaryMetadata, KindSectionMarker:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidRecordKind, string(k))}
	}
}

// MarkerKey derives the synthetic dedup key for a project reference label.
func MarkerKey(label string) string {
	return markerKeyPrefix + label
}

// NewRecordSet creates an empty RecordSet with initialized indexes.
func NewRecordSet() *RecordSet {
	return &RecordSet{
		records: make([]*Record, 0),
		byKey:   make(map[string]*Record),
	}
}

// Add inserts the record unless its key is already present. It reports
// whether the record was inserted.
func (s *RecordSet) Add(r *Record) bool {
	if _, exists := s.byKey[r.Key]; exists {
		return false
	}
	s.records = append(s.records, r)
	s.byKey[r.Key] = r
	return true
}

// Has reports whether a record with the given key exists.
func (s *RecordSet) Has(key string) bool {
	_, exists := s.byKey[key]
	return exists
}

// Get returns the record for key, or nil when absent.
func (s *RecordSet) Get(key string) *Record {
	return s.byKey[key]
}

// Len returns the total number of records, markers included.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Records returns all records in insertion order. The returned slice is the
// set's backing store; callers must not mutate it.
func (s *RecordSet) Records() []*Record {
	return s.records
}

// FileCount returns the number of content and binary records. Section
// markers are not files and are not counted.
func (s *RecordSet) FileCount() int {
	return s.count(KindContent) + s.count(KindBinaryMetadata)
}

// ContentCount returns the number of content records.
func (s *RecordSet) ContentCount() int {
	return s.count(KindContent)
}

// BinaryCount returns the number of binary metadata records.
func (s *RecordSet) BinaryCount() int {
	return s.count(KindBinaryMetadata)
}

func (s *RecordSet) count(kind RecordKind) int {
	n := 0
	for _, r := range s.records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
