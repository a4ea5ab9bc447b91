package importer

import "fmt"

// EntityIndex resolves normalized free-text labels to entity identifiers.
// It is built once per import run from a snapshot of existing entities and
// is read-only afterwards.
type EntityIndex struct {
	kind string
	m    map[string]string
}

func NewEntityIndex(kind string) *EntityIndex {
	return &EntityIndex{kind: kind, m: make(map[string]string)}
}

// Add registers one alias for an entity. Empty labels are ignored and a
// colliding alias keeps its first id, so resolution stays deterministic.
func (ix *EntityIndex) Add(label, id string) {
	key := NormalizeLabel(label)
	if key == "" {
		return
	}
	if _, exists := ix.m[key]; !exists {
		ix.m[key] = id
	}
}

func (ix *EntityIndex) Resolve(label string) (string, bool) {
	id, ok := ix.m[NormalizeLabel(label)]
	return id, ok
}

func (ix *EntityIndex) Len() int { return len(ix.m) }

// ScopedEntityIndex resolves labels that only make sense under an already
// resolved parent, e.g. a sub-branch under a main customer account.
type ScopedEntityIndex struct {
	kind string
	m    map[scopedKey]string
}

type scopedKey struct {
	parentID string
	label    string
}

func NewScopedEntityIndex(kind string) *ScopedEntityIndex {
	return &ScopedEntityIndex{kind: kind, m: make(map[scopedKey]string)}
}

func (ix *ScopedEntityIndex) Add(parentID, label, id string) {
	key := scopedKey{parentID: parentID, label: NormalizeLabel(label)}
	if key.label == "" || parentID == "" {
		return
	}
	if _, exists := ix.m[key]; !exists {
		ix.m[key] = id
	}
}

func (ix *ScopedEntityIndex) Resolve(parentID, label string) (string, bool) {
	id, ok := ix.m[scopedKey{parentID: parentID, label: NormalizeLabel(label)}]
	return id, ok
}

// NotFoundError reports an unresolvable entity reference. The attempted
// label is echoed so the user can correct the source file.
type NotFoundError struct {
	Kind  string
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Label)
}

// ParentNotFoundError reports a scoped lookup whose parent label could not
// be resolved. Distinct from NotFoundError so callers can tell which side
// of the hierarchy failed.
type ParentNotFoundError struct {
	Kind  string
	Label string
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("parent %s not found: %s", e.Kind, e.Label)
}
