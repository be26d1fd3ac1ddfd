package interner

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/depsolve/depsolve/pkg/depsolve"
)

var _ depsolve.Interner = &MemoryInterner{}

// MemoryInterner is an in-memory implementation of depsolve.Interner backed
// by semver constraints. It deduplicates interned values, so interning the
// same value twice returns the same ID, and IDs it hands out stay valid and
// stable for its whole lifetime.
//
// Interning and lookup may be called concurrently from multiple goroutines.
type MemoryInterner struct {
	mu sync.RWMutex

	strings   []string
	stringIDs map[string]depsolve.StringID

	versionSets   []versionSet
	versionSetIDs map[versionSetKey]depsolve.VersionSetID

	unions   [][]depsolve.VersionSetID
	unionIDs map[string]depsolve.VersionSetUnionID
}

type versionSet struct {
	name       depsolve.StringID
	constraint *semver.Constraints
}

type versionSetKey struct {
	name       depsolve.StringID
	constraint string
}

func NewMemoryInterner() *MemoryInterner {
	return &MemoryInterner{
		stringIDs:     map[string]depsolve.StringID{},
		versionSetIDs: map[versionSetKey]depsolve.VersionSetID{},
		unionIDs:      map[string]depsolve.VersionSetUnionID{},
	}
}

// InternString returns the ID of s, interning it on first sight.
func (i *MemoryInterner) InternString(s string) depsolve.StringID {
	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.stringIDs[s]; ok {
		return id
	}
	id := depsolve.StringID(len(i.strings))
	i.strings = append(i.strings, s)
	i.stringIDs[s] = id
	return id
}

// InternVersionSet returns the ID of the version set constraining the named
// package, interning it on first sight. Version sets deduplicate on package
// name and constraint text.
func (i *MemoryInterner) InternVersionSet(name depsolve.StringID, constraint *semver.Constraints) depsolve.VersionSetID {
	i.mu.Lock()
	defer i.mu.Unlock()
	key := versionSetKey{name: name, constraint: constraint.String()}
	if id, ok := i.versionSetIDs[key]; ok {
		return id
	}
	id := depsolve.VersionSetID(len(i.versionSets))
	i.versionSets = append(i.versionSets, versionSet{name: name, constraint: constraint})
	i.versionSetIDs[key] = id
	return id
}

// InternVersionSetUnion returns the ID of the union over the given members
// in the given order, interning it on first sight. Taking the first member
// separately keeps empty unions unrepresentable.
func (i *MemoryInterner) InternVersionSetUnion(first depsolve.VersionSetID, rest ...depsolve.VersionSetID) depsolve.VersionSetUnionID {
	members := append([]depsolve.VersionSetID{first}, rest...)
	i.mu.Lock()
	defer i.mu.Unlock()
	key := unionKey(members)
	if id, ok := i.unionIDs[key]; ok {
		return id
	}
	id := depsolve.VersionSetUnionID(len(i.unions))
	i.unions = append(i.unions, members)
	i.unionIDs[key] = id
	return id
}

// VersionSetsInUnion returns the members of the union in interned order.
func (i *MemoryInterner) VersionSetsInUnion(id depsolve.VersionSetUnionID) iter.Seq[depsolve.VersionSetID] {
	return func(yield func(depsolve.VersionSetID) bool) {
		// member slices are never mutated once interned
		i.mu.RLock()
		members := i.unions[id]
		i.mu.RUnlock()
		for _, m := range members {
			if !yield(m) {
				return
			}
		}
	}
}

// VersionSetName returns the name of the package the version set constrains.
func (i *MemoryInterner) VersionSetName(id depsolve.VersionSetID) depsolve.StringID {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.versionSets[id].name
}

// DisplayName returns the interned string.
func (i *MemoryInterner) DisplayName(id depsolve.StringID) string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.strings[id]
}

// DisplayVersionSet returns the constraint text of the version set.
func (i *MemoryInterner) DisplayVersionSet(id depsolve.VersionSetID) string {
	return i.VersionSetConstraint(id).String()
}

// VersionSetConstraint returns the constraint backing the version set.
func (i *MemoryInterner) VersionSetConstraint(id depsolve.VersionSetID) *semver.Constraints {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.versionSets[id].constraint
}

// Check reports whether the version satisfies the version set's constraint.
func (i *MemoryInterner) Check(id depsolve.VersionSetID, version *semver.Version) bool {
	return i.VersionSetConstraint(id).Check(version)
}

func unionKey(members []depsolve.VersionSetID) string {
	var sb strings.Builder
	for n, m := range members {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", m)
	}
	return sb.String()
}
