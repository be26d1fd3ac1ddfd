package depsolve

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Requirement is what a dependency edge demands: either a single version set
// that must be satisfied, or the union (logical OR) of an interned group of
// version sets, satisfied when any member is.
//
// The zero Requirement is Single over the zero VersionSetID. It exists so
// that structures embedding a Requirement have a well-defined default; it is
// a structural placeholder, never a meaningful requirement.
type Requirement struct {
	union bool
	id    uint32
}

// Single returns a Requirement on exactly one version set.
func Single(id VersionSetID) Requirement {
	return Requirement{id: uint32(id)}
}

// Union returns a Requirement satisfied by any member of the interned union.
// Unions are typically used for requirements that can be satisfied by
// version sets constraining different packages.
func Union(id VersionSetUnionID) Requirement {
	return Requirement{union: true, id: uint32(id)}
}

// IsUnion reports whether the requirement is a union.
func (r Requirement) IsUnion() bool {
	return r.union
}

// VersionSet returns the single version set, and false if the requirement is
// a union.
func (r Requirement) VersionSet() (VersionSetID, bool) {
	if r.union {
		return 0, false
	}
	return VersionSetID(r.id), true
}

// VersionSetUnion returns the union, and false if the requirement is a
// single version set.
func (r Requirement) VersionSetUnion() (VersionSetUnionID, bool) {
	if !r.union {
		return 0, false
	}
	return VersionSetUnionID(r.id), true
}

// VersionSets returns the version sets that satisfy the requirement: the
// single member, or the union's members in the interner's stored order. The
// sequence is lazy and may be ranged over any number of times; nothing is
// materialized up front.
func (r Requirement) VersionSets(in Interner) iter.Seq[VersionSetID] {
	if r.union {
		return in.VersionSetsInUnion(VersionSetUnionID(r.id))
	}
	return func(yield func(VersionSetID) bool) {
		yield(VersionSetID(r.id))
	}
}

type requirementJSON struct {
	Single *VersionSetID      `json:"single,omitempty"`
	Union  *VersionSetUnionID `json:"union,omitempty"`
}

// MarshalJSON encodes the requirement as {"single":n} or {"union":n}.
func (r Requirement) MarshalJSON() ([]byte, error) {
	if r.union {
		id := VersionSetUnionID(r.id)
		return json.Marshal(requirementJSON{Union: &id})
	}
	id := VersionSetID(r.id)
	return json.Marshal(requirementJSON{Single: &id})
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	var enc requirementJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("error decoding requirement: %w", err)
	}
	switch {
	case enc.Single != nil && enc.Union != nil:
		return fmt.Errorf("requirement carries both a single version set and a union")
	case enc.Union != nil:
		*r = Union(*enc.Union)
	case enc.Single != nil:
		*r = Single(*enc.Single)
	default:
		return fmt.Errorf("requirement carries neither a single version set nor a union")
	}
	return nil
}
