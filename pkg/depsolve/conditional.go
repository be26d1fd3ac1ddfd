package depsolve

import (
	"iter"
	"slices"
)

// ConditionalRequirement pairs a Requirement with the conditions under which
// it is part of the dependency graph. The conditions are a conjunction: all
// of them must hold for the requirement to be active. An empty condition
// slice means the requirement is unconditionally active, which is the common
// case.
//
// The condition slice is stored as given. Duplicate conditions are
// tolerated, and order affects only iteration and rendering, never
// satisfaction.
type ConditionalRequirement struct {
	Conditions  []Condition `json:"conditions,omitempty"`
	Requirement Requirement `json:"requirement"`
}

// NewConditionalRequirement returns a ConditionalRequirement holding both
// fields as given, without validation.
func NewConditionalRequirement(conditions []Condition, requirement Requirement) ConditionalRequirement {
	return ConditionalRequirement{
		Conditions:  conditions,
		Requirement: requirement,
	}
}

// Unconditional wraps a requirement with no conditions.
func Unconditional(requirement Requirement) ConditionalRequirement {
	return ConditionalRequirement{Requirement: requirement}
}

// UnconditionalVersionSet wraps a single version set with no conditions.
func UnconditionalVersionSet(id VersionSetID) ConditionalRequirement {
	return Unconditional(Single(id))
}

// UnconditionalUnion wraps a union with no conditions.
func UnconditionalUnion(id VersionSetUnionID) ConditionalRequirement {
	return Unconditional(Union(id))
}

// ConditionalVersionSet wraps a single version set gated by the given
// conditions.
func ConditionalVersionSet(id VersionSetID, conditions ...Condition) ConditionalRequirement {
	return ConditionalRequirement{
		Conditions:  conditions,
		Requirement: Single(id),
	}
}

// RequirementVersionSets returns the version sets that satisfy the inner
// requirement, ignoring conditions.
func (cr ConditionalRequirement) RequirementVersionSets(in Interner) iter.Seq[VersionSetID] {
	return cr.Requirement.VersionSets(in)
}

// VersionSetsWithCondition pairs every version set satisfying the inner
// requirement with an independent copy of the full condition slice. The
// conditions gate the whole ConditionalRequirement, so each union member is
// paired with the same conjunction. Callers that need the conditions only
// once should range over RequirementVersionSets and read Conditions
// directly, avoiding the per-item copy.
func (cr ConditionalRequirement) VersionSetsWithCondition(in Interner) iter.Seq2[VersionSetID, []Condition] {
	return func(yield func(VersionSetID, []Condition) bool) {
		for vs := range cr.Requirement.VersionSets(in) {
			if !yield(vs, slices.Clone(cr.Conditions)) {
				return
			}
		}
	}
}

// ConditionAndRequirement returns the two fields, for callers that take the
// composite apart to move conditions and requirement into different places.
func (cr ConditionalRequirement) ConditionAndRequirement() ([]Condition, Requirement) {
	return cr.Conditions, cr.Requirement
}

// Clone returns a copy whose condition slice is independent of the
// receiver's. The IDs inside remain cheap handle copies.
func (cr ConditionalRequirement) Clone() ConditionalRequirement {
	return ConditionalRequirement{
		Conditions:  slices.Clone(cr.Conditions),
		Requirement: cr.Requirement,
	}
}
