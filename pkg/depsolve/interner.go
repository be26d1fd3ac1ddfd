package depsolve

import "iter"

// Interner is the lookup surface the requirement model depends on. An
// implementation stores version sets, unions and strings once and hands out
// the dense IDs used throughout this package.
//
// Implementations must keep every handed-out ID valid, and its looked-up
// value unchanged, for their whole lifetime, and must be safe for concurrent
// readers. This package performs no validation of ID provenance; looking up
// an ID produced by a different interner is the implementation's problem to
// reject or guarantee against.
type Interner interface {
	// VersionSetsInUnion returns the members of a union in their stored
	// order. The sequence is non-empty and stable for the life of the ID.
	VersionSetsInUnion(id VersionSetUnionID) iter.Seq[VersionSetID]

	// VersionSetName returns the name of the package the version set
	// constrains.
	VersionSetName(id VersionSetID) StringID

	// DisplayName returns the display form of an interned string.
	DisplayName(id StringID) string

	// DisplayVersionSet returns a human-readable rendering of the version
	// set's constraint, without the package name.
	DisplayVersionSet(id VersionSetID) string
}
