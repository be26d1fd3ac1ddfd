package depsolve

// VersionSetID identifies a version set held by an Interner: a named
// constraint describing which versions of a package are acceptable.
//
// IDs are dense indexes into the interner that produced them. They compare,
// order and hash by index value only; that order has no relation to any
// version ordering and must never be used as one. An ID stays valid for as
// long as its interner is alive and unchanged.
type VersionSetID uint32

// VersionSetUnionID identifies an interned, non-empty, ordered group of
// version sets representing a logical OR. Members may constrain different
// packages, which is how "needs A>=1 or B>=2" alternatives are expressed.
type VersionSetUnionID uint32

// StringID identifies an interned string, such as a package name or the
// name of an optional feature.
type StringID uint32
