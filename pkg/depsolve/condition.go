package depsolve

import (
	"encoding/json"
	"fmt"
)

// ConditionKind discriminates the two alternatives of a Condition.
type ConditionKind uint8

const (
	// ConditionVersionSet gates a requirement on some selected candidate
	// satisfying a version set.
	ConditionVersionSet ConditionKind = iota
	// ConditionExtra gates a requirement on an optional feature being
	// enabled.
	ConditionExtra
)

// Condition is a single fact that gates activation of a requirement: either
// "this version set is satisfied" or "this extra is enabled".
//
// Conditions are immutable values, comparable with == and usable as map
// keys.
type Condition struct {
	kind ConditionKind
	id   uint32
}

// VersionSetCondition returns the Condition that holds when some selected
// candidate satisfies the version set.
func VersionSetCondition(id VersionSetID) Condition {
	return Condition{kind: ConditionVersionSet, id: uint32(id)}
}

// ExtraCondition returns the Condition that holds when the named extra is
// enabled.
func ExtraCondition(id StringID) Condition {
	return Condition{kind: ConditionExtra, id: uint32(id)}
}

// Kind returns the alternative this condition carries.
func (c Condition) Kind() ConditionKind {
	return c.kind
}

// VersionSet returns the condition's version set, and false if the condition
// is an extra condition.
func (c Condition) VersionSet() (VersionSetID, bool) {
	if c.kind != ConditionVersionSet {
		return 0, false
	}
	return VersionSetID(c.id), true
}

// Extra returns the condition's extra name, and false if the condition is a
// version-set condition.
func (c Condition) Extra() (StringID, bool) {
	if c.kind != ConditionExtra {
		return 0, false
	}
	return StringID(c.id), true
}

// MustVersionSet returns the condition's version set and panics if the
// condition is an extra condition. Callers are expected to have branched on
// Kind already; reaching the panic is a caller bug, not a recoverable error.
func (c Condition) MustVersionSet() VersionSetID {
	id, ok := c.VersionSet()
	if !ok {
		panic("depsolve: cannot convert an extra condition to a VersionSetID")
	}
	return id
}

// MustExtra returns the condition's extra name and panics if the condition
// is a version-set condition.
func (c Condition) MustExtra() StringID {
	id, ok := c.Extra()
	if !ok {
		panic("depsolve: cannot convert a version-set condition to a StringID")
	}
	return id
}

type conditionJSON struct {
	VersionSet *VersionSetID `json:"versionSet,omitempty"`
	Extra      *StringID     `json:"extra,omitempty"`
}

// MarshalJSON encodes the condition as {"versionSet":n} or {"extra":n}.
func (c Condition) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ConditionVersionSet:
		id := VersionSetID(c.id)
		return json.Marshal(conditionJSON{VersionSet: &id})
	case ConditionExtra:
		id := StringID(c.id)
		return json.Marshal(conditionJSON{Extra: &id})
	}
	return nil, fmt.Errorf("unknown condition kind %d", c.kind)
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var enc conditionJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("error decoding condition: %w", err)
	}
	switch {
	case enc.VersionSet != nil && enc.Extra != nil:
		return fmt.Errorf("condition carries both a version set and an extra")
	case enc.VersionSet != nil:
		*c = VersionSetCondition(*enc.VersionSet)
	case enc.Extra != nil:
		*c = ExtraCondition(*enc.Extra)
	default:
		return fmt.Errorf("condition carries neither a version set nor an extra")
	}
	return nil
}
