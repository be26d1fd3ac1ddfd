package depsolve

import (
	"fmt"
	"strings"
)

// Display renders the requirement for diagnostics, e.g. "numpy >=1.20" for a
// single version set or "numpy >=1.20 | numpy-lite >=1.0" for a union, in
// the union's stored member order. The interner is used only for the
// duration of the call. The text is for humans; it is not meant to be parsed
// back.
func (r Requirement) Display(in Interner) string {
	var sb strings.Builder
	first := true
	for vs := range r.VersionSets(in) {
		if !first {
			sb.WriteString(" | ")
		}
		first = false
		writeVersionSet(&sb, in, vs)
	}
	return sb.String()
}

// Display renders the condition for diagnostics: the version set as
// "<name> <constraint>", or the extra as "extra '<name>'".
func (c Condition) Display(in Interner) string {
	switch c.kind {
	case ConditionExtra:
		return fmt.Sprintf("extra '%s'", in.DisplayName(StringID(c.id)))
	default:
		var sb strings.Builder
		writeVersionSet(&sb, in, VersionSetID(c.id))
		return sb.String()
	}
}

func writeVersionSet(sb *strings.Builder, in Interner, vs VersionSetID) {
	sb.WriteString(in.DisplayName(in.VersionSetName(vs)))
	sb.WriteByte(' ')
	sb.WriteString(in.DisplayVersionSet(vs))
}
