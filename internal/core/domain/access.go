package domain

// Visible decides whether the holder of claims may read the artifact.
// Both gates must pass:
//
//   - HR gate: an HR-only artifact is never visible to a non-HR identity,
//     regardless of clearance level.
//   - Level gate: the claim's level must meet the artifact's access level
//     (equal is sufficient).
//
// The gates are conjunctive, so evaluation order does not change the
// outcome; the HR gate runs first only to short-circuit. Role is
// intentionally not consulted.
func Visible(a *Artifact, c Claims) bool {
	if a.IsHROnly && !c.IsHR {
		return false
	}
	if c.Level < a.AccessLevel {
		return false
	}
	return true
}
