// Package safepath decides, without consulting the filesystem, whether a
// path join or parent operation can escape its base directory.
//
// SafeJoin(base, fragment) succeeds only if every prefix of fragment keeps
// the joined path inside base, judging purely by the fragment's components.
// It never resolves symlinks, checks existence, or canonicalizes, so it is
// usable for paths on filesystems that are not mounted yet, archive entries,
// and request paths.
//
// The strict operations additionally reject no-ops: SafeJoin fails when the
// join would produce base itself (for example a fragment of "."), and
// SafeParent fails when there is no real level to move up to. The Relaxed
// variants drop that distinctness requirement and accept the no-op.
//
// All operations come in two flavors: the package-level functions use Native
// (host platform) rules, and the Slash style handles forward-slash-only
// paths. Every operation is a pure function of its inputs and safe for
// concurrent use.
package safepath

import "errors"

// ErrUnsafe is returned when a join or parent operation could escape the
// base or, in strict mode, would produce a result identical to its input.
// Test for it with errors.Is.
var ErrUnsafe = errors.New("unsafe path operation")

// SafeJoin joins fragment onto base after checking that no prefix of
// fragment reaches outside base and that the join makes genuine progress.
func (s *Style) SafeJoin(base, fragment string) (string, error) {
	if err := s.CheckJoin(base, fragment, false); err != nil {
		return "", err
	}
	return s.Join(base, fragment), nil
}

// RelaxedSafeJoin is SafeJoin without the progress requirement: a fragment
// that nets zero depth, such as "." or "y/..", is accepted and yields base.
func (s *Style) RelaxedSafeJoin(base, fragment string) (string, error) {
	if err := s.CheckJoin(base, fragment, true); err != nil {
		return "", err
	}
	return s.Join(base, fragment), nil
}

// SafeParent returns base's parent after checking that the step stays within
// base's own subtree. ok is false when the parent does not exist, which a
// successful strict call never produces.
func (s *Style) SafeParent(base string) (parent string, ok bool, err error) {
	if err := s.CheckParent(base, false); err != nil {
		return "", false, err
	}
	parent, ok = s.Parent(base)
	return parent, ok, nil
}

// RelaxedSafeParent is SafeParent without the progress requirement. The
// relaxed parent of the root succeeds with ok set to false.
func (s *Style) RelaxedSafeParent(base string) (parent string, ok bool, err error) {
	if err := s.CheckParent(base, true); err != nil {
		return "", false, err
	}
	parent, ok = s.Parent(base)
	return parent, ok, nil
}

// SafeJoin joins fragment onto base using Native rules. See Style.SafeJoin.
func SafeJoin(base, fragment string) (string, error) {
	return Native.SafeJoin(base, fragment)
}

// RelaxedSafeJoin joins fragment onto base using Native rules, accepting
// no-op joins. See Style.RelaxedSafeJoin.
func RelaxedSafeJoin(base, fragment string) (string, error) {
	return Native.RelaxedSafeJoin(base, fragment)
}

// SafeParent returns base's parent using Native rules. See Style.SafeParent.
func SafeParent(base string) (string, bool, error) {
	return Native.SafeParent(base)
}

// RelaxedSafeParent returns base's parent using Native rules, accepting
// degenerate results. See Style.RelaxedSafeParent.
func RelaxedSafeParent(base string) (string, bool, error) {
	return Native.RelaxedSafeParent(base)
}
