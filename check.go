package safepath

import "fmt"

// IsRoot reports whether p is logically the filesystem root: anchored at a
// root or volume prefix, with every later component cancelling out to net
// depth zero. A relative path is never root, no matter how it normalizes.
func (s *Style) IsRoot(p string) bool {
	depth := -1 // no anchor seen yet
	for _, c := range s.Components(p) {
		switch c.Kind {
		case KindPrefix, KindRoot:
			depth = 0
		case KindCurrent:
		case KindParent:
			if depth > 0 {
				depth--
			}
		case KindNormal:
			if depth >= 0 {
				depth++
			}
		}
	}
	return depth == 0
}

// CheckJoin reports whether joining fragment onto base stays within base.
// Only the fragment's components are walked; base matters solely through
// IsRoot. The walk tracks how many normal segments deep it is, failing the
// moment the fragment reaches above its starting point. In strict mode a
// fragment that nets zero depth is also rejected, since the join would
// produce base itself. A ".." tolerated at the floor of a root base counts
// as progress: root has no parent to escape to.
func (s *Style) CheckJoin(base, fragment string, relaxed bool) error {
	baseIsRoot := s.IsRoot(base)
	depth := 0
	atRootFloor := false
	for _, c := range s.Components(fragment) {
		switch c.Kind {
		case KindPrefix, KindRoot:
			// An absolute fragment discards base entirely, which is
			// contained only when base is itself the root.
			if !baseIsRoot {
				return fmt.Errorf("join %q onto %q: fragment is absolute: %w", fragment, base, ErrUnsafe)
			}
			depth = 0
			atRootFloor = false
		case KindCurrent:
		case KindParent:
			if depth > 0 {
				depth--
				break
			}
			if !baseIsRoot {
				return fmt.Errorf("join %q onto %q: fragment escapes base: %w", fragment, base, ErrUnsafe)
			}
			atRootFloor = true
		case KindNormal:
			depth++
		}
	}
	if depth > 0 || atRootFloor || relaxed {
		return nil
	}
	return fmt.Errorf("join %q onto %q: result is base itself: %w", fragment, base, ErrUnsafe)
}

// CheckParent reports whether taking base's parent stays within base's own
// subtree. Only the last component matters: dropping a trailing normal
// segment is always safe, while every other shape yields a degenerate or
// outward result and needs relaxed mode. A trailing ".." passes relaxed mode
// only when the level above base is already the root, which bounds the
// ascent.
func (s *Style) CheckParent(base string, relaxed bool) error {
	cs := s.Components(base)
	if len(cs) == 0 {
		if relaxed {
			return nil
		}
		return fmt.Errorf("parent of %q: path has no components: %w", base, ErrUnsafe)
	}
	switch cs[len(cs)-1].Kind {
	case KindNormal:
		return nil
	case KindParent:
		if relaxed {
			if up, ok := s.Parent(base); ok && s.IsRoot(up) {
				return nil
			}
		}
		return fmt.Errorf("parent of %q: unbounded ascent: %w", base, ErrUnsafe)
	default:
		if relaxed {
			return nil
		}
		return fmt.Errorf("parent of %q: result is degenerate: %w", base, ErrUnsafe)
	}
}
