package safepath

// Kind identifies one of the variants a path component can take.
type Kind int

const (
	// KindPrefix is a platform volume anchor, such as a Windows drive
	// letter or UNC share. The checkers treat it exactly like KindRoot.
	KindPrefix Kind = iota
	// KindRoot is the filesystem root anchor.
	KindRoot
	// KindCurrent is the "." marker.
	KindCurrent
	// KindParent is the ".." marker.
	KindParent
	// KindNormal is an ordinary path segment.
	KindNormal
)

func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindRoot:
		return "root"
	case KindCurrent:
		return "current"
	case KindParent:
		return "parent"
	case KindNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Component is one segment of a decomposed path. Name is set only for
// KindPrefix and KindNormal components.
type Component struct {
	Kind Kind
	Name string
}
