package safepath

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Style holds the lexical rules of one path flavor. The checkers are written
// once against a Style; Native and Slash supply the rules for the two
// concrete representations.
type Style struct {
	name      string
	separator string
	isSep     func(byte) bool
	volume    func(string) string
	join      func(base, fragment string) string
}

// Native follows the host platform's rules: OS path separators and, on
// Windows, volume prefixes.
var Native = &Style{
	name:      "native",
	separator: string(filepath.Separator),
	isSep:     os.IsPathSeparator,
	volume:    filepath.VolumeName,
	join: func(base, fragment string) string {
		return filepath.Join(base, fragment)
	},
}

// Slash uses forward slashes only, regardless of platform. Use it for paths
// that never touch the local filesystem, such as archive entries or URLs.
var Slash = &Style{
	name:      "slash",
	separator: "/",
	isSep:     func(c byte) bool { return c == '/' },
	volume:    func(string) string { return "" },
	join: func(base, fragment string) string {
		return path.Join(base, fragment)
	},
}

func (s *Style) String() string { return s.name }

// Components decomposes p into its component sequence. Separator runs
// collapse, trailing separators are dropped, and a "." segment is kept only
// as the path's first component, so "x/." decomposes the same way "x" does.
func (s *Style) Components(p string) []Component {
	var cs []Component
	if vol := s.volume(p); vol != "" {
		cs = append(cs, Component{Kind: KindPrefix, Name: vol})
		p = p[len(vol):]
	}
	i := 0
	if i < len(p) && s.isSep(p[i]) {
		cs = append(cs, Component{Kind: KindRoot})
		for i < len(p) && s.isSep(p[i]) {
			i++
		}
	}
	for i < len(p) {
		j := i
		for j < len(p) && !s.isSep(p[j]) {
			j++
		}
		seg := p[i:j]
		for i = j; i < len(p) && s.isSep(p[i]); i++ {
		}
		switch seg {
		case ".":
			if len(cs) == 0 {
				cs = append(cs, Component{Kind: KindCurrent})
			}
		case "..":
			cs = append(cs, Component{Kind: KindParent})
		default:
			cs = append(cs, Component{Kind: KindNormal, Name: seg})
		}
	}
	return cs
}

// Join combines base and fragment with the flavor's native join. Both
// flavors clean the result, so Join("x", ".") is "x".
func (s *Style) Join(base, fragment string) string {
	return s.join(base, fragment)
}

// Parent returns p with its last component dropped. ok is false when there
// is nothing below the anchor to drop: the empty path, a bare root, or a
// bare volume prefix have no parent.
func (s *Style) Parent(p string) (string, bool) {
	cs := s.Components(p)
	if len(cs) == 0 {
		return "", false
	}
	switch cs[len(cs)-1].Kind {
	case KindPrefix, KindRoot:
		return "", false
	}
	return s.render(cs[:len(cs)-1]), true
}

// HasPrefix reports whether prefix's components are a leading run of p's
// components. It compares components, not bytes, so "xy" does not have the
// prefix "x".
func (s *Style) HasPrefix(p, prefix string) bool {
	pc := s.Components(p)
	qc := s.Components(prefix)
	if len(qc) > len(pc) {
		return false
	}
	for i, c := range qc {
		if pc[i] != c {
			return false
		}
	}
	return true
}

func (s *Style) render(cs []Component) string {
	var head string
	segs := make([]string, 0, len(cs))
	for _, c := range cs {
		switch c.Kind {
		case KindPrefix:
			head = c.Name
		case KindRoot:
			head += s.separator
		case KindCurrent:
			segs = append(segs, ".")
		case KindParent:
			segs = append(segs, "..")
		default:
			segs = append(segs, c.Name)
		}
	}
	return head + strings.Join(segs, s.separator)
}
