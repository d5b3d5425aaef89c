// Package normalize provides two independently implemented lexical path
// normalizers for forward-slash paths. They serve as reference oracles for
// the checker tests: the decision logic in the root package never calls
// them, and the two must agree with each other on every input.
package normalize

import (
	gopath "path"
	"strings"
)

// Clean collapses "." segments, resolvable ".." segments, and separator runs
// using the standard library's lexical cleaner.
func Clean(p string) string {
	return gopath.Clean(p)
}

// Resolve normalizes p by folding its segments over an explicit stack: "."
// drops, ".." pops a normal segment when one is available, and an unmatched
// ".." either sticks (relative path) or vanishes (rooted path, where ".."
// of the root is the root). Written without gopath so it can cross-check
// Clean.
func Resolve(p string) string {
	rooted := strings.HasPrefix(p, "/")
	var stack []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else if !rooted {
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, seg)
		}
	}
	out := strings.Join(stack, "/")
	if rooted {
		return "/" + out
	}
	if out == "" {
		return "."
	}
	return out
}
