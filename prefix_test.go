package safepath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dosStyle mimics Windows lexical rules so volume-prefix handling is
// exercised regardless of the platform the tests run on.
var dosStyle = &Style{
	name:      "dos",
	separator: `\`,
	isSep:     func(c byte) bool { return c == '\\' || c == '/' },
	volume: func(p string) string {
		if len(p) >= 2 && p[1] == ':' {
			return p[:2]
		}
		return ""
	},
}

func TestPrefixComponents(t *testing.T) {
	require.Equal(t, []Component{
		{Kind: KindPrefix, Name: "C:"},
		{Kind: KindRoot},
		{Kind: KindNormal, Name: "x"},
	}, dosStyle.Components(`C:\x`))

	require.Equal(t, []Component{{Kind: KindPrefix, Name: "C:"}}, dosStyle.Components("C:"))
}

func TestPrefixActsAsRootAnchor(t *testing.T) {
	require.True(t, dosStyle.IsRoot(`C:\`))
	require.True(t, dosStyle.IsRoot("C:"))
	require.True(t, dosStyle.IsRoot(`C:\x\..`))
	require.False(t, dosStyle.IsRoot(`C:\x`))

	// Ascending from a drive root stays at the drive root.
	require.NoError(t, dosStyle.CheckJoin(`C:\`, "..", false))

	// An absolute fragment is rejected unless the base is the drive root.
	require.ErrorIs(t, dosStyle.CheckJoin(`C:\x`, `C:\y`, true), ErrUnsafe)
	require.NoError(t, dosStyle.CheckJoin(`C:\`, `C:\y`, false))
}

func TestPrefixParent(t *testing.T) {
	parent, ok := dosStyle.Parent(`C:\x`)
	require.True(t, ok)
	require.Equal(t, `C:\`, parent)

	_, ok = dosStyle.Parent(`C:\`)
	require.False(t, ok)
	_, ok = dosStyle.Parent("C:")
	require.False(t, ok)

	// A trailing ".." is bounded when one level up is the drive root.
	require.NoError(t, dosStyle.CheckParent(`C:\..`, true))
	require.ErrorIs(t, dosStyle.CheckParent(`C:\..`, false), ErrUnsafe)
	require.ErrorIs(t, dosStyle.CheckParent(`C:\x\..`, true), ErrUnsafe)
}
