package safepath_test

import (
	"path/filepath"
	"testing"

	"github.com/codalotl/safepath"
	"github.com/codalotl/safepath/internal/vectors"
	"github.com/stretchr/testify/require"
)

func TestSafeJoin(t *testing.T) {
	got, err := safepath.SafeJoin("x", "y")
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("x/y"), got)

	_, err = safepath.SafeJoin("x", "..")
	require.ErrorIs(t, err, safepath.ErrUnsafe)
	require.Contains(t, err.Error(), "escapes base")

	_, err = safepath.SafeJoin("x", ".")
	require.ErrorIs(t, err, safepath.ErrUnsafe)

	got, err = safepath.RelaxedSafeJoin("x", ".")
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestSafeParent(t *testing.T) {
	parent, ok, err := safepath.SafeParent(filepath.FromSlash("x/y"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", parent)

	_, _, err = safepath.SafeParent("/")
	require.ErrorIs(t, err, safepath.ErrUnsafe)

	_, ok, err = safepath.RelaxedSafeParent("/")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVectors(t *testing.T) {
	f, err := vectors.Load(filepath.Join("testdata", "vectors.yml"))
	require.NoError(t, err)

	styles := []struct {
		name   string
		style  *safepath.Style
		expect func(string) string
	}{
		{"native", safepath.Native, filepath.FromSlash},
		{"slash", safepath.Slash, func(s string) string { return s }},
	}
	for _, st := range styles {
		st := st
		t.Run(st.name, func(t *testing.T) {
			for _, c := range f.Join {
				c := c
				t.Run("join/"+c.Name, func(t *testing.T) {
					got, err := st.style.SafeJoin(c.Base, c.Fragment)
					if c.Strict == vectors.OK {
						require.NoError(t, err)
						require.Equal(t, st.expect(c.Result), got)
					} else {
						require.ErrorIs(t, err, safepath.ErrUnsafe)
					}

					got, err = st.style.RelaxedSafeJoin(c.Base, c.Fragment)
					if c.Relaxed == vectors.OK {
						require.NoError(t, err)
						require.Equal(t, st.expect(c.Result), got)
					} else {
						require.ErrorIs(t, err, safepath.ErrUnsafe)
					}
				})
			}
			for _, c := range f.Parent {
				c := c
				t.Run("parent/"+c.Name, func(t *testing.T) {
					check := func(parent string, ok bool, err error, want vectors.Outcome) {
						if want != vectors.OK {
							require.ErrorIs(t, err, safepath.ErrUnsafe)
							return
						}
						require.NoError(t, err)
						if c.NoParent {
							require.False(t, ok)
							return
						}
						require.True(t, ok)
						require.Equal(t, st.expect(c.Result), parent)
					}

					parent, ok, err := st.style.SafeParent(c.Base)
					check(parent, ok, err, c.Strict)
					parent, ok, err = st.style.RelaxedSafeParent(c.Base)
					check(parent, ok, err, c.Relaxed)
				})
			}
			for _, c := range f.Root {
				c := c
				t.Run("root/"+c.Name, func(t *testing.T) {
					require.Equal(t, c.Root, st.style.IsRoot(c.Path))
				})
			}
		})
	}
}
