package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

func TestParse(t *testing.T) {
	for _, name := range Names() {
		f, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(f))
	}

	_, err := Parse("docker")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "docker")
}

func TestParseSet(t *testing.T) {
	s, err := ParseSet([]string{"vscode-extensions", "git", "git"})
	require.NoError(t, err)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(Git))
	assert.True(t, s.Has(VscodeExtensions))
	assert.False(t, s.Has(ReloadableExtension))

	_, err = ParseSet([]string{"git", "nope"})
	assert.Error(t, err)
}

func TestSet_SortedFollowsEnumeration(t *testing.T) {
	s := NewSet(VscodeExtensions, ReloadableExtension, Git)
	assert.Equal(t, []Feature{Git, ReloadableExtension, VscodeExtensions}, s.Sorted())
	assert.Empty(t, NewSet().Sorted())
}

func TestOptions(t *testing.T) {
	opts := Options()
	require.Len(t, opts, len(All()))
	assert.Equal(t, "git", opts[0].Value)
	assert.Equal(t, "Git", opts[0].Label)
	assert.Equal(t, "Reloadable Extension", opts[1].Label)
	assert.NotEmpty(t, opts[3].Description)
}
