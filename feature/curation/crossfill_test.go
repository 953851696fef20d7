package curation

import (
	"context"
	"testing"

	"icon-curator/core/filesystem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCrossFill_ThreeStyles(t *testing.T) {
	fsys := filesystem.NewMemory()
	for path, content := range map[string]string{
		"/out/filled/add.svg":   "filled add",
		"/out/light/home.svg":   "light home",
		"/out/regular/home.svg": "regular home",
		"/out/regular/add.svg":  "regular add",
		"/out/regular/beta.svg": "regular beta",
	} {
		require.NoError(t, fsys.WriteFile(path, []byte(content)))
	}

	result, err := CrossFill(context.Background(), fsys, "/out", []string{"filled", "light", "regular"}, ReconcileFill, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Executed)

	tree := readTree(t, fsys, "/out")
	assert.Len(t, tree, 9)
	// Donor is the first style, in order, holding the file.
	assert.Equal(t, "filled add", tree["light/add.svg"])
	assert.Equal(t, "light home", tree["filled/home.svg"])
	assert.Equal(t, "regular beta", tree["filled/beta.svg"])
	assert.Equal(t, "regular beta", tree["light/beta.svg"])

	for _, e := range result.Entries {
		assert.NotEmpty(t, e.FilledFrom)
	}
}

func TestCrossFill_MissingStyleDirectory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/out/regular/add.svg", []byte("a")))

	_, err := CrossFill(context.Background(), fsys, "/out", []string{"filled", "regular"}, ReconcileFill, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestMaterialize_UnknownKey(t *testing.T) {
	fsys := filesystem.NewMemory()
	curated := CuratedSet{Keys: []IconKey{{Icon: "ghost", Style: "regular", Size: 24}}}

	_, err := Materialize(context.Background(), fsys, AssetIndex{}, curated, CopyOptions{
		OutputRoot: "/out",
		Styles:     []string{"regular"},
	}, zap.NewNop())
	assert.ErrorContains(t, err, "not in the index")
}
