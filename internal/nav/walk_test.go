package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Entries {
	return Entries{
		NewGroup("Start Here",
			NewItem("Getting Started", "/start"),
		),
		NewGroup("Map Mock",
			NewItem("Map Mock", "/mapmock"),
			NewGroup("Advanced",
				NewItem("EchoScript", "/mapmock/echoscript"),
			),
			NewItem("Examples", "/mapmock/examples"),
		),
		NewItem("EchoSend", "/echosend"),
	}
}

func TestWalk_VisitsInDisplayOrder(t *testing.T) {
	var labels []string
	var paths []string
	err := Walk(sampleTree(), func(loc Location, e Entry) error {
		labels = append(labels, LabelOf(e))
		paths = append(paths, loc.Path())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Start Here", "Getting Started",
		"Map Mock", "Map Mock", "Advanced", "EchoScript", "Examples",
		"EchoSend",
	}, labels)
	assert.Equal(t, "sidebar[1].items[1].items[0]", paths[5])
	assert.Equal(t, "sidebar[2]", paths[7])
}

func TestWalk_TrailAndDepth(t *testing.T) {
	var got Location
	_ = Walk(sampleTree(), func(loc Location, e Entry) error {
		if it, ok := e.(*Item); ok && it.Link == "/mapmock/echoscript" {
			got = loc
		}
		return nil
	})
	assert.Equal(t, []string{"Map Mock", "Advanced"}, got.Trail)
	assert.Equal(t, 2, got.Depth())
	assert.Equal(t, "Map Mock > Advanced", got.Breadcrumb())
}

func TestWalk_SkipGroup(t *testing.T) {
	var labels []string
	err := Walk(sampleTree(), func(_ Location, e Entry) error {
		labels = append(labels, LabelOf(e))
		if g, ok := e.(*Group); ok && g.Label == "Map Mock" {
			return SkipGroup
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Start Here", "Getting Started", "Map Mock", "EchoSend"}, labels)
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	err := Walk(sampleTree(), func(_ Location, _ Entry) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestItemsLinksAndCount(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, []string{"/start", "/mapmock", "/mapmock/echoscript", "/mapmock/examples", "/echosend"}, Links(tree))

	groups, items := Count(tree)
	assert.Equal(t, 3, groups)
	assert.Equal(t, 5, items)
}

func TestGroupPreservesInsertionOrder(t *testing.T) {
	g := NewGroup("Letters", NewItem("A", "/a"), NewItem("B", "/b"), NewItem("C", "/c"))
	assert.Equal(t, []string{"/a", "/b", "/c"}, Links(Entries{g}))
}

func TestDuplicateLinksArePermitted(t *testing.T) {
	tree := Entries{
		NewGroup("One", NewItem("Intro", "/intro")),
		NewGroup("Two", NewItem("Intro again", "/intro")),
	}
	assert.Equal(t, []string{"/intro", "/intro"}, Links(tree))
}

func TestClone_IsDeep(t *testing.T) {
	orig := Entries{
		NewGroup("G", NewItem("A", "/a")),
		NewAutogenerated("Reference", "reference"),
	}
	cp := Clone(orig)

	cp[0].(*Group).Items[0].(*Item).Link = "/changed"
	cp[0].(*Group).Label = "changed"
	cp[1].(*Group).Autogenerate.Directory = "changed"

	assert.Equal(t, "/a", orig[0].(*Group).Items[0].(*Item).Link)
	assert.Equal(t, "G", orig[0].(*Group).Label)
	assert.Equal(t, "reference", orig[1].(*Group).Autogenerate.Directory)
	assert.Nil(t, Clone(nil))
}
