package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/nav"
	helpers "github.com/echolabx/docsite/internal/testutil/testutils"
)

const siteV1 = `title: Docs
sidebar:
  - label: Start Here
    items:
      - label: Getting Started
        link: /getting-started
      - label: Installation
        link: /installation
`

const siteV2 = `title: Docs
sidebar:
  - label: Start Here
    items:
      - label: Quick Start
        link: /getting-started
      - label: Installation
        link: /installation
  - label: Reference
    items:
      - label: CLI
        link: /reference/cli
`

const siteV3 = `title: Docs
sidebar:
  - label: Start Here
    items:
      - label: Quick Start
        link: /getting-started
  - label: Reference
    items:
      - label: Installation
        link: /installation
`

func TestVersions_NewestFirst(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "")
	r.Commit("Add site", map[string]string{"docs/site.yaml": siteV1})
	r.Commit("Unrelated change", map[string]string{"README.md": "# readme"})
	r.Commit("Add reference\n\nLonger body.", map[string]string{"docs/site.yaml": siteV2})
	r.Commit("Move installation", map[string]string{"docs/site.yaml": siteV3})

	versions, err := Versions(r.Dir, "docs/site.yaml")
	require.NoError(t, err)
	require.Len(t, versions, 3)

	assert.Equal(t, "Move installation", versions[0].Subject)
	assert.Equal(t, "Add reference", versions[1].Subject)
	assert.Equal(t, "Add site", versions[2].Subject)
	assert.Equal(t, "Test User", versions[0].Author)
	assert.Len(t, versions[0].Short(), 7)
	for _, v := range versions {
		require.NoError(t, v.Err)
		require.NotNil(t, v.Site)
		assert.Equal(t, "Docs", v.Site.Title)
	}
	assert.True(t, versions[0].When.After(versions[2].When))
}

func TestVersions_FromSubdirectoryWithAbsoluteFile(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "")
	r.Commit("Add site", map[string]string{"docs/site.yaml": siteV1})

	versions, err := Versions(filepath.Join(r.Dir, "docs"), filepath.Join(r.Dir, "docs", "site.yaml"))
	require.NoError(t, err)
	require.Len(t, versions, 1)
}

func TestVersions_KeepsUndecodableVersions(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "")
	r.Commit("No title yet", map[string]string{"site.yaml": "sidebar: []\n"})
	r.Commit("Add title", map[string]string{"site.yaml": siteV1})

	versions, err := Versions(r.Dir, "site.yaml")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.NoError(t, versions[0].Err)
	assert.Error(t, versions[1].Err)
	assert.Nil(t, versions[1].Site)
}

func TestVersions_NotARepository(t *testing.T) {
	_, err := Versions(t.TempDir(), "site.yaml")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryGit))
}

func TestVersions_OutsideRepository(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "")
	r.Commit("Add site", map[string]string{"site.yaml": siteV1})

	_, err := Versions(r.Dir, filepath.Join(t.TempDir(), "site.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
}

func TestDiffSidebars(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "")
	r.Commit("v1", map[string]string{"site.yaml": siteV1})
	r.Commit("v2", map[string]string{"site.yaml": siteV2})
	r.Commit("v3", map[string]string{"site.yaml": siteV3})
	versions, err := Versions(r.Dir, "site.yaml")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	v3, v2, v1 := versions[0].Site, versions[1].Site, versions[2].Site

	changes := DiffSidebars(v1.Sidebar, v2.Sidebar)
	require.Len(t, changes, 2)
	assert.Equal(t, Change{
		Kind: ChangeRelabeled, Link: "/getting-started",
		Label: "Quick Start", OldLabel: "Getting Started",
		Group: "Start Here", OldGroup: "Start Here",
	}, changes[0])
	assert.Equal(t, ChangeAdded, changes[1].Kind)
	assert.Equal(t, "/reference/cli", changes[1].Link)
	assert.Equal(t, "Reference", changes[1].Group)

	changes = DiffSidebars(v2.Sidebar, v3.Sidebar)
	require.Len(t, changes, 2)
	assert.Equal(t, ChangeMoved, changes[0].Kind)
	assert.Equal(t, "/installation", changes[0].Link)
	assert.Equal(t, "> /installation Start Here -> Reference", changes[0].String())
	assert.Equal(t, ChangeRemoved, changes[1].Kind)
	assert.Equal(t, "/reference/cli", changes[1].Link)
	assert.Equal(t, "CLI", changes[1].OldLabel)
}

func TestDiffSidebars_Identical(t *testing.T) {
	entries := nav.Entries{
		&nav.Item{Label: "Home", Link: "/"},
		&nav.Group{Label: "Guides", Items: nav.Entries{&nav.Item{Label: "One", Link: "/one"}}},
	}
	assert.Empty(t, DiffSidebars(entries, nav.Clone(entries)))
}

func TestChangeString_TopLevel(t *testing.T) {
	c := Change{Kind: ChangeAdded, Link: "/", Label: "Home"}
	assert.Equal(t, `+ / "Home" in (top level)`, c.String())
}
