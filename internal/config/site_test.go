package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

func TestEncodeDecodeSite_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			want := site.EchoProxy()
			data, err := EncodeSite(want, format)
			require.NoError(t, err)

			got, err := DecodeSite(data, format)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(nav.Links(want.Sidebar), nav.Links(got.Sidebar)))
			assert.Equal(t, want.Title, got.Title)
			assert.Equal(t, want.Social, got.Social)
			assert.Equal(t, want.Head[1].Attrs["async"], got.Head[1].Attrs["async"])
		})
	}
}

func TestDecodeSite_RejectsSchemaViolations(t *testing.T) {
	doc := `
title: Docs
sidebar:
  - label: Start
    items:
      - label: Intro
        link: /intro
        items: []
`
	_, err := DecodeSite([]byte(doc), FormatYAML)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
}

func TestDecodeSite_EmptyDocumentMissesTitle(t *testing.T) {
	_, err := DecodeSite([]byte(""), FormatYAML)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
}

func TestLoadSite_NotFound(t *testing.T) {
	_, err := LoadSite(t.TempDir() + "/nope.json")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestLoadSite_JSONFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "site.json", `{"title":"Docs","sidebar":[{"label":"Guide","autogenerate":{"directory":"guide"}}]}`)

	cfg, err := LoadSite(p)
	require.NoError(t, err)
	require.Len(t, cfg.Sidebar, 1)
	g, ok := cfg.Sidebar[0].(*nav.Group)
	require.True(t, ok)
	require.NotNil(t, g.Autogenerate)
	assert.Equal(t, "guide", g.Autogenerate.Directory)
}

func TestResolveSite_FallsBackToBuiltIn(t *testing.T) {
	cfg := Example()
	cfg.SiteFile = ""
	s, err := ResolveSite(cfg)
	require.NoError(t, err)
	assert.Equal(t, "EchoProxy", s.Title)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("site.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("site.yml"))
	assert.Equal(t, FormatYAML, FormatFor("site"))
}
