package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

func mustValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestReflect_HasNavDefinitions(t *testing.T) {
	s := Reflect()
	require.NotNil(t, s.Definitions)
	assert.Contains(t, s.Definitions, entryDefName)
	assert.Contains(t, s.Definitions, groupDefName)
	assert.Contains(t, s.Definitions, itemDefName)

	sidebar, ok := s.Properties.Get("sidebar")
	require.True(t, ok)
	assert.Equal(t, "array", sidebar.Type)
	assert.Equal(t, "#/$defs/NavEntry", sidebar.Items.Ref)
}

func TestValidator_AcceptsEchoProxy(t *testing.T) {
	data, err := json.Marshal(site.EchoProxy())
	require.NoError(t, err)
	require.NoError(t, mustValidator(t).ValidateBytes(data))
}

func TestValidator_AcceptsAutogeneratedGroup(t *testing.T) {
	cfg := &site.Config{Options: site.Options{
		Title:   "Docs",
		Sidebar: nav.Entries{nav.NewAutogenerated("Reference", "reference")},
	}}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, mustValidator(t).ValidateBytes(data))
}

func TestValidator_RejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"missing title":       `{"sidebar":[]}`,
		"empty title":         `{"title":""}`,
		"unknown key":         `{"title":"Docs","sidebr":[]}`,
		"item without link":   `{"title":"Docs","sidebar":[{"label":"Start","items":[{"label":"x","href":"/x"}]}]}`,
		"numeric head attr":   `{"title":"Docs","head":[{"tag":"meta","attrs":{"width":3}}]}`,
		"group without items": `{"title":"Docs","sidebar":[{"label":"Empty"}]}`,
	}
	v := mustValidator(t)
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(doc))
			require.Error(t, err)
			assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
		})
	}
}

func TestValidator_ReportsViolationLocations(t *testing.T) {
	err := mustValidator(t).ValidateBytes([]byte(`{"title":"Docs","head":[{"tag":"meta","attrs":{"width":3}}]}`))
	require.Error(t, err)

	classified, ok := derrors.AsClassified(err)
	require.True(t, ok)
	violations, _ := classified.Context().GetString("violations")
	assert.Contains(t, violations, "/head/0/attrs/width")
}

func TestDefault_IsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}
