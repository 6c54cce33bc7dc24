package sidebar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

func render(t *testing.T, entries nav.Entries) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, entries))
	return buf.String()
}

func TestRender_StartHere(t *testing.T) {
	out := render(t, nav.Entries{nav.NewGroup("Start Here", nav.NewItem("Getting Started", "/start"))})
	assert.Equal(t,
		`<nav class="sidebar"><ul><li><details open=""><summary>Start Here</summary><ul><li><a href="/start">Getting Started</a></li></ul></details></li></ul></nav>`+"\n",
		out)

	hrefs, err := Hrefs(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"/start"}, hrefs)
}

func TestRender_PreservesChildOrder(t *testing.T) {
	out := render(t, nav.Entries{nav.NewGroup("G",
		nav.NewItem("A", "/a"), nav.NewItem("B", "/b"), nav.NewItem("C", "/c"))})
	a, b, c := strings.Index(out, ">A<"), strings.Index(out, ">B<"), strings.Index(out, ">C<")
	assert.True(t, a < b && b < c)
}

func TestRender_CollapsedAndAutogenerated(t *testing.T) {
	collapsed := nav.NewGroup("Hidden", nav.NewItem("X", "/x"))
	collapsed.Collapsed = true
	out := render(t, nav.Entries{collapsed, nav.NewAutogenerated("Reference", "reference")})

	assert.Contains(t, out, `<details><summary>Hidden</summary>`)
	assert.Contains(t, out, `<details open="" data-autogenerate="reference"><summary>Reference</summary></details>`)
}

func TestRender_EscapesLabels(t *testing.T) {
	out := render(t, nav.Entries{nav.NewItem("<b>Tips & Tricks</b>", "/tips?a=1&b=2")})
	assert.Contains(t, out, `&lt;b&gt;Tips &amp; Tricks&lt;/b&gt;`)
	assert.Contains(t, out, `href="/tips?a=1&amp;b=2"`)
}

func TestParse_RoundTripsEchoProxy(t *testing.T) {
	want := site.EchoProxy().Sidebar
	want = append(want, nav.NewAutogenerated("Reference", "reference"))
	closed := nav.NewGroup("Closed", nav.NewItem("Z", "/z"))
	closed.Collapsed = true
	want = append(want, closed)

	got, err := Parse(strings.NewReader(render(t, want)))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_KeepsLabelWhitespace(t *testing.T) {
	want := nav.Entries{nav.NewGroup(" Start ", nav.NewItem("  Intro", "/intro"))}
	got, err := Parse(strings.NewReader(render(t, want)))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FindsNavInsideDocument(t *testing.T) {
	doc := `<!doctype html><html><body><header><nav class="top"><a href="/home">Home</a></nav></header>` +
		`<aside><nav class="menu sidebar"><ul><li><a href="/start">Start</a></li></ul></nav></aside></body></html>`
	got, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, nav.NewItem("Start", "/start"), got[0])

	hrefs, err := Hrefs(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"/home", "/start"}, hrefs)
}

func TestParse_NoSidebar(t *testing.T) {
	_, err := Parse(strings.NewReader(`<p>nothing here</p>`))
	assert.ErrorIs(t, err, ErrNoSidebar)
}

func TestHrefs_MatchesLinks(t *testing.T) {
	entries := site.EchoProxy().Sidebar
	hrefs, err := Hrefs(strings.NewReader(render(t, entries)))
	require.NoError(t, err)
	assert.Equal(t, nav.Links(entries), hrefs)
}
