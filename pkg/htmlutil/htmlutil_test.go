package htmlutil

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetText(t *testing.T) {
	doc := parse(t, `<table><tr id="r"><td> Uge <b>42</b></td><td>2.g Da</td></tr></table>`)
	node := doc.Find("#r").Nodes[0]

	require.Equal(t, " Uge 422.g Da", GetText(node))
	require.Equal(t, " Uge  | 42 | 2.g Da", GetTextJoined(node, " | "))
	require.Equal(t, "Uge 42", SelectionText(doc.Find("td").First()))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Aarhus Katedralskole", CleanText("\n\t Aarhus   Katedralskole \u200b"))
	require.Equal(t, "", CleanText("   "))
}

func TestGetAnchors(t *testing.T) {
	doc := parse(t, `<div>
		<a href="/lectio/123/default.aspx"> Some   School </a>
		<a>no href</a>
		<a href="https://other.example/x">Absolute</a>
	</div>`)
	base, err := url.Parse("https://www.lectio.dk/lectio/login_list.aspx")
	require.NoError(t, err)

	anchors := GetAnchors(base, doc.Find("a"))
	require.Len(t, anchors, 2)
	require.Equal(t, "Some School", anchors[0].Name)
	require.Equal(t, "https://www.lectio.dk/lectio/123/default.aspx", anchors[0].Url.String())
	require.Equal(t, "https://other.example/x", anchors[1].Url.String())

	relative := GetAnchors(nil, doc.Find("a"))
	require.Equal(t, "/lectio/123/default.aspx", relative[0].Url.String())
}
