package render_test

import (
	"strings"
	"testing"

	"tagcloud/internal/ranking"
	"tagcloud/internal/render"
)

func sized(word string, count, size int) ranking.Sized {
	return ranking.Sized{Entry: ranking.Entry{Word: word, Count: count}, FontSize: size}
}

func TestWriteProducesDocumentShell(t *testing.T) {
	var b strings.Builder
	err := render.Write(&b, render.Document{
		Source:      "data/input.txt",
		Requested:   2,
		Stylesheets: []string{"tagcloud.css"},
		Words:       []ranking.Sized{sized("a", 3, 58), sized("b", 1, 26)},
	})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	want := `<html>
<head>
<title>Top 2 words in data/input.txt</title>
<link href="tagcloud.css" rel="stylesheet" type="text/css">
</head>
<body>
<h2>Top 2 words in data/input.txt</h2>
<hr>
<div class="cdiv">
<p class="cbox">
<span style="cursor:default; font-size:58px" title="count: 3">a</span>
<span style="cursor:default; font-size:26px" title="count: 1">b</span>
</p>
</div>
</body>
</html>
`
	if got := b.String(); got != want {
		t.Fatalf("unexpected document:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteEmptyCloud(t *testing.T) {
	var b strings.Builder
	if err := render.Write(&b, render.Document{Source: "empty.txt", Requested: 5}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := b.String()
	if strings.Contains(out, "<span") {
		t.Fatalf("expected no word elements, got:\n%s", out)
	}
	if !strings.Contains(out, "<p class=\"cbox\">\n</p>") {
		t.Fatalf("expected empty cloud paragraph, got:\n%s", out)
	}
	if !strings.Contains(out, "<title>Top 5 words in empty.txt</title>") {
		t.Fatalf("missing title, got:\n%s", out)
	}
}

func TestWriteEscapesMarkup(t *testing.T) {
	var b strings.Builder
	err := render.Write(&b, render.Document{
		Source:    "<notes>&more.txt",
		Requested: 1,
		Words:     []ranking.Sized{sized("<b>bold</b>", 1, 58)},
	})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := b.String()
	if strings.Contains(out, "<b>bold</b>") || strings.Contains(out, "<notes>") {
		t.Fatalf("markup was not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatalf("expected escaped word, got:\n%s", out)
	}
}

func TestWritePreconnectHints(t *testing.T) {
	var b strings.Builder
	err := render.Write(&b, render.Document{
		Source:     "x.txt",
		Requested:  1,
		Preconnect: []render.Preconnect{
			{Origin: "https://fonts.googleapis.com"},
			{Origin: "https://fonts.gstatic.com", CrossOrigin: true},
		},
	})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		`<link rel="preconnect" href="https://fonts.googleapis.com">`,
		`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}
