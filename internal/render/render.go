package render

import (
	"fmt"
	"html/template"
	"io"

	"tagcloud/internal/ranking"
)

// Preconnect is an origin emitted as a rel="preconnect" hint.
type Preconnect struct {
	Origin string
	// CrossOrigin adds the crossorigin attribute, needed for origins that
	// serve fonts.
	CrossOrigin bool
}

// Document describes one tag cloud page.
type Document struct {
	// Source names the input file in the page title and heading.
	Source string
	// Requested is the word count the caller asked for, shown as entered.
	Requested int
	Preconnect []Preconnect
	// Stylesheets lists stylesheet URLs linked from the head.
	Stylesheets []string
	// Words are emitted in order, one span each.
	Words []ranking.Sized
}

var pageTemplate = template.Must(template.New("tagcloud").Parse(`<html>
<head>
<title>Top {{.Requested}} words in {{.Source}}</title>
{{range .Preconnect}}<link rel="preconnect" href="{{.Origin}}"{{if .CrossOrigin}} crossorigin{{end}}>
{{end}}{{range .Stylesheets}}<link href="{{.}}" rel="stylesheet" type="text/css">
{{end}}</head>
<body>
<h2>Top {{.Requested}} words in {{.Source}}</h2>
<hr>
<div class="cdiv">
<p class="cbox">
{{range .Words}}<span style="cursor:default; font-size:{{.FontSize}}px" title="count: {{.Count}}">{{.Word}}</span>
{{end}}</p>
</div>
</body>
</html>
`))

// Write renders doc to w.
func Write(w io.Writer, doc Document) error {
	if err := pageTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render tag cloud: %w", err)
	}
	return nil
}
