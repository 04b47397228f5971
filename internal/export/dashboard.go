package export

import (
	"html/template"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// dashboardTemplate renders the static report page: one row per lead,
// in batch order, with the website as a link and message line breaks
// rendered as <br>.
var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"breaks": messageBreaks,
}).Parse(`<html>
<head><title>Lead Generation Dashboard</title></head>
<body>
<h2>Lead Generation Dashboard</h2>
<table border="1">
<tr><th>Company</th><th>Website</th><th>Employees</th><th>Score</th><th>Message</th></tr>
{{range .}}<tr><td>{{.Name}}</td><td><a href="{{.Website}}">{{.Website}}</a></td><td>{{.Employees}}</td><td>{{.Score}}</td><td>{{breaks .Message}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// messageBreaks escapes the message text and renders its newlines as
// <br> markup.
func messageBreaks(msg string) template.HTML {
	escaped := template.HTMLEscapeString(msg)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// WriteDashboard writes the static HTML report page.
func WriteDashboard(leads []model.EnrichedLead, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create dashboard file")
	}
	defer f.Close()

	if err := dashboardTemplate.Execute(f, leads); err != nil {
		return eris.Wrap(err, "export: render dashboard")
	}

	return nil
}
