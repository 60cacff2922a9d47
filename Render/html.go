package Render

import (
	"html/template"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

// page is a standalone vis-network page. The graph is serialized as JSON by
// html/template inside the script element.
var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Heading}}</title>
<script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
<style>
#graph { width: 100%; height: 60vh; border: 1px solid lightgray; }
</style>
</head>
<body>
<h1>{{.Heading}}</h1>
<div id="graph"></div>
<div id="config"></div>
<script>
var nodes = new vis.DataSet({{.Vertices}});
var edges = new vis.DataSet({{.Edges}});
var options = {{.Options}};
options.configure.container = document.getElementById("config");
new vis.Network(document.getElementById("graph"), {nodes: nodes, edges: edges}, options);
</script>
</body>
</html>
`))

// HTMLPresenter writes the graph as an HTML page to Path on Fs and then calls
// Open with its file URL. A relative Path is relative to the working
// directory. Failing to open the page is only logged, as there may be no
// viewer at all.
type HTMLPresenter struct {
	Fs   afero.Fs
	Path string
	Open func(url string) error
}

// NewHTMLPresenter writes to the OS filesystem and opens the page in the
// default browser.
func NewHTMLPresenter(path string) *HTMLPresenter {
	return &HTMLPresenter{afero.NewOsFs(), path, browser.OpenURL}
}

// fileURL of an absolute path, always with an empty host so it reads file:///.
func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

func (u *HTMLPresenter) Present(g *Graph) error {
	path, err := filepath.Abs(u.Path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", u.Path)
	}
	f, err := u.Fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = page.Execute(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	pterm.Debug.Printfln("wrote %d vertices and %d edges to %s", len(g.Vertices), len(g.Edges), path)

	if u.Open != nil {
		link := fileURL(path)
		if err = u.Open(link); err != nil {
			pterm.Warning.Printfln("could not open %s: %v", link, err)
		}
	}
	return nil
}
