package bench

import (
	"fmt"
	"html"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"rsc.io/markdown"
)

// Report formats.
const (
	FormatText     = "text"     // one line per run, printed as runs finish
	FormatMarkdown = "markdown" // a table, printed after all runs
	FormatHTML     = "html"     // the markdown table rendered as a page
)

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(data []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(data)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *errWriter) Err() error { return w.err }

// WriteReport writes results to w as a markdown table or an HTML page.
// Text output is produced by the Runner itself.
func WriteReport(w io.Writer, format, title string, results []Result) error {
	ew := &errWriter{w: w}
	switch format {
	case FormatMarkdown:
		io.WriteString(ew, markdownTable(results))
	case FormatHTML:
		fmt.Fprintf(ew, top, html.EscapeString(title))
		io.WriteString(ew, renderMarkdown(markdownTable(results)))
		io.WriteString(ew, bottom)
	default:
		return fmt.Errorf("no report for format %q", format)
	}
	return ew.Err()
}

func markdownTable(results []Result) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("| Section | Strategy | Threads | Iterations | Wall time (ms) |\n")
	b.WriteString("| --- | --- | --: | --: | --: |\n")
	for _, r := range results {
		p.Fprintf(&b, "| %s | %s | %d | %d | %f |\n",
			r.Section(), r.Strategy, r.Threads, r.Iterations, r.ElapsedMs)
	}
	return b.String()
}

func renderMarkdown(s string) string {
	p := markdown.Parser{Table: true}
	doc := p.Parse(s)
	return markdown.ToHTML(doc)
}

const top = `<!DOCTYPE html>
<html>
  <head>
    <title>%s</title>
    <meta charset='utf-8'>
  </head>
  <body>
`

const bottom = `  </body>
</html>
`
