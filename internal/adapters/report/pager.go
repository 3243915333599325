package report

import (
	"fmt"
	"io"
	"strings"
)

const pageWidth = 60

// Page is one printed page of a report.
type Page struct {
	Number int
	Lines  []string
}

// Paginate lays doc out on pages. The header opens the first page and every
// block is placed whole; before a block is placed, a page already holding
// more than pageLines lines is closed and a new one begun. A block larger
// than a page still lands on a single page. pageLines <= 0 disables breaks.
func Paginate(doc Document, pageLines int) []Page {
	cur := Page{Number: 1, Lines: append(doc.Header(), "")}
	var pages []Page
	for _, b := range doc.Blocks {
		if pageLines > 0 && len(cur.Lines) > pageLines {
			pages = append(pages, cur)
			cur = Page{Number: cur.Number + 1}
		}
		cur.Lines = append(cur.Lines, renderBlock(b)...)
	}
	return append(pages, cur)
}

func renderBlock(b Block) []string {
	lines := make([]string, 0, len(b.Lines)+2)
	lines = append(lines, b.Heading)
	for _, l := range b.Lines {
		lines = append(lines, "  "+l)
	}
	return append(lines, "")
}

// WriteText prints pages, each closed by a "Page n of m" footer.
func WriteText(w io.Writer, pages []Page) error {
	for _, p := range pages {
		for _, l := range p.Lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		footer := fmt.Sprintf("Page %d of %d", p.Number, len(pages))
		if _, err := fmt.Fprintf(w, "%s\n%*s\n\n", strings.Repeat("-", pageWidth), pageWidth, footer); err != nil {
			return err
		}
	}
	return nil
}
