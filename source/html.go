package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTMLDocument reports whether text is an HTML page (typically a
// login or error page served instead of the CSV export).
func LooksLikeHTMLDocument(text string) bool {
	head := strings.ToLower(strings.TrimLeft(text, " \t\r\n\ufeff"))
	return strings.HasPrefix(head, "<!") || strings.HasPrefix(head, "<html")
}

// HTMLTitle extracts the <title> of an HTML page for log output.
func HTMLTitle(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}
