// Package practices serves the good agricultural practices guide. The
// guide is an HTML document; each <section> is a category and each
// <article> a practice.
package practices

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"agro/pkg/status"
)

//go:embed guide.html
var guideHTML []byte

type Practice struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Importance  string       `json:"importance"`
	Badge       status.Badge `json:"badge"`
	Frequency   string       `json:"frequency"`
}

type Category struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Practices []Practice `json:"practices"`
}

// Guide returns the built-in guide.
func Guide() ([]Category, error) {
	return Parse(bytes.NewReader(guideHTML))
}

func Parse(r io.Reader) ([]Category, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse guide: %w", err)
	}
	sel := doc.Find("main")
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	out := []Category{}
	var perr error
	sel.Find("section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		title := clean(s.Find("h2").First().Text())
		if id == "" || title == "" {
			perr = fmt.Errorf("parse guide: section without id or title")
			return false
		}
		cat := Category{ID: id, Title: title, Practices: []Practice{}}
		s.Find("article").Each(func(_ int, a *goquery.Selection) {
			importance := a.AttrOr("data-importance", "")
			cat.Practices = append(cat.Practices, Practice{
				Title:       clean(a.Find("h3").First().Text()),
				Description: clean(a.Find("p").First().Text()),
				Importance:  importance,
				Badge:       status.Importance(importance),
				Frequency:   a.AttrOr("data-frequency", ""),
			})
		})
		out = append(out, cat)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
