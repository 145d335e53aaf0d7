package mailtemplate

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start a new line in the plain-text rendering.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Table: true, atom.Ul: true, atom.Ol: true, atom.Hr: true,
}

// HTMLToText derives the plain-text alternative of an HTML email body.
// Links keep their target in parentheses after the link text.
func HTMLToText(body string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(body))

	var (
		lines   []string
		current strings.Builder
		skip    int
		hrefs   []string
	)

	flush := func() {
		line := strings.Join(strings.Fields(current.String()), " ")
		if line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			flush()

			return strings.Join(lines, "\n")
		case html.TextToken:
			if skip == 0 {
				current.WriteString(" ")
				current.Write(tokenizer.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.DataAtom {
			case atom.Style, atom.Script, atom.Head:
				if token.Type == html.StartTagToken {
					skip++
				}
			case atom.A:
				hrefs = append(hrefs, attr(token, "href"))
			default:
				if blockElements[token.DataAtom] {
					flush()
				}
			}
		case html.EndTagToken:
			token := tokenizer.Token()
			switch token.DataAtom {
			case atom.Style, atom.Script, atom.Head:
				if skip > 0 {
					skip--
				}
			case atom.A:
				if n := len(hrefs); n > 0 {
					if href := hrefs[n-1]; href != "" && !strings.Contains(current.String(), href) {
						current.WriteString(" (" + href + ")")
					}
					hrefs = hrefs[:n-1]
				}
			default:
				if blockElements[token.DataAtom] {
					flush()
				}
			}
		}
	}
}

func attr(token html.Token, name string) string {
	for _, a := range token.Attr {
		if a.Key == name {
			return a.Val
		}
	}

	return ""
}
