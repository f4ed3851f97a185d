// Package extract pulls the visible text out of fetched HTML.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Document is the visible content of a parsed page.
type Document struct {
	Title string
	Text  string
}

// Parse extracts the page title and every human-visible text node from the
// whole document in document order. Tags are discarded; script, style,
// noscript and template subtrees contribute nothing. No attempt is made to
// prefer main/article content: word counting wants the full page.
func Parse(input []byte) (Document, error) {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	collectText(&b, node)
	return Document{
		Title: strings.TrimSpace(findTitle(node)),
		Text:  collapseWhitespace(b.String()),
	}, nil
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "template", "head":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		// Separate adjacent text nodes; the space survives until
		// whitespace collapsing below.
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapseWhitespace reduces every whitespace run to one space and trims
// the ends. Counting deletes whitespace anyway; this keeps the text
// readable when shown or logged.
func collapseWhitespace(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
