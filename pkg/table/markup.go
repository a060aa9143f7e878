package table

import (
	"strings"

	"golang.org/x/net/html"
)

// cleanMarkup condenses raw row markup for inclusion in diagnostics: script
// and style subtrees are dropped, text is whitespace-collapsed, and the
// result is truncated to maxLen runes. Raw innerHTML from real pages is far
// too noisy to print verbatim in an error message.
func cleanMarkup(markup string, maxLen int) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return truncate(strings.Join(strings.Fields(markup), " "), maxLen)
	}
	var builder strings.Builder
	renderNode(doc, &builder)
	return truncate(strings.Join(strings.Fields(builder.String()), " "), maxLen)
}

func renderNode(n *html.Node, builder *strings.Builder) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		builder.WriteString(n.Data)
		builder.WriteString(" ")
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if tag == "script" || tag == "style" || tag == "noscript" {
			return
		}
		// html.Parse wraps fragments in html/head/body; skip those tags but
		// keep their children.
		if tag != "html" && tag != "head" && tag != "body" {
			builder.WriteString("<" + tag)
			for _, attr := range n.Attr {
				builder.WriteString(" " + attr.Key + `="` + attr.Val + `"`)
			}
			builder.WriteString(">")
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		renderNode(child, builder)
	}
	if n.Type == html.ElementNode {
		tag := strings.ToLower(n.Data)
		if tag != "html" && tag != "head" && tag != "body" {
			builder.WriteString("</" + tag + ">")
		}
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
