// Package parser loads HTML fixtures into the virtual DOM the ARIA
// snapshot engine walks, and serializes a virtual DOM back to HTML for
// golden-file output.
package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/mackee/ariasnap/internal/dom"
	"golang.org/x/net/html"
)

// ParseHTML parses an HTML string with golang.org/x/net/html and converts
// the result into a *dom.VDocument.
func ParseHTML(htmlContent string, baseURI string) (*dom.VDocument, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	var htmlNode, bodyNode *html.Node
	var findNodes func(*html.Node)
	findNodes = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if strings.ToLower(n.Data) == "html" {
				htmlNode = n
			} else if strings.ToLower(n.Data) == "body" {
				bodyNode = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findNodes(c)
		}
	}
	findNodes(doc)

	htmlElement := dom.NewVElement("html")
	var bodyElement *dom.VElement

	if htmlNode != nil {
		// Process only the children of the html node to avoid duplication.
		for child := htmlNode.FirstChild; child != nil; child = child.NextSibling {
			processNode(child, htmlElement)
		}
		for _, child := range htmlElement.Children {
			if element, ok := dom.AsVElement(child); ok && element.TagName == "body" {
				bodyElement = element
				break
			}
		}
	} else {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			processNode(c, htmlElement)
		}
	}

	if bodyElement == nil {
		bodyElement = dom.NewVElement("body")
		if bodyNode != nil {
			for child := bodyNode.FirstChild; child != nil; child = child.NextSibling {
				processNode(child, bodyElement)
			}
		}
		htmlElement.AppendChild(bodyElement)
	}

	vdoc := dom.NewVDocument(htmlElement, bodyElement)
	vdoc.BaseURI = baseURI
	vdoc.DocumentURI = baseURI

	return vdoc, nil
}

// processNode recursively converts an html.Node and its children into the
// virtual DOM, attaching them under parent.
func processNode(node *html.Node, parent *dom.VElement) {
	switch node.Type {
	case html.ElementNode:
		element := dom.NewVElement(strings.ToLower(node.Data))
		for _, attr := range node.Attr {
			element.SetAttribute(attr.Key, attr.Val)
		}
		parent.AppendChild(element)
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			processNode(child, element)
		}

	case html.TextNode:
		parent.AppendChild(dom.NewVText(node.Data))

	case html.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			processNode(child, parent)
		}

		// Comments and other node types are dropped.
	}
}

// selfClosingTags lists void elements serialized without a closing tag.
var selfClosingTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// SerializeToHTML converts a virtual DOM node to an HTML string.
func SerializeToHTML(node dom.VNode) string {
	if node == nil {
		return ""
	}

	if textNode, ok := dom.AsVText(node); ok {
		return html.EscapeString(textNode.TextContent)
	}

	element, ok := dom.AsVElement(node)
	if !ok {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("<")
	buf.WriteString(element.TagName)

	for key, value := range element.Attributes {
		buf.WriteString(" ")
		buf.WriteString(key)
		buf.WriteString("=\"")
		buf.WriteString(html.EscapeString(value))
		buf.WriteString("\"")
	}

	if selfClosingTags[element.TagName] && len(element.Children) == 0 {
		buf.WriteString("/>")
		return buf.String()
	}

	buf.WriteString(">")
	for _, child := range element.Children {
		buf.WriteString(SerializeToHTML(child))
	}
	buf.WriteString("</")
	buf.WriteString(element.TagName)
	buf.WriteString(">")

	return buf.String()
}

// SerializeDocumentToHTML converts a virtual DOM document to a full HTML
// string, including the doctype.
func SerializeDocumentToHTML(doc *dom.VDocument) string {
	if doc == nil || doc.DocumentElement == nil {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(SerializeToHTML(doc.DocumentElement))
	return buf.String()
}

// SerializeToWriter writes node's HTML representation to w.
func SerializeToWriter(node dom.VNode, w io.Writer) error {
	_, err := io.WriteString(w, SerializeToHTML(node))
	return err
}

// SerializeDocumentToWriter writes doc's HTML representation to w.
func SerializeDocumentToWriter(doc *dom.VDocument, w io.Writer) error {
	_, err := io.WriteString(w, SerializeDocumentToHTML(doc))
	return err
}
