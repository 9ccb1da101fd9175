// Package extract turns an unstructured HTML/text blob into typed page
// metadata: a page-type classification, contact details, product candidates
// and a description. Everything here is a pure, deterministic function over
// static pattern tables. Extraction never fails: any segment that does not
// parse simply leaves its field empty, so one malformed fragment can never
// block page creation.
package extract

import (
	"strings"

	"golang.org/x/net/html"

	"autopage/internal/models/store_models"
)

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

type Result struct {
	PageType    store_models.PageType  `json:"pageType"`
	Contact     Contact                `json:"contact"`
	Products    []store_models.Product `json:"products,omitempty"`
	Description string                 `json:"description,omitempty"`
}

// Extract runs all matchers over the raw content. A non-empty declared type
// is authoritative and skips keyword classification.
func Extract(raw string, declared store_models.PageType) Result {
	doc := parseDocument(raw)
	return Result{
		PageType:    ClassifyPageType(raw, declared),
		Contact:     ExtractContact(raw),
		Products:    ExtractProducts(doc),
		Description: ExtractDescription(doc),
	}
}

// document is the linearized view of the parsed content: text segments in
// document order, each tagged with its nearest element.
type document struct {
	blocks []textBlock
	meta   map[string]string
}

type textBlock struct {
	tag  string
	text string
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// parseDocument tolerates anything: html.Parse repairs arbitrary garbage,
// and plain text comes back as a single body text node.
func parseDocument(raw string) *document {
	doc := &document{meta: map[string]string{}}
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		doc.blocks = append(doc.blocks, textBlock{tag: "body", text: strings.TrimSpace(raw)})
		return doc
	}

	var walk func(n *html.Node, tag string)
	walk = func(n *html.Node, tag string) {
		switch n.Type {
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
			if n.Data == "meta" {
				collectMeta(doc.meta, n)
				return
			}
			tag = n.Data
		case html.TextNode:
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				doc.blocks = append(doc.blocks, textBlock{tag: tag, text: text})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, tag)
		}
	}
	walk(root, "body")
	return doc
}

func collectMeta(meta map[string]string, n *html.Node) {
	var name, content string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "name", "property":
			name = strings.ToLower(attr.Val)
		case "content":
			content = attr.Val
		}
	}
	if name != "" && content != "" {
		if _, seen := meta[name]; !seen {
			meta[name] = strings.TrimSpace(content)
		}
	}
}

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "title": true,
}

const (
	descriptionMinLen = 40
	descriptionMaxLen = 200
)

// ExtractDescription prefers the document's meta description, then falls
// back to the first non-heading text block long enough to stand alone.
func ExtractDescription(doc *document) string {
	for _, key := range []string{"description", "og:description"} {
		if v := doc.meta[key]; v != "" {
			return truncateWords(v, descriptionMaxLen)
		}
	}
	for _, b := range doc.blocks {
		if headingTags[b.tag] {
			continue
		}
		if len([]rune(b.text)) >= descriptionMinLen {
			return truncateWords(b.text, descriptionMaxLen)
		}
	}
	return ""
}

// truncateWords cuts s to at most max runes on a word boundary.
func truncateWords(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
