package graph

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Pages persist as markdown: every top-level list item is a block,
// `key:: value` lines inside an item are its properties, and nested
// list items are its children. Block ids are assigned at parse time;
// they are session identities and never written back.

var pageMarkdown = goldmark.New()

// ParsePage parses the markdown source of a page into its block tree.
func ParsePage(name string, src []byte) *Page {
	doc := pageMarkdown.Parser().Parse(text.NewReader(src))
	page := &Page{Name: name}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if list, ok := n.(*ast.List); ok {
			page.Blocks = append(page.Blocks, parseList(list, src)...)
		}
	}
	return page
}

func parseList(list *ast.List, src []byte) []*Block {
	var blocks []*Block
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		blocks = append(blocks, parseItem(item, src))
	}
	return blocks
}

func parseItem(item ast.Node, src []byte) *Block {
	b := &Block{ID: uuid.NewString(), Properties: make(map[string]string)}
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if list, ok := child.(*ast.List); ok {
			b.Children = append(b.Children, parseList(list, src)...)
			continue
		}
		lines := child.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimSpace(string(seg.Value(src)))
			if line == "" {
				continue
			}
			if key, value, ok := splitProperty(line); ok {
				b.Properties[key] = value
			} else if b.Content == "" {
				b.Content = line
			} else {
				b.Content += "\n" + line
			}
		}
	}
	return b
}

// splitProperty splits a `key:: value` line. The key must be a single
// word; anything else is block content.
func splitProperty(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "::")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// RenderPage renders the block tree of a page back to markdown.
func RenderPage(p *Page) []byte {
	var buf bytes.Buffer
	for _, b := range p.Blocks {
		renderBlock(&buf, b, 0)
	}
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, b *Block, depth int) {
	indent := strings.Repeat("  ", depth)

	lines := make([]string, 0, 1+len(b.Properties))
	if b.Content != "" {
		lines = append(lines, strings.Split(b.Content, "\n")...)
	}
	for _, key := range propertyOrder(b.Properties) {
		lines = append(lines, fmt.Sprintf("%s:: %s", key, b.Properties[key]))
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}

	fmt.Fprintf(buf, "%s- %s\n", indent, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(buf, "%s  %s\n", indent, line)
	}
	for _, c := range b.Children {
		renderBlock(buf, c, depth+1)
	}
}

// propertyOrder yields a deterministic key order: the `type`
// discriminator first, then the remaining keys sorted.
func propertyOrder(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		if k != "type" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := props["type"]; ok {
		keys = append([]string{"type"}, keys...)
	}
	return keys
}
