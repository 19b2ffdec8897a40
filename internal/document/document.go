// Package document turns markdown source into a tree of rich-text components.
// Markdown headings map onto heading levels (# is level 0, ###### is level 5).
package document

import (
	"os"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// BlockKind identifies the kind of a top-level document block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockRule
	BlockCode
	BlockList
	BlockQuote
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockRule:
		return "rule"
	case BlockCode:
		return "code"
	case BlockList:
		return "list"
	case BlockQuote:
		return "quote"
	default:
		return "paragraph"
	}
}

// Block is one top-level element of a document.
type Block struct {
	Kind BlockKind
	// Level is the heading level; only meaningful for BlockHeading.
	Level int
	Text  string
	// Items holds list entries, already prefixed with their markers.
	Items []string
}

// Document is a parsed markdown source.
type Document struct {
	Blocks []Block
}

// Headings returns the heading blocks in document order.
func (d Document) Headings() []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Kind == BlockHeading {
			out = append(out, b)
		}
	}
	return out
}

// ParseFile reads and parses a markdown file.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, quillerrors.NewParseError(path, 0, err)
	}
	return Parse(data), nil
}

// Parse converts markdown source into blocks. Inline markup is reduced to
// its text; unsupported block types such as raw HTML are skipped.
func Parse(src []byte) Document {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var doc Document
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if block, ok := convert(n, src); ok {
			doc.Blocks = append(doc.Blocks, block)
		}
	}
	return doc
}

func convert(n ast.Node, src []byte) (Block, bool) {
	switch node := n.(type) {
	case *ast.Heading:
		return Block{Kind: BlockHeading, Level: node.Level - 1, Text: inlineText(node, src)}, true
	case *ast.Paragraph, *ast.TextBlock:
		return Block{Kind: BlockParagraph, Text: inlineText(node, src)}, true
	case *ast.ThematicBreak:
		return Block{Kind: BlockRule}, true
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return Block{Kind: BlockCode, Text: strings.TrimRight(rawLines(node, src), "\n")}, true
	case *ast.List:
		return Block{Kind: BlockList, Items: listItems(node, src)}, true
	case *ast.Blockquote:
		return Block{Kind: BlockQuote, Text: nestedText(node, src)}, true
	default:
		return Block{}, false
	}
}

// inlineText concatenates the text of n's inline descendants.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch leaf := child.(type) {
		case *ast.Text:
			b.Write(leaf.Segment.Value(src))
			switch {
			case leaf.HardLineBreak():
				b.WriteByte('\n')
			case leaf.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(leaf.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func rawLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(src))
	}
	return b.String()
}

// nestedText flattens every block inside n into newline-separated text.
func nestedText(n ast.Node, src []byte) string {
	var parts []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if block, ok := convert(child, src); ok {
			switch block.Kind {
			case BlockList:
				parts = append(parts, block.Items...)
			default:
				parts = append(parts, block.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}

func listItems(list *ast.List, src []byte) []string {
	var items []string
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + "."
			number++
		}
		body := nestedText(item, src)
		items = append(items, marker+" "+strings.ReplaceAll(body, "\n", "\n  "))
	}
	return items
}
