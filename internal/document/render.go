package document

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// CodeFontFamily is the family code blocks are rendered with.
const CodeFontFamily = "monospace"

// Component builds the component tree for d. The returned block installs
// no configuration of its own, so it inherits whatever the caller provides.
func (d Document) Component() (*components.RichText, error) {
	block := components.NewRichText(richtext.RichTextStyle{})
	for i, b := range d.Blocks {
		child, err := b.component()
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
		block.Append(child)
	}
	return block, nil
}

func (b Block) component() (ui.Renderable, error) {
	switch b.Kind {
	case BlockHeading:
		return components.NewHeading(b.Level, b.Text)
	case BlockRule:
		return components.NewRule(), nil
	case BlockCode:
		return components.NewTextScope(
			style.TextStyle{FontFamily: CodeFontFamily},
			components.MutedText(b.Text),
		), nil
	case BlockList:
		items := make([]ui.Renderable, 0, len(b.Items))
		for _, item := range b.Items {
			items = append(items, components.NewText(item))
		}
		return components.VStack(items...), nil
	case BlockQuote:
		return components.NewTextScope(
			style.TextStyle{FontStyle: style.FontStyleItalic},
			components.NewText(quote(b.Text)),
		), nil
	default:
		return components.NewText(b.Text), nil
	}
}

func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "│ " + line
	}
	return strings.Join(lines, "\n")
}

// Renderer renders markdown sources with a fixed context.
type Renderer struct {
	ctx components.RenderContext
	log *logger.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(ctx components.RenderContext, log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Nop()
	}
	return &Renderer{ctx: ctx, log: log}
}

// Render parses src and renders it.
func (r *Renderer) Render(src []byte) (string, error) {
	return r.RenderDocument(Parse(src))
}

// RenderDocument renders an already parsed document.
func (r *Renderer) RenderDocument(doc Document) (string, error) {
	r.log.WithFields(map[string]any{
		"blocks":   len(doc.Blocks),
		"headings": len(doc.Headings()),
	}).Debug("rendering document")

	block, err := doc.Component()
	if err != nil {
		r.log.Error(err, "failed to build document")
		return "", err
	}
	return block.ViewWithContext(r.ctx), nil
}

// Render parses src and renders it with ctx.
func Render(src []byte, ctx components.RenderContext) (string, error) {
	return NewRenderer(ctx, nil).Render(src)
}
