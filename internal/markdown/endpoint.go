package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const endpointPrefix = "/api/"

type endpointLink struct{}

func (e *endpointLink) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(&endpointTransformer{}, 99)))
}

type endpointTransformer struct{}

func (t *endpointTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	// collected first, reparenting during Walk would cut the sibling chain
	var spans []*ast.CodeSpan
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			if strings.HasPrefix(codeText(n, source), endpointPrefix) {
				spans = append(spans, n)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, span := range spans {
		parent := span.Parent()
		link := ast.NewLink()
		link.Destination = []byte(codeText(span, source))
		parent.ReplaceChild(parent, span, link)
		link.AppendChild(link, span)
	}
}

func codeText(n *ast.CodeSpan, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
