package easymeasure

import (
	"bytes"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatHTML  = "html"
	FormatChart = "chart"
)

// Renderer turns resolved measurements into printable content.
type Renderer interface {
	RenderOne(key string, v Value) (string, error)
	RenderAll(entries []Entry) (string, error)
}

// LookupRenderer returns the renderer of the given output format.
// An empty format selects the text renderer.
func LookupRenderer(format string) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TextRenderer{}, nil
	case FormatTable:
		return &TableRenderer{}, nil
	case FormatHTML:
		return &TableRenderer{HTML: true}, nil
	case FormatChart:
		return &ChartRenderer{}, nil
	}

	return nil, fmt.Errorf("unsupported output format %q", format)
}

// TextRenderer renders measurements as a YAML document, keeping the key order:
//
//	db:
//	  time: 0.05 Sec
//	  memory: 2 Mb
type TextRenderer struct{}

func (r *TextRenderer) RenderOne(key string, v Value) (string, error) {
	return r.RenderAll([]Entry{{Key: key, Value: v}})
}

func (r *TextRenderer) RenderAll(entries []Entry) (string, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		doc.Content = append(doc.Content, strNode(e.Key), valueNode(e.Value))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func valueNode(v Value) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			strNode("time"), strNode(FormatSeconds(v.Elapsed)),
			strNode("memory"), strNode(FormatBytes(v.MemoryDelta)),
		},
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// TableRenderer renders measurements as a table, or as an HTML table when HTML is set.
type TableRenderer struct {
	HTML bool

	// Style overrides the default table style
	Style *table.Style
}

func (r *TableRenderer) RenderOne(key string, v Value) (string, error) {
	return r.render([]Entry{{Key: key, Value: v}}, false)
}

func (r *TableRenderer) RenderAll(entries []Entry) (string, error) {
	return r.render(entries, true)
}

func (r *TableRenderer) render(entries []Entry, footer bool) (string, error) {
	t := table.NewWriter()
	if r.Style != nil {
		t.SetStyle(*r.Style)
	}

	t.AppendHeader(table.Row{"Key", "Time", "Memory"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, FormatSeconds(e.Value.Elapsed), FormatBytes(e.Value.MemoryDelta)})
	}

	if footer {
		t.AppendFooter(table.Row{"", "Measurements", len(entries)})
	}

	if r.HTML {
		return t.RenderHTML() + "\n", nil
	}

	return t.Render() + "\n", nil
}
