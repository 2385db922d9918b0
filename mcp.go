// CLAUDE:SUMMARY MCP tool surface: classify, recognize, render, export, and formats tools over the engine.
package gridpipe

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/gridpipe/internal/kit"
)

// RegisterMCP registers grid recognition tools on an MCP server.
func (e *Engine) RegisterMCP(srv *mcp.Server) {
	e.registerRecognizeTool(srv)
	e.registerClassifyTool(srv)
	e.registerRenderTool(srv)
	e.registerExportMarkdownTool(srv)
	e.registerFormatsTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// blockArgs is the common request shape: the block content plus optional
// upstream confidence metadata.
type blockArgs struct {
	Content           string   `json:"content"`
	Confidence        string   `json:"confidence,omitempty"`
	ExtractConfidence *float64 `json:"extract_confidence,omitempty"`
	ParseConfidence   *float64 `json:"parse_confidence,omitempty"`
}

func (a *blockArgs) meta() *BlockMeta {
	if a.Confidence == "" && a.ExtractConfidence == nil && a.ParseConfidence == nil {
		return nil
	}
	return &BlockMeta{
		Confidence:        a.Confidence,
		ExtractConfidence: a.ExtractConfidence,
		ParseConfidence:   a.ParseConfidence,
	}
}

var blockProperties = map[string]any{
	"content":            map[string]any{"type": "string", "description": "Extracted content block to recognize"},
	"confidence":         map[string]any{"type": "string", "description": "Upstream categorical confidence label"},
	"extract_confidence": map[string]any{"type": "number", "description": "Upstream extraction confidence, 0..1"},
	"parse_confidence":   map[string]any{"type": "number", "description": "Upstream parse confidence, 0..1"},
}

// --- recognize ---

func (e *Engine) registerRecognizeTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_recognize",
		Description: "Recognize table structure in a content block and return the canonical grid with confidence.",
		InputSchema: inputSchema(blockProperties, []string{"content"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*blockArgs)
		return e.Recognize(r.Content, r.meta()), nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r blockArgs
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- classify ---

type classifyReq struct {
	Content string `json:"content"`
}

func (e *Engine) registerClassifyTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_classify",
		Description: "Classify a content block as html_table, markdown_table, delimited_text, or not_tabular.",
		InputSchema: inputSchema(map[string]any{
			"content": map[string]any{"type": "string", "description": "Content block to classify"},
		}, []string{"content"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*classifyReq)
		return map[string]any{"format": string(Classify(r.Content, Normalize(r.Content)))}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r classifyReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- render ---

type renderReq struct {
	blockArgs
	Edits map[string]string `json:"edits,omitempty"`
}

func (e *Engine) registerRenderTool(srv *mcp.Server) {
	properties := map[string]any{
		"edits": map[string]any{"type": "object", "description": "Committed cell edits keyed by cell edit key"},
	}
	for k, v := range blockProperties {
		properties[k] = v
	}
	tool := &mcp.Tool{
		Name:        "gridpipe_render",
		Description: "Recognize a content block and render the visual grid, applying any committed edits.",
		InputSchema: inputSchema(properties, []string{"content"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*renderReq)
		res := e.Recognize(r.Content, r.meta())
		out := map[string]any{
			"format":     res.Format,
			"confidence": res.Confidence,
		}
		if res.Grid == nil {
			out["preformatted"] = res.Preformatted
			return out, nil
		}
		out["visual"] = Render(res.Grid, EditStoreFrom(r.Edits))
		return out, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r renderReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- export markdown ---

type exportReq struct {
	Content string            `json:"content"`
	Edits   map[string]string `json:"edits,omitempty"`
}

func (e *Engine) registerExportMarkdownTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_export_markdown",
		Description: "Recognize a content block and export the grid, with edits applied, as a Markdown table.",
		InputSchema: inputSchema(map[string]any{
			"content": map[string]any{"type": "string", "description": "Content block to export"},
			"edits":   map[string]any{"type": "object", "description": "Committed cell edits keyed by cell edit key"},
		}, []string{"content"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*exportReq)
		res := e.Recognize(r.Content, nil)
		if res.Grid == nil {
			return nil, ErrEmptyGrid
		}
		md, err := e.ExportMarkdown(res.Grid, EditStoreFrom(r.Edits))
		if err != nil {
			return nil, err
		}
		return map[string]any{"markdown": md}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r exportReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- formats ---

func (e *Engine) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_formats",
		Description: "List every format classification the engine can produce.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"formats": SupportedFormats()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
