// CLAUDE:SUMMARY MCP tools for edit persistence: save, list, and delete a block's committed edits.
package editstore

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/gridpipe/internal/kit"
)

// RegisterMCP registers edit persistence tools on an MCP server.
func (s *Store) RegisterMCP(srv *mcp.Server) {
	s.registerSaveTool(srv)
	s.registerListTool(srv)
	s.registerDeleteTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// --- save ---

type saveReq struct {
	BlockID string            `json:"block_id"`
	Edits   map[string]string `json:"edits"`
}

func (s *Store) registerSaveTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_save_edits",
		Description: "Persist a block's committed cell edits. The whole set lands in one transaction.",
		InputSchema: inputSchema(map[string]any{
			"block_id": map[string]any{"type": "string", "description": "Content block the edits belong to"},
			"edits":    map[string]any{"type": "object", "description": "Cell edit key to replacement text"},
		}, []string{"block_id", "edits"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*saveReq)
		if err := s.SaveEdits(ctx, r.BlockID, r.Edits); err != nil {
			return nil, err
		}
		return map[string]any{"saved": len(r.Edits)}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r saveReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{
			Request: &r,
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithBlockID(ctx, r.BlockID)
			},
		}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- list ---

type listReq struct {
	BlockID string `json:"block_id"`
}

func (s *Store) registerListTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_list_edits",
		Description: "List a block's persisted cell edits.",
		InputSchema: inputSchema(map[string]any{
			"block_id": map[string]any{"type": "string", "description": "Content block to list edits for"},
		}, []string{"block_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*listReq)
		edits, err := s.ListEdits(ctx, r.BlockID)
		if err != nil {
			return nil, err
		}
		return map[string]any{"edits": edits}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r listReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- delete ---

type deleteReq struct {
	BlockID string `json:"block_id"`
}

func (s *Store) registerDeleteTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "gridpipe_delete_edits",
		Description: "Delete a block's persisted cell edits, typically after approval applies them upstream.",
		InputSchema: inputSchema(map[string]any{
			"block_id": map[string]any{"type": "string", "description": "Content block to clear"},
		}, []string{"block_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*deleteReq)
		if err := s.DeleteEdits(ctx, r.BlockID); err != nil {
			return nil, err
		}
		return map[string]any{"deleted": true}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r deleteReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
