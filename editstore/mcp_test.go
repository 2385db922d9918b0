package editstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "editstore-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	store := testStore(t)
	srv := mcp.NewServer(testMCPImpl, nil)
	store.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

func TestMCP_SaveListDeleteRoundTrip(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "gridpipe_save_edits", map[string]any{
		"block_id": "blk_1",
		"edits":    map[string]string{"cell-0-0": "Monday", "cell-1-1": "B-204"},
	})
	var saveResp struct {
		Saved int `json:"saved"`
	}
	if err := json.Unmarshal([]byte(text), &saveResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saveResp.Saved != 2 {
		t.Errorf("saved = %d, want 2", saveResp.Saved)
	}

	text = mcpCallTool(t, session, "gridpipe_list_edits", map[string]any{"block_id": "blk_1"})
	var listResp struct {
		Edits map[string]string `json:"edits"`
	}
	if err := json.Unmarshal([]byte(text), &listResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listResp.Edits) != 2 || listResp.Edits["cell-0-0"] != "Monday" {
		t.Errorf("edits = %v", listResp.Edits)
	}

	mcpCallTool(t, session, "gridpipe_delete_edits", map[string]any{"block_id": "blk_1"})

	text = mcpCallTool(t, session, "gridpipe_list_edits", map[string]any{"block_id": "blk_1"})
	if err := json.Unmarshal([]byte(text), &listResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listResp.Edits) != 0 {
		t.Errorf("edits after delete = %v, want none", listResp.Edits)
	}
}

func TestMCP_SaveWithoutBlockIDIsToolError(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "gridpipe_save_edits",
		Arguments: map[string]any{
			"block_id": "",
			"edits":    map[string]string{"cell-0-0": "x"},
		},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.GetError() == nil {
		t.Error("expected a tool error for empty block id")
	}
}
