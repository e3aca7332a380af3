package mcp

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/modules/math"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine, err := graft.New(graft.WithModules(math.New(math.WithOutput(io.Discard))))
	require.NoError(t, err)
	return NewServer(engine)
}

func openSession(t *testing.T, s *Server) SessionInfo {
	t.Helper()
	sess, err := s.handleCreateSession(context.Background(), mcp.CallToolRequest{}, map[string]any{"module": "math"})
	require.NoError(t, err)
	return sess
}

func TestCreateSession(t *testing.T) {
	s := newTestServer(t)

	sess := openSession(t, s)
	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, "math", sess.Module)

	_, err := s.handleCreateSession(context.Background(), mcp.CallToolRequest{}, map[string]any{"module": "nope"})
	assert.ErrorIs(t, err, graft.ErrUnknownModule)
}

func TestListTypes(t *testing.T) {
	s := newTestServer(t)

	types, err := s.handleListTypes(context.Background(), mcp.CallToolRequest{}, map[string]any{"module": "math"})
	require.NoError(t, err)
	assert.Equal(t, "math", types.Module)

	byID := make(map[string]TypeInfo, len(types.Types))
	for _, ti := range types.Types {
		byID[ti.ID] = ti
	}

	binop, ok := byID["binop"]
	require.True(t, ok, "catalog should list binop")
	assert.Equal(t, "Binary Operation", binop.Name)
	assert.Equal(t, "math/binop", binop.Path)
	require.Len(t, binop.Properties, 1)
	assert.Equal(t, "operator_name", binop.Properties[0].Name)
	assert.Equal(t, "add", binop.Properties[0].Default)
	assert.Equal(t, []string{"add", "sub", "mul", "div"}, binop.Properties[0].Choices)
}

func TestBuildAndEvaluate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	sess := openSession(t, s)

	v1, err := s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "v1",
		"type":       "constant",
		"params":     map[string]any{"value": 5.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", v1.ID)
	require.Len(t, v1.Outputs, 1)
	assert.Equal(t, "out", v1.Outputs[0].ID)
	assert.Equal(t, "number", v1.Outputs[0].Type)
	assert.Equal(t, 5.0, v1.Properties["value"])

	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "v2",
		"type":       "constant",
		"params":     map[string]any{"value": 7.0},
	})
	require.NoError(t, err)

	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "a1",
		"type":       "binop",
	})
	require.NoError(t, err)

	for _, w := range [][2]string{{"v1.out", "a1.a"}, {"v2.out", "a1.b"}} {
		res, err := s.handleConnectPins(ctx, req, map[string]any{
			"session_id": sess.SessionID,
			"from":       w[0],
			"to":         w[1],
		})
		require.NoError(t, err)
		assert.True(t, res.Connected)
	}

	result, err := s.handleEvaluate(ctx, req, map[string]any{"session_id": sess.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Values["v1.out"])
	assert.Equal(t, 7.0, result.Values["v2.out"])
	assert.Equal(t, 12.0, result.Values["a1.res"])

	g, err := s.handleGetGraph(ctx, req, map[string]any{"session_id": sess.SessionID})
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 3)
	assert.Contains(t, g.Edges, EdgeInfo{From: "v1.out", To: "a1.a"})
	assert.Contains(t, g.Edges, EdgeInfo{From: "v2.out", To: "a1.b"})
}

func TestCreateNodeRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	sess := openSession(t, s)

	_, err := s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "x",
		"type":       "nope",
	})
	assert.ErrorContains(t, err, `unknown type "nope"`)

	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "v1",
		"type":       "constant",
		"params":     map[string]any{"value": "abc"},
	})
	assert.ErrorContains(t, err, "param value")

	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "op",
		"type":       "binop",
		"params":     map[string]any{"operator_name": "pow"},
	})
	assert.ErrorContains(t, err, "operator_name")

	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "d1",
		"type":       "constant",
	})
	require.NoError(t, err)
	_, err = s.handleCreateNode(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"node_id":    "d1",
		"type":       "constant",
	})
	var dup *domain.DuplicateNodeError
	assert.ErrorAs(t, err, &dup)
}

func TestCheckGraph(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	sess := openSession(t, s)

	for _, n := range [][2]string{{"v1", "constant"}, {"p1", "printer"}} {
		_, err := s.handleCreateNode(ctx, req, map[string]any{
			"session_id": sess.SessionID,
			"node_id":    n[0],
			"type":       n[1],
		})
		require.NoError(t, err)
	}
	_, err := s.handleConnectPins(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"from":       "v1.out",
		"to":         "p1.in",
	})
	require.NoError(t, err)

	check, err := s.handleCheckGraph(ctx, req, map[string]any{"session_id": sess.SessionID})
	require.NoError(t, err)
	assert.True(t, check.OK)
	assert.Empty(t, check.Problems)

	// Removing a node behind the store's back leaves a dangling record.
	stored, err := s.store.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	require.True(t, stored.Graph.Remove("v1"))

	check, err = s.handleCheckGraph(ctx, req, map[string]any{"session_id": sess.SessionID})
	require.NoError(t, err)
	assert.False(t, check.OK)
	require.Len(t, check.Problems, 1)
	assert.Equal(t, ProblemInfo{Node: "p1", Pin: "in", Target: "v1.out", Reason: "node not in graph"}, check.Problems[0])
}

func TestDisconnect(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	sess := openSession(t, s)

	for _, n := range [][2]string{{"v1", "constant"}, {"p1", "printer"}} {
		_, err := s.handleCreateNode(ctx, req, map[string]any{
			"session_id": sess.SessionID,
			"node_id":    n[0],
			"type":       n[1],
		})
		require.NoError(t, err)
	}

	wire := map[string]any{"session_id": sess.SessionID, "from": "v1.out", "to": "p1.in"}
	_, err := s.handleConnectPins(ctx, req, wire)
	require.NoError(t, err)

	res, err := s.handleDisconnectPins(ctx, req, wire)
	require.NoError(t, err)
	assert.False(t, res.Connected)

	g, err := s.handleGetGraph(ctx, req, map[string]any{"session_id": sess.SessionID})
	require.NoError(t, err)
	assert.Empty(t, g.Edges)

	_, err = s.handleConnectPins(ctx, req, map[string]any{
		"session_id": sess.SessionID,
		"from":       "v1.nope",
		"to":         "p1.in",
	})
	assert.Error(t, err)
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	sess := openSession(t, s)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"session_id": sess.SessionID}

	res, err := s.handleDeleteSession(ctx, req)
	require.NoError(t, err)
	assert.False(t, res.IsError)

	_, err = s.handleEvaluate(ctx, mcp.CallToolRequest{}, map[string]any{"session_id": sess.SessionID})
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	res, err = s.handleDeleteSession(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.IsError, "deleting a closed session reports a tool error")
}

func TestListSessions(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	list, err := s.handleListSessions(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list.Sessions)

	a := openSession(t, s)
	b := openSession(t, s)

	list, err = s.handleListSessions(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, list.Sessions, 2)

	ids := []string{list.Sessions[0].SessionID, list.Sessions[1].SessionID}
	assert.Contains(t, ids, a.SessionID)
	assert.Contains(t, ids, b.SessionID)
}

func TestGenerateScript(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleGenerateScript(context.Background(), mcp.CallToolRequest{}, map[string]any{"module": "math"})
	require.NoError(t, err)
	assert.Equal(t, "math", res.Module)
	assert.Contains(t, res.Script, `LiteGraph.registerNodeType("math/binop", binop);`)
}
