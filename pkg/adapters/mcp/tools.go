package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/graft/internal/validator"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
)

// SessionInfo describes one editing session.
type SessionInfo struct {
	SessionID string `json:"session_id" jsonschema_description:"Identifier passed to all graph tools"`
	Module    string `json:"module" jsonschema_description:"Module whose catalog the session builds from"`
	Nodes     int    `json:"nodes" jsonschema_description:"Number of nodes currently in the graph"`
}

// SessionList holds every live session.
type SessionList struct {
	Sessions []SessionInfo `json:"sessions"`
}

// PropertyInfo describes one declared property of a node type.
type PropertyInfo struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind" jsonschema_description:"Value shape, e.g. float, int[0..8], choice(add|sub)"`
	Default any      `json:"default"`
	Choices []string `json:"choices,omitempty"`
}

// TypeInfo describes a node type available in a module catalog.
type TypeInfo struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Path       string         `json:"path" jsonschema_description:"Category path the editor registers the type under"`
	Properties []PropertyInfo `json:"properties"`
}

// TypeList is the catalog of a module.
type TypeList struct {
	Module string     `json:"module"`
	Types  []TypeInfo `json:"types"`
}

// PinInfo describes a pin on a node instance.
type PinInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Type      string `json:"type"`
}

// NodeInfo describes a node instance in a session graph.
type NodeInfo struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Inputs     []PinInfo      `json:"inputs"`
	Outputs    []PinInfo      `json:"outputs"`
}

// EdgeInfo is one connection, source to destination, both as node.pin.
type EdgeInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GraphInfo is the full picture of a session graph.
type GraphInfo struct {
	SessionID string     `json:"session_id"`
	Module    string     `json:"module"`
	Nodes     []NodeInfo `json:"nodes"`
	Edges     []EdgeInfo `json:"edges"`
}

// WireResult reports the outcome of a connect or disconnect.
type WireResult struct {
	SessionID string `json:"session_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Connected bool   `json:"connected" jsonschema_description:"true after connect, false after disconnect"`
}

// ProblemInfo is one connection that no longer resolves.
type ProblemInfo struct {
	Node   string `json:"node"`
	Pin    string `json:"pin"`
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// CheckResult reports whether the session graph is closed.
type CheckResult struct {
	SessionID string        `json:"session_id"`
	OK        bool          `json:"ok"`
	Problems  []ProblemInfo `json:"problems"`
}

// EvalResult carries the values produced by one full evaluation pass.
type EvalResult struct {
	SessionID string         `json:"session_id"`
	Values    map[string]any `json:"values" jsonschema_description:"Produced values keyed by node.pin"`
}

// ScriptResult carries a generated editor script.
type ScriptResult struct {
	Module string `json:"module"`
	Script string `json:"script" jsonschema_description:"JavaScript that registers the module's node types with LiteGraph"`
}

// ModuleInfo summarizes an installed module.
type ModuleInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Types int    `json:"types"`
}

type createSessionArgs struct {
	Module string `mapstructure:"module"`
}

type sessionArgs struct {
	SessionID string `mapstructure:"session_id"`
}

type moduleArgs struct {
	Module string `mapstructure:"module"`
}

type createNodeArgs struct {
	SessionID string         `mapstructure:"session_id"`
	NodeID    string         `mapstructure:"node_id"`
	Type      string         `mapstructure:"type"`
	Params    map[string]any `mapstructure:"params"`
}

type wireArgs struct {
	SessionID string `mapstructure:"session_id"`
	From      string `mapstructure:"from"`
	To        string `mapstructure:"to"`
}

func decodeArgs(args map[string]any, out any) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	// TOOL: create_session
	createSession := mcp.NewTool("create_session",
		mcp.WithDescription("Open a new graph editing session for a module. Returns the session ID used by all other graph tools."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module name, e.g. \"math\"")),
		mcp.WithOutputSchema[SessionInfo](),
	)
	s.mcpServer.AddTool(createSession, mcp.NewStructuredToolHandler(s.handleCreateSession))

	// TOOL: list_sessions
	listSessions := mcp.NewTool("list_sessions",
		mcp.WithDescription("List all live editing sessions."),
		mcp.WithOutputSchema[SessionList](),
	)
	s.mcpServer.AddTool(listSessions, mcp.NewStructuredToolHandler(s.handleListSessions))

	// TOOL: delete_session
	s.mcpServer.AddTool(mcp.NewTool("delete_session",
		mcp.WithDescription("Discard an editing session and its graph."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session to discard")),
	), s.handleDeleteSession)

	// TOOL: list_types
	listTypes := mcp.NewTool("list_types",
		mcp.WithDescription("List the node types a module offers, with their properties."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module name")),
		mcp.WithOutputSchema[TypeList](),
	)
	s.mcpServer.AddTool(listTypes, mcp.NewStructuredToolHandler(s.handleListTypes))

	// TOOL: create_node
	createNode := mcp.NewTool("create_node",
		mcp.WithDescription("Create a node instance in a session graph. Properties not overridden in params keep their defaults."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Instance ID, unique within the graph")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Node type ID from list_types")),
		mcp.WithObject("params", mcp.Description("Property overrides keyed by property name")),
		mcp.WithOutputSchema[NodeInfo](),
	)
	s.mcpServer.AddTool(createNode, mcp.NewStructuredToolHandler(s.handleCreateNode))

	// TOOL: connect_pins
	connectPins := mcp.NewTool("connect_pins",
		mcp.WithDescription("Connect an output pin to an input pin. Both ends are node.pin references."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Source endpoint, e.g. \"v1.out\"")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Destination endpoint, e.g. \"a1.a\"")),
		mcp.WithOutputSchema[WireResult](),
	)
	s.mcpServer.AddTool(connectPins, mcp.NewStructuredToolHandler(s.handleConnectPins))

	// TOOL: disconnect_pins
	disconnectPins := mcp.NewTool("disconnect_pins",
		mcp.WithDescription("Remove the connection between an output pin and an input pin."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Source endpoint, e.g. \"v1.out\"")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Destination endpoint, e.g. \"a1.a\"")),
		mcp.WithOutputSchema[WireResult](),
	)
	s.mcpServer.AddTool(disconnectPins, mcp.NewStructuredToolHandler(s.handleDisconnectPins))

	// TOOL: get_graph
	getGraph := mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full session graph for introspection: nodes, properties, pins, and edges."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithOutputSchema[GraphInfo](),
	)
	s.mcpServer.AddTool(getGraph, mcp.NewStructuredToolHandler(s.handleGetGraph))

	// TOOL: check_graph
	checkGraph := mcp.NewTool("check_graph",
		mcp.WithDescription("Verify that every connection in the session graph still resolves to a present node and pin."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithOutputSchema[CheckResult](),
	)
	s.mcpServer.AddTool(checkGraph, mcp.NewStructuredToolHandler(s.handleCheckGraph))

	// TOOL: evaluate
	evaluate := mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate the session graph in dependency order and return every produced value."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Target session")),
		mcp.WithOutputSchema[EvalResult](),
	)
	s.mcpServer.AddTool(evaluate, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: generate_script
	generateScript := mcp.NewTool("generate_script",
		mcp.WithDescription("Generate the LiteGraph editor script that registers a module's node types."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module name")),
		mcp.WithOutputSchema[ScriptResult](),
	)
	s.mcpServer.AddTool(generateScript, mcp.NewStructuredToolHandler(s.handleGenerateScript))
}

// Handler methods for structured tools

func (s *Server) handleCreateSession(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SessionInfo, error) {
	var in createSessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return SessionInfo{}, err
	}

	if _, err := s.engine.Catalog(in.Module); err != nil {
		return SessionInfo{}, err
	}

	sess, err := s.store.Create(ctx, in.Module)
	if err != nil {
		return SessionInfo{}, err
	}

	s.logger.Info("session opened", "session", sess.ID, "module", sess.Module)
	return SessionInfo{SessionID: sess.ID, Module: sess.Module}, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("session_id", "")
	if err := s.store.Delete(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("session closed", "session", id)
	return mcp.NewToolResultText(fmt.Sprintf("session %s closed", id)), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SessionList, error) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return SessionList{}, err
	}

	out := SessionList{Sessions: make([]SessionInfo, 0, len(sessions))}
	for _, sess := range sessions {
		out.Sessions = append(out.Sessions, SessionInfo{
			SessionID: sess.ID,
			Module:    sess.Module,
			Nodes:     sess.Graph.Len(),
		})
	}
	return out, nil
}

func (s *Server) handleListTypes(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (TypeList, error) {
	var in moduleArgs
	if err := decodeArgs(args, &in); err != nil {
		return TypeList{}, err
	}

	cat, err := s.engine.Catalog(in.Module)
	if err != nil {
		return TypeList{}, err
	}

	out := TypeList{Module: in.Module}
	for _, nt := range cat.Types() {
		info := TypeInfo{
			ID:   nt.ID(),
			Name: nt.Name(),
			Path: nt.Path(),
		}
		for _, spec := range nt.Properties() {
			info.Properties = append(info.Properties, propertyInfo(spec))
		}
		out.Types = append(out.Types, info)
	}
	return out, nil
}

func (s *Server) handleCreateNode(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (NodeInfo, error) {
	var in createNodeArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeInfo{}, err
	}

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return NodeInfo{}, err
	}
	cat, err := s.engine.Catalog(sess.Module)
	if err != nil {
		return NodeInfo{}, err
	}
	nt, ok := cat.Type(in.Type)
	if !ok {
		return NodeInfo{}, fmt.Errorf("unknown type %q in module %q", in.Type, sess.Module)
	}

	params, err := externalParams(nt, in.Params)
	if err != nil {
		return NodeInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := nt.Create(in.NodeID, params, nil)
	if err != nil {
		return NodeInfo{}, err
	}
	if err := sess.Graph.Add(n); err != nil {
		return NodeInfo{}, err
	}

	s.logger.Debug("node created", "session", sess.ID, "node", n.ID(), "type", in.Type)
	return nodeInfo(n), nil
}

func (s *Server) handleConnectPins(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (WireResult, error) {
	return s.wire(ctx, args, true)
}

func (s *Server) handleDisconnectPins(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (WireResult, error) {
	return s.wire(ctx, args, false)
}

func (s *Server) wire(ctx context.Context, args map[string]any, connect bool) (WireResult, error) {
	var in wireArgs
	if err := decodeArgs(args, &in); err != nil {
		return WireResult{}, err
	}

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return WireResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := sess.Graph.Endpoint(in.From)
	if err != nil {
		return WireResult{}, err
	}
	dst, err := sess.Graph.Endpoint(in.To)
	if err != nil {
		return WireResult{}, err
	}

	if connect {
		err = domain.Connect(src, dst)
	} else {
		err = domain.Disconnect(src, dst)
	}
	if err != nil {
		return WireResult{}, err
	}

	return WireResult{
		SessionID: sess.ID,
		From:      in.From,
		To:        in.To,
		Connected: connect,
	}, nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (GraphInfo, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return GraphInfo{}, err
	}

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return GraphInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return graphInfo(sess), nil
}

func (s *Server) handleCheckGraph(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (CheckResult, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return CheckResult{}, err
	}

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return CheckResult{}, err
	}

	s.mu.Lock()
	problems := validator.Check(sess.Graph)
	s.mu.Unlock()

	result := CheckResult{
		SessionID: sess.ID,
		OK:        len(problems) == 0,
		Problems:  []ProblemInfo{},
	}
	for _, p := range problems {
		result.Problems = append(result.Problems, ProblemInfo{
			Node:   p.Node,
			Pin:    p.Pin,
			Target: p.Target,
			Reason: p.Reason,
		})
	}
	return result, nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (EvalResult, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return EvalResult{}, err
	}

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return EvalResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.engine.Evaluate(sess.Module, sess.Graph)
	if err != nil {
		return EvalResult{}, err
	}

	out := EvalResult{SessionID: sess.ID, Values: make(map[string]any, len(values))}
	for ref, v := range values {
		out.Values[ref.String()] = v
	}
	return out, nil
}

func (s *Server) handleGenerateScript(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ScriptResult, error) {
	var in moduleArgs
	if err := decodeArgs(args, &in); err != nil {
		return ScriptResult{}, err
	}

	script, err := s.engine.GenerateScript(in.Module)
	if err != nil {
		return ScriptResult{}, err
	}
	return ScriptResult{Module: in.Module, Script: script}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: graft://modules
	s.mcpServer.AddResource(mcp.NewResource("graft://modules", "Installed Modules",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		mods := s.engine.Modules()
		infos := make([]ModuleInfo, 0, len(mods))
		for _, m := range mods {
			cat, err := s.engine.Catalog(m.Name())
			if err != nil {
				return nil, fmt.Errorf("catalog for %s: %w", m.Name(), err)
			}
			infos = append(infos, ModuleInfo{Name: m.Name(), Title: m.Title(), Types: cat.Len()})
		}
		jsonBytes, _ := json.Marshal(infos)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "graft://modules",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// externalParams runs each supplied override through its property's
// FromExternal so JSON numbers and strings land as in-memory values.
// Names the type does not declare pass through untouched; node creation
// ignores them.
func externalParams(nt *domain.NodeType, params map[string]any) (map[string]any, error) {
	if len(params) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(params))
	for name, raw := range params {
		prop, ok := nt.Property(name)
		if !ok {
			out[name] = raw
			continue
		}
		v, err := prop.FromExternal(raw)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func propertyInfo(spec domain.PropertySpec) PropertyInfo {
	info := PropertyInfo{
		Name:    spec.Name,
		Kind:    spec.Property.Name(),
		Default: spec.Property.ToExternal(spec.Property.Default()),
	}
	if c, ok := spec.Property.(*schema.ChoicesProperty); ok {
		info.Choices = c.Choices()
	}
	return info
}

func pinInfo(p domain.Pin) PinInfo {
	return PinInfo{
		ID:        p.ID,
		Name:      p.Name,
		Direction: string(p.Direction),
		Type:      p.Type.ID(),
	}
}

func nodeInfo(n *domain.Node) NodeInfo {
	info := NodeInfo{
		ID:   n.ID(),
		Type: n.Type().ID(),
	}
	specs := n.Type().Properties()
	if len(specs) > 0 {
		info.Properties = make(map[string]any, len(specs))
		for _, spec := range specs {
			if v, ok := n.Value(spec.Name); ok {
				info.Properties[spec.Name] = spec.Property.ToExternal(v)
			}
		}
	}
	for _, p := range n.InputPins() {
		info.Inputs = append(info.Inputs, pinInfo(p))
	}
	for _, p := range n.OutputPins() {
		info.Outputs = append(info.Outputs, pinInfo(p))
	}
	return info
}

func graphInfo(sess *ports.Session) GraphInfo {
	info := GraphInfo{
		SessionID: sess.ID,
		Module:    sess.Module,
		Nodes:     make([]NodeInfo, 0, sess.Graph.Len()),
		Edges:     []EdgeInfo{},
	}
	for _, n := range sess.Graph.Nodes() {
		info.Nodes = append(info.Nodes, nodeInfo(n))
		for _, p := range n.OutputPins() {
			for _, ref := range n.Connections(p.ID) {
				info.Edges = append(info.Edges, EdgeInfo{
					From: domain.ConnRef{NodeID: n.ID(), PinID: p.ID}.String(),
					To:   ref.String(),
				})
			}
		}
	}
	return info
}
