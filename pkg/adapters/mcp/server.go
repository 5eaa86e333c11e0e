package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/presentation/graph"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/grammar"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefinitionsURI is the resource listing stored definition names.
const DefinitionsURI = "chomsky://definitions"

// ClassifyResponse is the structured result of classify_grammar.
type ClassifyResponse struct {
	Type        string           `json:"type" jsonschema_description:"Compact class, e.g. type3"`
	Description string           `json:"description" jsonschema_description:"Human readable class"`
	Analysis    grammar.Analysis `json:"analysis" jsonschema_description:"Shape checks behind the class"`
}

// AcceptsResponse is the structured result of accepts.
type AcceptsResponse struct {
	Results []chomsky.AcceptResult `json:"results"`
}

// GenerateResponse is the structured result of generate.
type GenerateResponse struct {
	Strings []string `json:"strings"`
}

// Server exposes a Toolkit as an MCP server.
type Server struct {
	toolkit   *chomsky.Toolkit
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(tk *chomsky.Toolkit) *Server {
	s := &Server{
		toolkit:   tk,
		mcpServer: server.NewMCPServer("chomsky-mcp", strings.TrimSpace(chomsky.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves on the given port using SSE until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.toolkit.Logger().Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func definitionArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("definition", mcp.Description("Definition document (YAML or JSON). Takes precedence over name.")),
		mcp.WithString("name", mcp.Description("Name of a stored definition")),
	}
}

func tool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := append([]mcp.ToolOption{mcp.WithDescription(description)}, definitionArgs()...)
	return mcp.NewTool(name, append(all, opts...)...)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(tool("classify_grammar",
		"Place a grammar in the Chomsky hierarchy.",
		mcp.WithOutputSchema[ClassifyResponse](),
	), mcp.NewStructuredToolHandler(s.handleClassify))

	s.mcpServer.AddTool(tool("check_determinism",
		"Report whether an automaton is deterministic and list the conflicting transitions.",
		mcp.WithOutputSchema[chomsky.DeterminismReport](),
	), mcp.NewStructuredToolHandler(s.handleCheckDeterminism))

	s.mcpServer.AddTool(tool("determinize",
		"Convert an automaton into an equivalent deterministic one (subset construction).",
		mcp.WithOutputSchema[schema.Definition](),
	), mcp.NewStructuredToolHandler(s.handleDeterminize))

	s.mcpServer.AddTool(tool("accepts",
		"Run input strings through an automaton.",
		mcp.WithString("inputs", mcp.Required(), mcp.Description("JSON array of input strings")),
		mcp.WithOutputSchema[AcceptsResponse](),
	), mcp.NewStructuredToolHandler(s.handleAccepts))

	s.mcpServer.AddTool(tool("automaton_to_grammar",
		"Convert an automaton into a right-linear grammar.",
		mcp.WithOutputSchema[schema.Definition](),
	), mcp.NewStructuredToolHandler(s.handleToGrammar))

	s.mcpServer.AddTool(tool("grammar_to_automaton",
		"Convert a right-linear grammar into an automaton.",
		mcp.WithOutputSchema[schema.Definition](),
	), mcp.NewStructuredToolHandler(s.handleToAutomaton))

	s.mcpServer.AddTool(tool("generate",
		"Derive strings from a grammar.",
		mcp.WithNumber("count", mcp.Description("How many strings to derive (default 10)")),
		mcp.WithNumber("seed", mcp.Description("Random seed (default 0)")),
		mcp.WithOutputSchema[GenerateResponse](),
	), mcp.NewStructuredToolHandler(s.handleGenerate))

	s.mcpServer.AddTool(tool("render_mermaid",
		"Render an automaton as a Mermaid state diagram.",
		mcp.WithString("input", mcp.Description("Highlight the states visited while reading this input")),
	), s.handleRenderMermaid)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(DefinitionsURI, "Stored Definitions",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.toolkit.Store().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list definitions: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      DefinitionsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// resolve reads the definition argument, falling back to a stored name.
func (s *Server) resolve(ctx context.Context, args map[string]interface{}) (*schema.Definition, error) {
	if doc, _ := args["definition"].(string); strings.TrimSpace(doc) != "" {
		return schema.Decode([]byte(doc), schema.FormatYAML)
	}
	if name, _ := args["name"].(string); name != "" {
		return s.toolkit.Store().Load(ctx, name)
	}
	return nil, errors.New("either definition or name is required")
}

func (s *Server) automaton(ctx context.Context, args map[string]interface{}) (*domain.Automaton, error) {
	def, err := s.resolve(ctx, args)
	if err != nil {
		return nil, err
	}
	return def.BuildAutomaton()
}

func (s *Server) grammar(ctx context.Context, args map[string]interface{}) (*domain.Grammar, error) {
	def, err := s.resolve(ctx, args)
	if err != nil {
		return nil, err
	}
	return def.BuildGrammar()
}

func resultName(args map[string]interface{}, suffix string) string {
	if name, _ := args["name"].(string); name != "" {
		return name + "-" + suffix
	}
	return suffix
}

func (s *Server) handleClassify(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClassifyResponse, error) {
	g, err := s.grammar(ctx, args)
	if err != nil {
		return ClassifyResponse{}, err
	}
	analysis := s.toolkit.Classify(ctx, g)
	return ClassifyResponse{
		Type:        analysis.Type().Short(),
		Description: analysis.Type().String(),
		Analysis:    analysis,
	}, nil
}

func (s *Server) handleCheckDeterminism(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (chomsky.DeterminismReport, error) {
	a, err := s.automaton(ctx, args)
	if err != nil {
		return chomsky.DeterminismReport{}, err
	}
	return s.toolkit.CheckDeterminism(ctx, a), nil
}

func (s *Server) handleDeterminize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Definition, error) {
	a, err := s.automaton(ctx, args)
	if err != nil {
		return schema.Definition{}, err
	}
	dfa, err := s.toolkit.Determinize(ctx, a)
	if err != nil {
		return schema.Definition{}, err
	}
	return *schema.FromAutomaton(resultName(args, "dfa"), dfa), nil
}

func (s *Server) handleAccepts(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AcceptsResponse, error) {
	var inputs []string
	raw, _ := args["inputs"].(string)
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		return AcceptsResponse{}, fmt.Errorf("inputs must be a JSON array of strings: %w", err)
	}
	a, err := s.automaton(ctx, args)
	if err != nil {
		return AcceptsResponse{}, err
	}
	return AcceptsResponse{Results: s.toolkit.Accepts(ctx, a, inputs...)}, nil
}

func (s *Server) handleToGrammar(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Definition, error) {
	a, err := s.automaton(ctx, args)
	if err != nil {
		return schema.Definition{}, err
	}
	g, err := s.toolkit.ToGrammar(ctx, a)
	if err != nil {
		return schema.Definition{}, err
	}
	return *schema.FromGrammar(resultName(args, "grammar"), g), nil
}

func (s *Server) handleToAutomaton(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Definition, error) {
	g, err := s.grammar(ctx, args)
	if err != nil {
		return schema.Definition{}, err
	}
	a, err := s.toolkit.ToAutomaton(ctx, g)
	if err != nil {
		return schema.Definition{}, err
	}
	return *schema.FromAutomaton(resultName(args, "automaton"), a), nil
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	count := 10
	if n, ok := args["count"].(float64); ok {
		count = int(n)
	}
	var seed int64
	if n, ok := args["seed"].(float64); ok {
		seed = int64(n)
	}
	g, err := s.grammar(ctx, args)
	if err != nil {
		return GenerateResponse{}, err
	}
	out, err := s.toolkit.Generate(ctx, g, count, seed)
	if err != nil {
		return GenerateResponse{}, err
	}
	return GenerateResponse{Strings: out}, nil
}

func (s *Server) handleRenderMermaid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	a, err := s.automaton(ctx, args)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	var overlay *graph.Overlay
	if input, ok := args["input"].(string); ok {
		overlay = graph.OverlayFromTrace(automata.Trace(a, input))
	}
	s.toolkit.Logger().DebugContext(ctx, "mermaid rendered", "states", len(a.States()))
	return mcp.NewToolResultText(graph.Mermaid(a, overlay)), nil
}
