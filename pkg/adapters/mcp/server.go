package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/aretw0/clifford/pkg/ports"
	"github.com/aretw0/clifford/pkg/tableau"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MaxQubits bounds the register size accepted by sample_clifford.
const MaxQubits = 128

// RunResponse is the structured result of every circuit-producing tool.
type RunResponse struct {
	ID     string          `json:"id" jsonschema_description:"Run identifier"`
	Qubits int             `json:"qubits" jsonschema_description:"Register width"`
	Rows   []string        `json:"rows" jsonschema_description:"Input operators, one string per row"`
	Final  []string        `json:"final,omitempty" jsonschema_description:"Operators after the circuit (sweep_pair only)"`
	Gates  []string        `json:"gates" jsonschema_description:"Gates in application order, e.g. CNot(0, 1)"`
	Rounds []tableau.Round `json:"rounds,omitempty" jsonschema_description:"Gate index range produced for each qubit"`
}

// OperatorResponse describes a parsed Pauli operator.
type OperatorResponse struct {
	Operator string `json:"operator" jsonschema_description:"Normalized operator text"`
	Negative bool   `json:"negative" jsonschema_description:"True when the sign is -"`
	Pattern  string `json:"pattern" jsonschema_description:"Unit letters without the sign"`
	Weight   int    `json:"weight" jsonschema_description:"Number of non-identity units"`
	Bits     string `json:"bits" jsonschema_description:"Symplectic X and Z bit rows"`
}

// Engine defines the part of clifford.Sampler the MCP server needs.
type Engine interface {
	Sample(ctx context.Context, n int) (*domain.Run, error)
	Canonicalize(ctx context.Context, rows []string) (*domain.Run, error)
	Figure5(ctx context.Context) (*domain.Run, error)
	SweepPair(ctx context.Context, a, b string) (*domain.Run, error)
}

// Server wraps the sampler and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	store     ports.RunStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

type Option func(*Server)

// WithLogger sets the logger for transport events. Stdio servers must not
// log to stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance. store may be nil.
func NewServer(engine Engine, store ports.RunStore, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		store:     store,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("clifford-mcp", strings.TrimSpace(clifford.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	s.logger.Info("MCP Server listening (SSE)", "address", addr)
	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
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

func (s *Server) registerTools() {
	sampleTool := mcp.NewTool("sample_clifford",
		mcp.WithDescription("Sample a uniformly random n-qubit Clifford circuit built from Hadamard, Phase, CNot and Swap gates."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Number of qubits (1 or more)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(sampleTool, mcp.NewStructuredToolHandler(s.handleSample))

	sweepTool := mcp.NewTool("sweep_pair",
		mcp.WithDescription("Find gates mapping an anticommuting Pauli pair (a, b) to X and Z on qubit 0."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First operator, e.g. +XYYX")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second operator of the same length, e.g. +YYYX")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(sweepTool, mcp.NewStructuredToolHandler(s.handleSweepPair))

	canonTool := mcp.NewTool("canonicalize",
		mcp.WithDescription("Reduce explicit row pairs of lengths n, n-1, ... to a circuit."),
		mcp.WithString("rows", mcp.Required(), mcp.Description("JSON array of operator strings")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(canonTool, mcp.NewStructuredToolHandler(s.handleCanonicalize))

	parseTool := mcp.NewTool("parse_operator",
		mcp.WithDescription("Parse a signed Pauli string and show its symplectic bits."),
		mcp.WithString("operator", mcp.Required(), mcp.Description("Operator text, e.g. -XIZY")),
		mcp.WithOutputSchema[OperatorResponse](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParseOperator))

	s.mcpServer.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Fetch a stored run by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Run ID")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if s.store == nil {
			return mcp.NewToolResultError("run storage is disabled"), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		run, err := s.store.Load(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(run)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleSample(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	f, ok := args["n"].(float64)
	if !ok || f != float64(int(f)) {
		return RunResponse{}, fmt.Errorf("n must be an integer")
	}
	n := int(f)
	if n > MaxQubits {
		return RunResponse{}, fmt.Errorf("n must be at most %d", MaxQubits)
	}

	run, err := s.engine.Sample(ctx, n)
	if err != nil {
		return RunResponse{}, fmt.Errorf("sample failed: %w", err)
	}
	return toResponse(run), nil
}

func (s *Server) handleSweepPair(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	a, _ := args["a"].(string)
	b, _ := args["b"].(string)

	run, err := s.engine.SweepPair(ctx, a, b)
	if err != nil {
		return RunResponse{}, fmt.Errorf("sweep failed: %w", err)
	}
	return toResponse(run), nil
}

func (s *Server) handleCanonicalize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	raw, _ := args["rows"].(string)
	var rows []string
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return RunResponse{}, fmt.Errorf("rows must be a JSON array of strings: %w", err)
	}

	run, err := s.engine.Canonicalize(ctx, rows)
	if err != nil {
		return RunResponse{}, fmt.Errorf("canonicalize failed: %w", err)
	}
	return toResponse(run), nil
}

func (s *Server) handleParseOperator(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (OperatorResponse, error) {
	text, _ := args["operator"].(string)
	op, err := pauli.Parse(strings.TrimSpace(text))
	if err != nil {
		return OperatorResponse{}, err
	}
	return OperatorResponse{
		Operator: op.String(),
		Negative: op.Sign,
		Pattern:  op.Pattern(),
		Weight:   op.Weight(),
		Bits:     op.Debug(),
	}, nil
}

func toResponse(run *domain.Run) RunResponse {
	gates := make([]string, len(run.Circuit.Gates))
	for i, g := range run.Circuit.Gates {
		gates[i] = g.String()
	}
	return RunResponse{
		ID:     run.ID,
		Qubits: run.Qubits,
		Rows:   run.Rows,
		Final:  run.Final,
		Gates:  gates,
		Rounds: run.Rounds,
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("clifford://figure5", "Figure 5 worked example",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(tableau.Figure5Rows)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "clifford://figure5",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
