package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Verdier/homey-mcp-server/pkg/homey"
	"github.com/Verdier/homey-mcp-server/pkg/mcp/schema"
)

// Server is the JSON-RPC request dispatcher. It routes methods, owns the
// static tool registry and delegates tool calls to the capability provider.
type Server struct {
	provider   homey.Provider
	tools      []Tool
	toolIndex  map[string]Tool
	validator  *schema.Validator          // non-nil only in strict-inputs mode
	rawSchemas map[string]json.RawMessage // declared input shapes, strict mode only
}

// Option configures a Server.
type Option func(*Server)

// WithStrictInputs enables validation of tool arguments against the declared
// input schemas before invocation. Off by default; the per-field checks in
// the handlers always run.
func WithStrictInputs(enabled bool) Option {
	return func(s *Server) {
		if enabled {
			s.validator = schema.NewValidator()
		}
	}
}

// NewServer creates a dispatcher backed by the given provider.
func NewServer(provider homey.Provider, opts ...Option) *Server {
	s := &Server{
		provider: provider,
		tools:    toolDefinitions(),
	}
	s.toolIndex = make(map[string]Tool, len(s.tools))
	for _, t := range s.tools {
		s.toolIndex[t.Name] = t
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.validator != nil {
		s.rawSchemas = make(map[string]json.RawMessage, len(s.tools))
		for _, t := range s.tools {
			raw, err := json.Marshal(t.InputSchema)
			if err != nil {
				log.Error().Err(err).Str("tool", t.Name).Msg("failed to encode input schema")
				continue
			}
			s.rawSchemas[t.Name] = raw
		}
	}

	return s
}

var (
	defaultServer *Server
	initOnce      sync.Once
)

// Initialize returns the process-wide dispatcher, constructing it on first
// call. Later calls return the existing instance without re-running setup;
// concurrent callers observe the same instance.
func Initialize(provider homey.Provider, opts ...Option) *Server {
	initOnce.Do(func() {
		defaultServer = NewServer(provider, opts...)
	})
	return defaultServer
}

// HandleRequest routes a single JSON-RPC request and always produces a
// response: any panic during dispatch is converted into an internal error so
// a malformed request can never take the process down.
func (s *Server) HandleRequest(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("method", req.Method).
				Msg("panic during request dispatch")
			resp = s.errorResponse(req.ID, &ToolError{
				Kind:    KindInternal,
				Message: fmt.Sprintf("internal error: %v", r),
			})
		}
	}()

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	default:
		return s.errorResponse(req.ID, &ToolError{
			Kind:    KindProtocol,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		})
	}
}

// handleInitialize returns the fixed protocol version and capability
// advertisement. It never fails.
func (s *Server) handleInitialize(req *Request) *Response {
	return s.resultResponse(req.ID, InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    Capabilities{Tools: ToolCapabilities{}},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: serverVersion,
		},
	})
}

// handleToolsList returns the full registry contents, independent of any
// call arguments.
func (s *Server) handleToolsList(req *Request) *Response {
	return s.resultResponse(req.ID, ToolsListResult{Tools: s.tools})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolsCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return s.errorResponse(req.ID, &ToolError{
				Kind:    KindInternal,
				Message: "invalid tools/call params",
				Cause:   err,
			})
		}
	}

	if params.Name == "" {
		return s.errorResponse(req.ID, NewValidationError("required parameter %q is missing", "name"))
	}

	text, err := s.callTool(ctx, params.Name, params.Arguments)
	if err != nil {
		log.Warn().Err(err).Str("tool", params.Name).Msg("tool call failed")
		return s.errorResponse(req.ID, err)
	}

	return s.resultResponse(req.ID, ToolsCallResult{
		Content: []ToolContent{{Type: "text", Text: text}},
	})
}

// validateInput enforces the declared input shape when strict mode is on.
func (s *Server) validateInput(name string, args map[string]any) error {
	if s.validator == nil {
		return nil
	}
	raw, ok := s.rawSchemas[name]
	if !ok {
		return nil
	}
	if err := s.validator.ValidateArguments(raw, args); err != nil {
		return &ToolError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("invalid arguments for tool %s", name),
			Cause:   err,
		}
	}
	return nil
}

func (s *Server) resultResponse(id any, result any) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Result: result}
}

func (s *Server) errorResponse(id any, err error) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Error: wireError(err)}
}
