package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verdier/homey-mcp-server/pkg/api/types"
	"github.com/Verdier/homey-mcp-server/pkg/mcp"
)

// RPCHandler delivers JSON-RPC request bodies to the dispatcher.
type RPCHandler struct {
	server *mcp.Server
}

// NewRPCHandler creates a new RPC handler.
func NewRPCHandler(server *mcp.Server) *RPCHandler {
	return &RPCHandler{server: server}
}

// Handle handles POST /rpc. The dispatcher never fails on a valid envelope;
// only an unreadable body yields an HTTP-level error. Error responses still
// return HTTP 200 with a JSON-RPC error object, per JSON-RPC-over-HTTP
// convention.
func (h *RPCHandler) Handle(c *gin.Context) {
	var req mcp.Request
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "request body is not a valid JSON-RPC request: " + err.Error(),
		})
		return
	}

	resp := h.server.HandleRequest(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
