package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Verdier/homey-mcp-server/pkg/api/handlers"
	"github.com/Verdier/homey-mcp-server/pkg/homey"
	"github.com/Verdier/homey-mcp-server/pkg/mcp"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine   *gin.Engine
	server   *mcp.Server
	provider homey.Provider
}

// NewRouter creates the HTTP transport for the dispatcher.
func NewRouter(server *mcp.Server, provider homey.Provider) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:   engine,
		server:   server,
		provider: provider,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(r.provider)
	r.engine.GET("/health", healthHandler.Health)

	// Single JSON-RPC endpoint: the body carries the method
	rpcHandler := handlers.NewRPCHandler(r.server)
	r.engine.POST("/rpc", rpcHandler.Handle)
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Engine exposes the underlying Gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
