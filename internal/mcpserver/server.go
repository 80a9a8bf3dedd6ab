// Package mcpserver exposes the report builders as model-context-protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shuowang-ai/Weather-MCP/internal/report"
)

const (
	serverName    = "knowair-weather"
	serverVersion = "0.6.0"
)

var validate = validator.New()

// coordArgs carries the arguments every tool shares.
type coordArgs struct {
	Lng float64 `validate:"gte=-180,lte=180"`
	Lat float64 `validate:"gte=-90,lte=90"`
}

// Server wires the tool surface to the report service.
type Server struct {
	mcp *server.MCPServer
	svc *report.Service
}

func New(svc *report.Service) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		svc: svc,
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// handle wraps a builder call with per-invocation logging and maps the
// Outcome/error split onto MCP results. Builder failures become tool
// error results, not protocol errors.
func (s *Server) handle(name string, fn func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := uuid.NewString()[:8]
		log.Printf("INFO: [%s] tool %s invoked", id, name)

		out, err := fn(ctx, req)
		if err != nil {
			log.Printf("ERROR: [%s] tool %s failed: %v", id, name, err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		if out.IsUnavailable() {
			log.Printf("INFO: [%s] tool %s: requested data unavailable for location", id, name)
		}
		return mcp.NewToolResultText(out.Text()), nil
	}
}

// Coords extracts and validates the shared lng/lat arguments.
func Coords(req mcp.CallToolRequest) (float64, float64, error) {
	lng, err := req.RequireFloat("lng")
	if err != nil {
		return 0, 0, err
	}
	lat, err := req.RequireFloat("lat")
	if err != nil {
		return 0, 0, err
	}
	if err := ValidateCoords(lng, lat); err != nil {
		return 0, 0, err
	}
	return lng, lat, nil
}

// ValidateCoords enforces the coordinate ranges every tool accepts.
func ValidateCoords(lng, lat float64) error {
	if err := validate.Struct(coordArgs{Lng: lng, Lat: lat}); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return fmt.Errorf("坐标超出有效范围: 经度 ∈ [-180, 180], 纬度 ∈ [-90, 90]")
		}
		return err
	}
	return nil
}
