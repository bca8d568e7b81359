package mcpserver

import (
	"context"
	stdlog "log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"stockmcp/internal/stock"
)

const (
	serverName    = "stock-mcp"
	serverVersion = "1.0.0"
)

// Server wires the stock request handler into an MCP server: two
// resource templates, two tools, and three guidance prompts, all served
// over stdio. One request is dispatched at a time by the protocol
// runtime; the handler itself is stateless.
type Server struct {
	handler *stock.Handler
	log     *logrus.Logger
	mcp     *server.MCPServer
}

func New(handler *stock.Handler, log *logrus.Logger) *Server {
	s := &Server{
		handler: handler,
		log:     log,
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithResourceCapabilities(false, true),
			server.WithPromptCapabilities(true),
			server.WithToolCapabilities(false),
		),
	}
	s.registerResources()
	s.registerTools()
	s.registerPrompts()
	return s
}

// ServeStdio blocks until the client disconnects or the process is
// interrupted. Protocol-level errors are logged to stderr so they never
// mix with the stdout channel.
func (s *Server) ServeStdio() error {
	errLog := stdlog.New(s.log.WriterLevel(logrus.ErrorLevel), "", 0)
	return server.ServeStdio(s.mcp, server.WithErrorLogger(errLog))
}

func (s *Server) registerResources() {
	current := mcp.NewResourceTemplate(
		"stock://{symbol}",
		"Current stock price",
		mcp.WithTemplateDescription("Current price, change and day statistics for a stock symbol"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
	s.mcp.AddResourceTemplate(current, s.readStock)

	historical := mcp.NewResourceTemplate(
		"stock://{symbol}/closingdate/{date}",
		"Historical closing price",
		mcp.WithTemplateDescription("End-of-day bar for a stock symbol on a YYYY-MM-DD date"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
	s.mcp.AddResourceTemplate(historical, s.readStock)
}

// readStock serves both resource forms; the URI decides which fetch
// runs.
func (s *Server) readStock(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.log.Infof("Resource call: %s", req.Params.URI)

	symbol, date, err := ParseStockURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	var text string
	if date == "" {
		text = s.handler.FetchCurrent(ctx, symbol)
	} else {
		text = s.handler.FetchHistorical(ctx, symbol, date)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

func (s *Server) registerTools() {
	current := mcp.NewTool("get_current_stock_price",
		mcp.WithDescription("Get current stock price with change information"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g. 'AAPL', 'MSFT', 'GOOGL')"),
		),
	)
	s.mcp.AddTool(current, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := req.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.log.Infof("Tool call: get_current_stock_price for %s", symbol)
		return mcp.NewToolResultText(s.handler.FetchCurrent(ctx, symbol)), nil
	})

	historical := mcp.NewTool("get_historical_stock_price",
		mcp.WithDescription("Get historical closing price for a specific date"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g. 'AAPL', 'MSFT', 'GOOGL')"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date in YYYY-MM-DD format (e.g. '2024-01-15')"),
		),
	)
	s.mcp.AddTool(historical, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := req.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		date, err := req.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.log.Infof("Tool call: get_historical_stock_price for %s on %s", symbol, date)
		return mcp.NewToolResultText(s.handler.FetchHistorical(ctx, symbol, date)), nil
	})
}

func (s *Server) registerPrompts() {
	current := mcp.NewPrompt("stock_current_price",
		mcp.WithPromptDescription("Guide for current stock prices"),
		mcp.WithArgument("symbol",
			mcp.ArgumentDescription("Stock symbol (e.g. 'AAPL', 'GOOGL', 'MSFT')"),
			mcp.RequiredArgument(),
		),
	)
	s.mcp.AddPrompt(current, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		symbol := req.Params.Arguments["symbol"]
		return mcp.NewGetPromptResult("Guide for current stock prices", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(stock.CurrentPricePrompt(symbol))),
		}), nil
	})

	historical := mcp.NewPrompt("stock_historical_price",
		mcp.WithPromptDescription("Guide for historical stock prices"),
		mcp.WithArgument("symbol",
			mcp.ArgumentDescription("Stock symbol (e.g. 'AAPL', 'GOOGL', 'MSFT')"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("date",
			mcp.ArgumentDescription("Date in YYYY-MM-DD format"),
			mcp.RequiredArgument(),
		),
	)
	s.mcp.AddPrompt(historical, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		symbol := req.Params.Arguments["symbol"]
		date := req.Params.Arguments["date"]
		return mcp.NewGetPromptResult("Guide for historical stock prices", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(stock.HistoricalPricePrompt(symbol, date))),
		}), nil
	})

	guide := mcp.NewPrompt("stock_usage_guide",
		mcp.WithPromptDescription("Complete usage instructions"),
	)
	s.mcp.AddPrompt(guide, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult("Complete usage instructions", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(stock.UsageGuidePrompt())),
		}), nil
	})
}
