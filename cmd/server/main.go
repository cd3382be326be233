package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"

	"pixabaymcp/internal/config"
	"pixabaymcp/internal/handler"
	"pixabaymcp/internal/middleware"
	"pixabaymcp/internal/pixabay"
	"pixabaymcp/internal/tools"
	"pixabaymcp/internal/widget"
)

const serverVersion = "0.1.0"

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging. On stdio, stdout belongs to the
	// protocol, so logs go to a rotating file instead.
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}

	var logWriter io.Writer = os.Stdout
	if cfg.Transport == config.TransportStdio {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logWriter = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"transport", cfg.Transport,
		"version", serverVersion,
	)

	// Create the Pixabay client
	client := pixabay.NewClient(pixabay.ClientConfig{
		APIKey:        cfg.PixabayAPIKey,
		ImageBaseURL:  cfg.PixabayImageBaseURL,
		VideoBaseURL:  cfg.PixabayVideoBaseURL,
		DefaultLocale: cfg.DefaultLocale,
		HTTPClient:    &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:        logger,
	})

	// Load the widget bundle
	descriptor, err := widget.LoadDescriptor()
	if err != nil {
		log.Fatalf("Failed to load widget manifest: %v", err)
	}
	widgetHTML, err := widget.BuildHTML(widget.Assets())
	if err != nil {
		log.Fatalf("Failed to build widget document: %v", err)
	}

	// Assemble the MCP server
	toolset := tools.NewToolset(tools.ToolsetConfig{
		Client:        client,
		Logger:        logger,
		DefaultLocale: cfg.DefaultLocale,
		WidgetURI:     descriptor.URI,
	})
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "pixabay-search",
		Version: serverVersion,
	}, nil)
	tools.RegisterAll(mcpServer, toolset)
	widget.Register(mcpServer, descriptor, widgetHTML)

	logger.Info("tools registered", "widget_uri", descriptor.URI)

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case config.TransportStdio:
		runStdio(ctx, mcpServer, logger)
	case config.TransportHTTP:
		runHTTP(ctx, cfg, mcpServer, toolset, logger)
	}
}

func runStdio(ctx context.Context, server *mcp.Server, logger *slog.Logger) {
	logger.Info("serving on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("server stopped")
}

func runHTTP(ctx context.Context, cfg *config.Config, mcpServer *mcp.Server, toolset *tools.Toolset, logger *slog.Logger) {
	searchHandler := handler.NewSearchHandler(toolset, logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// REST shim for callers that do not speak the tool protocol
	mux.HandleFunc("POST /v1/search/images", searchHandler.SearchImages)
	mux.HandleFunc("POST /v1/search/media", searchHandler.SearchMedia)

	// Tool protocol over streamable HTTP
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil))

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Routes
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Mcp-Session-Id", "MCP-Protocol-Version", "Last-Event-ID"},
		ExposedHeaders:   []string{"Mcp-Session-Id", "X-Request-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived streamable sessions
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
