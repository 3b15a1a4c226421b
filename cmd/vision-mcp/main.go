package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ironsheep/frame-vision-mcp/internal/config"
	"github.com/ironsheep/frame-vision-mcp/internal/pipeline"
	"github.com/ironsheep/frame-vision-mcp/internal/server"
	"github.com/ironsheep/frame-vision-mcp/internal/telemetry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("frame-vision-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("frame-vision-mcp - MCP server for color target detection")
			fmt.Println()
			fmt.Println("Usage: frame-vision-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Printf("  %s=debug         Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=<file.yaml>       Load pipeline parameters at startup\n", config.EnvParams)
			fmt.Printf("  %s=<addr>      Serve /metrics and /healthz, e.g. :9102\n", config.EnvMetricsAddr)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// A missing .env file is normal
	_ = godotenv.Load()

	env := config.LoadEnvironment()
	if env.Debug() {
		log.Printf("Frame Vision MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	params := pipeline.DefaultParameters()
	if env.ParamsPath != "" {
		p, err := config.LoadFile(env.ParamsPath)
		if err != nil {
			log.Fatalf("Parameters: %v", err)
		}
		params = p
		if env.Debug() {
			log.Printf("Loaded parameters from %s", env.ParamsPath)
		}
	}

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(reg)
	if err != nil {
		log.Fatalf("Metrics: %v", err)
	}
	reporters := pipeline.Reporters{metrics}
	if env.Debug() {
		reporters = append(reporters, telemetry.LogReporter{})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if env.MetricsAddr != "" {
		go func() {
			if err := telemetry.Serve(ctx, env.MetricsAddr, telemetry.NewRouter(reg)); err != nil {
				log.Printf("Metrics server: %v", err)
			}
		}()
	}

	srv := server.New(
		server.WithParameters(config.NewStore(params)),
		server.WithReporter(reporters),
		server.WithDebug(env.Debug()),
	)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
