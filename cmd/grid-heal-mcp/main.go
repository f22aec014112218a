package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/grid-heal-mcp/internal/config"
	"github.com/ironsheep/grid-heal-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("grid-heal-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("grid-heal-mcp - MCP server that removes reference grids from plots")
			fmt.Println()
			fmt.Println("Usage: grid-heal-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GRID_HEAL_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  GRID_HEAL_CONFIG=/path/x.json   Grid removal defaults (close_distance,")
			fmt.Println("                                  foreground_color, preview_color,")
			fmt.Println("                                  dark_threshold, min_line_coverage)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	var opts []server.Option
	if os.Getenv("GRID_HEAL_LOG_LEVEL") == "debug" {
		log.Printf("Grid Heal MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("close_distance=%g dark_threshold=%d min_line_coverage=%g",
			cfg.GetCloseDistance(), cfg.GetDarkThreshold(), cfg.GetMinLineCoverage())
		opts = append(opts, server.WithDebugLogger(log.New(os.Stderr, "", log.Ldate|log.Ltime)))
	}

	srv := server.New(cfg, opts...)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
