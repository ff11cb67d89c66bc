package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/joelanford/mcp/workspace-sim/config"
	"github.com/joelanford/mcp/workspace-sim/internal/debug"
	"github.com/joelanford/mcp/workspace-sim/internal/docs"
	"github.com/joelanford/mcp/workspace-sim/internal/slides"
	"github.com/joelanford/mcp/workspace-sim/internal/store"
	"github.com/joelanford/mcp/workspace-sim/tools"
	"github.com/joelanford/mcp/workspace-sim/types"
)

func main() {
	configPath := os.Getenv("WORKSPACE_SIM_CONFIG")
	if configPath == "" {
		configPath = "workspace-sim.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	debug.Enabled = cfg.Debug
	types.SetOutputFormat(cfg.OutputFormat)

	st := store.New()
	if cfg.StorePath != "" {
		if err := st.LoadJSON(cfg.StorePath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			debug.Log("store file %s not found, starting empty", cfg.StorePath)
		}
	}

	s := server.NewMCPServer(
		"Google Workspace Simulation Server",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	// Register Docs tools
	docsTools := tools.NewDocsTools(docs.NewService(st))
	s.AddTool(docsTools.CreateTool(), mcp.NewTypedToolHandler(docsTools.CreateHandler))
	s.AddTool(docsTools.GetTool(), mcp.NewTypedToolHandler(docsTools.GetHandler))
	s.AddTool(docsTools.BatchUpdateTool(), mcp.NewTypedToolHandler(docsTools.BatchUpdateHandler))

	// Register Slides tools
	slidesTools := tools.NewSlidesTools(slides.NewService(st))
	s.AddTool(slidesTools.CreateTool(), mcp.NewTypedToolHandler(slidesTools.CreateHandler))
	s.AddTool(slidesTools.GetTool(), mcp.NewTypedToolHandler(slidesTools.GetHandler))
	s.AddTool(slidesTools.GetPageTool(), mcp.NewTypedToolHandler(slidesTools.GetPageHandler))
	s.AddTool(slidesTools.SummarizeTool(), mcp.NewTypedToolHandler(slidesTools.SummarizeHandler))
	s.AddTool(slidesTools.BatchUpdateTool(), mcp.NewTypedToolHandler(slidesTools.BatchUpdateHandler))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}

	if cfg.StorePath != "" {
		if err := st.SaveJSON(cfg.StorePath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}
