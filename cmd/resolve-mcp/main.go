// Command resolve-mcp serves the DaVinci Resolve tool surface over MCP on
// stdio, with an optional HTTP API alongside.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host/gateway"
	"github.com/samuelgursky/resolve-tools-mcp/internal/httpapi"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/server"
	"github.com/samuelgursky/resolve-tools-mcp/pkg/mcp"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "resolve-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.NewManager().Load(configPath)
	if err != nil {
		return err
	}
	log := logging.New(&cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridge, err := gateway.Dial(ctx, &cfg.Host, log)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, log, bridge)
	if err != nil {
		_ = bridge.Close()
		return err
	}
	defer srv.Close()

	if listen := cfg.Server.GetHTTPListen(); listen != "" {
		api := httpapi.New(srv, log)
		go func() {
			if err := api.Serve(ctx, listen); err != nil {
				log.Error("http api stopped", err, nil)
			}
		}()
	}

	err = srv.RunMCP(ctx, mcp.NewStdioTransport())
	if err == context.Canceled {
		return nil
	}
	return err
}
