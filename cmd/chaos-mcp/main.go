package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ratel-online/chaos/broker"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/config"
	"github.com/ratel-online/chaos/database"
	chaosmcp "github.com/ratel-online/chaos/mcp"
	"github.com/ratel-online/core/log"
)

func main() {
	// stdout belongs to the protocol, everything else logs to stderr.
	out := os.Stdout
	os.Stdout = os.Stderr

	path := flag.String("config", "chaos.yaml", "path to the YAML config file")
	flag.Parse()

	c, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	color.Plain(true)
	database.SetThinkDelay(c.ThinkDelay)
	database.SetTableTTL(c.TableTTL)
	if c.NatsURL != "" {
		publisher, err := broker.Connect(c.NatsURL)
		if err != nil {
			log.Errorf("NATS unavailable, events will not be published: %v\n", err)
		} else {
			defer publisher.Close()
			database.OnTableCreated(publisher.Attach)
		}
	}

	s := server.NewMCPServer("chaos-cards", "1.0.0")
	chaosmcp.RegisterTools(s)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.NewStdioServer(s).Listen(ctx, os.Stdin, out); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
