package main

import (
	"flag"
	"fmt"

	"github.com/ratel-online/chaos/broker"
	"github.com/ratel-online/chaos/config"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/chaos/network"
	"github.com/ratel-online/chaos/service"
	stategame "github.com/ratel-online/chaos/state/game"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	path := flag.String("config", "chaos.yaml", "path to the YAML config file")
	flag.Parse()

	c, err := config.Load(*path)
	if err != nil {
		log.Error(err)
		return
	}
	database.SetThinkDelay(c.ThinkDelay)
	database.SetTableTTL(c.TableTTL)
	stategame.SetPlayTimeout(c.PlayTimeout)

	if c.NatsURL != "" {
		publisher, err := broker.Connect(c.NatsURL)
		if err != nil {
			log.Errorf("NATS unavailable, events will not be published: %v\n", err)
		} else {
			defer publisher.Close()
			database.OnTableCreated(publisher.Attach)
		}
	}

	if c.WsAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(c.WsAddr).Serve())
		})
	}
	if c.HttpAddr != "" {
		async.Async(func() {
			log.Infof("HTTP server listening on %s\n", c.HttpAddr)
			log.Error(service.SetupRouter().Run(c.HttpAddr))
		})
	}
	log.Error(network.NewTcpServer(c.TcpAddr).Serve())
}
