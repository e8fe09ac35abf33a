package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/alexbotov/betfair/internal/api"
	"github.com/alexbotov/betfair/internal/config"
	"github.com/alexbotov/betfair/pkg/aping"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Load()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	client := aping.NewClient(cfg.Exchange.ClientConfig())
	handler := api.New(client)
	router := handler.SetupRouter()
	router.NotFoundHandler = http.HandlerFunc(api.NotFoundHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	fmt.Printf("apid listening on :%s\n", cfg.Server.Port)
	log.Fatal(server.ListenAndServe())
}
