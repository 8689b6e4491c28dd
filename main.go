package main

import (
	"context"
	"fmt"
	"os"

	"github.com/billfold/billfold/internal/cli"
	"github.com/billfold/billfold/internal/config"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		// Keep stdout clean for command output.
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)
}

func main() {
	cfg, err := config.Load("./config/billfold.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	cmd, err := cli.Parse(os.Args[1:], cfg.Database.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := cli.Run(context.Background(), cmd, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
