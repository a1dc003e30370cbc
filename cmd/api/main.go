package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avdivo/nearest-bus/internal/appconf"
)

func main() {
	var (
		configPath string
		port       int
		dbPath     string
		envName    string
	)
	flag.StringVar(&configPath, "config", "", "path to YAML config file")
	flag.IntVar(&port, "port", 0, "HTTP listen port (overrides config)")
	flag.StringVar(&dbPath, "db", "", "path to the schedule SQLite database (overrides config)")
	flag.StringVar(&envName, "env", "", "environment: development|test|production (overrides config)")
	flag.Parse()

	cfg := appconf.Default()
	if configPath != "" {
		loaded, err := appconf.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if port != 0 {
		cfg.Port = port
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if envName != "" {
		env, err := appconf.EnvironmentFromString(envName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg.Env = env
	}
	if err := appconf.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	coreApp, err := BuildApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building application: %v\n", err)
		os.Exit(1)
	}

	srv := CreateServer(coreApp)
	if err := Run(context.Background(), srv, coreApp); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
