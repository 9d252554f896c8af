package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/pkg/dbmigrate"
)

func main() {
	var direction string
	flag.StringVar(&direction, "direction", "up", "migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	switch direction {
	case "up":
		if err := dbmigrate.Up(dsn); err != nil {
			fmt.Fprintf(os.Stderr, "migrate up failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations applied")
	case "down":
		if err := dbmigrate.Down(dsn); err != nil {
			fmt.Fprintf(os.Stderr, "migrate down failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations rolled back")
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", direction)
		os.Exit(1)
	}
}
