package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"pinboard/app/config"
	"pinboard/app/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("pinboard version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: pinboard <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the bulletin-board HTTP service. Listens on
             PINBOARD_ADDR (default :8080); posts live in memory unless
             PINBOARD_DB_PATH points at a Badger directory.
`
	fmt.Println(helpText)
}

// serve opens the store and runs the HTTP service.
func serve() {
	cfg := config.Load()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	if cfg.DBPath == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router := routes.SetupRoutes(db)

	log.Printf("Starting pinboard on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
