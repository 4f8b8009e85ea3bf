// Command dbserver runs the column-store engine as a standalone UNIX
// socket server: it loads a prior dump on start, serves one client
// connection at a time, and dumps the database back to disk on
// shutdown (SIGINT/SIGTERM).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SteveKekacs/column-store-db/internal/config"
	"github.com/SteveKekacs/column-store-db/internal/dblog"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("dbserver: loading config: %v", err)
	}
	dblog.SetLevel(cfg.LogLevel)

	server, err := NewServer(cfg)
	if err != nil {
		log.Fatalf("dbserver: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	doneCh := make(chan bool, 1)
	go server.Start(ctx, errCh, doneCh)

	select {
	case err := <-errCh:
		log.Fatalf("dbserver: %v", err)
	case <-doneCh:
		dblog.Info("dbserver: shut down cleanly")
	}
}
