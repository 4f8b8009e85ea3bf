package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/config"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
	"github.com/SteveKekacs/column-store-db/internal/dblog"
	"github.com/SteveKekacs/column-store-db/internal/persist"
	"github.com/SteveKekacs/column-store-db/internal/wire"
)

// RequestHandler executes one already-decoded client request against
// engine and returns the response to send back. The text command
// parser that would produce operators from a query string is out of
// spec scope (spec.md ง5.1); a handler wired to a real parser/executor
// dispatch can be supplied by a caller that builds one, and the
// default here reports every request as unsupported.
type RequestHandler func(engine *catalog.Engine, req wire.Message) wire.Message

func defaultHandler(_ *catalog.Engine, _ wire.Message) wire.Message {
	return wire.Message{Status: dberrors.Fail(dberrors.QueryUnsupported, "no command parser wired")}
}

// Server owns the socket lifecycle: load the dump on start, accept one
// client connection at a time, and dump again on a clean shutdown -
// grounded on server.c's main/handle_client loop and adapted from the
// teacher's services.Server Start(ctx, errCh, doneCh) shape (net.Listen
// switched from "tcp" to "unix").
type Server struct {
	Config  config.Config
	Engine  *catalog.Engine
	Handler RequestHandler
}

// NewServer loads cfg.DumpPath if present, or starts with an empty
// engine otherwise, matching load_server_data's "absent dump means no
// database yet" behavior.
func NewServer(cfg config.Config) (*Server, error) {
	engine := catalog.NewEngine()

	f, err := os.Open(cfg.DumpPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no prior dump; start empty.
	case err != nil:
		return nil, fmt.Errorf("dbserver: opening dump: %w", err)
	default:
		defer f.Close()
		db, cat, err := persist.Load(f)
		if err != nil {
			return nil, fmt.Errorf("dbserver: loading dump: %w", err)
		}
		engine.DB = db
		engine.Catalog = cat
	}

	handler := defaultHandler
	return &Server{Config: cfg, Engine: engine, Handler: handler}, nil
}

// Start listens on Config.SocketPath and serves connections one at a
// time until ctx is cancelled, then dumps the engine's database (if
// any) back to Config.DumpPath, matching shutdown_server.
func (s *Server) Start(ctx context.Context, srvErr chan<- error, done chan<- bool) {
	if err := os.RemoveAll(s.Config.SocketPath); err != nil {
		srvErr <- fmt.Errorf("dbserver: clearing stale socket: %w", err)
		return
	}

	listener, err := net.Listen("unix", s.Config.SocketPath)
	if err != nil {
		srvErr <- fmt.Errorf("dbserver: listening on %s: %w", s.Config.SocketPath, err)
		return
	}
	defer listener.Close()

	dblog.Info("dbserver listening on %s", s.Config.SocketPath)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				s.shutdown()
				done <- true
				return
			default:
				srvErr <- fmt.Errorf("dbserver: accept: %w", err)
				return
			}
		}

		if s.handleConn(conn) {
			s.shutdown()
			done <- true
			return
		}
	}
}

// handleConn serves requests on conn until reading a request or
// writing a response fails (the client closing the connection
// included). Its result says whether the server should stop entirely,
// in the place of handle_client's returned "done" flag; no request
// stops the server, so it always returns false and the server stops
// only when ctx is cancelled.
func (s *Server) handleConn(conn net.Conn) bool {
	defer conn.Close()
	codec := &wire.BinaryCodec{R: conn, W: conn}

	for {
		req, err := codec.ReadMessage()
		if err != nil {
			dblog.Debug("dbserver: connection closed: %v", err)
			return false
		}

		resp := s.Handler(s.Engine, req)
		if err := codec.WriteMessage(resp); err != nil {
			dblog.Error("dbserver: writing response: %v", err)
			return false
		}
	}
}

func (s *Server) shutdown() {
	if s.Engine.DB == nil {
		return
	}
	f, err := os.Create(s.Config.DumpPath)
	if err != nil {
		dblog.Error("dbserver: creating dump file: %v", err)
		return
	}
	defer f.Close()
	if err := persist.Dump(f, s.Engine.DB); err != nil {
		dblog.Error("dbserver: dumping database: %v", err)
	}
}
