// Package config resolves the server's runtime settings from flags,
// environment variables (loaded via godotenv), and built-in defaults,
// in the teacher's main.go style of layering a .env file under flag
// parsing.
package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/SteveKekacs/column-store-db/internal/dblog"
)

const (
	DefaultSocketPath = "/tmp/dbserver.sock"
	DefaultDumpPath   = "dbdump.bin"
)

// Config holds everything cmd/dbserver needs to start serving.
type Config struct {
	SocketPath string
	DumpPath   string
	LogLevel   dblog.LogLevel
}

// Load reads an optional .env file (ignored if absent), then parses
// flags over top of it, matching the teacher's envfile-then-flags
// layering.
func Load(args []string) (Config, error) {
	envfile := os.Getenv("DBSERVER_ENV_FILE")
	if envfile == "" {
		envfile = ".env"
	}
	if _, err := os.Stat(envfile); err == nil {
		if err := godotenv.Load(envfile); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("dbserver", flag.ContinueOnError)
	socketPath := fs.String("socket", envOr("DBSERVER_SOCKET_PATH", DefaultSocketPath), "UNIX socket path to listen on")
	dumpPath := fs.String("dump", envOr("DBSERVER_DUMP_PATH", DefaultDumpPath), "path to the database dump file")
	logLevel := fs.String("log-level", envOr("DBSERVER_LOG_LEVEL", "info"), "log level: debug|info|warn|error|off")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := dblog.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}

	return Config{
		SocketPath: *socketPath,
		DumpPath:   *dumpPath,
		LogLevel:   level,
	}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
