package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/infrastructure/logger"
	"github.com/vyapar/backend/internal/infrastructure/migration"
	"github.com/vyapar/backend/migrations"
)

const usage = `Vyapar schema migrations

Usage:
  migrate [-path dir] [-log-level level] <command> [args]

Commands:
  up                    apply pending migrations
  down                  roll back everything
  step <n>              move n versions (negative rolls back)
  version               print the applied version
  force <version>       mark a version applied and clear the dirty flag
  create <name> [desc]  write a new up/down pair
  list                  list known migrations

The database comes from VYAPAR_DATABASE_URL, DATABASE_URL or the
VYAPAR_DATABASE_* settings. Only PostgreSQL is migrated this way; a
sqlite database is created by the server's auto-migrate.`

// dbCommands need a live PostgreSQL connection
var dbCommands = map[string]func(m *migration.Migrator, args []string, log *zap.Logger) error{
	"up":   func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Up() },
	"down": func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Down() },
	"step": func(m *migration.Migrator, args []string, _ *zap.Logger) error {
		n, err := intArg(args, "step count")
		if err != nil {
			return err
		}
		return m.Steps(n)
	},
	"force": func(m *migration.Migrator, args []string, _ *zap.Logger) error {
		v, err := intArg(args, "version")
		if err != nil {
			return err
		}
		return m.Force(v)
	},
	"version": func(m *migration.Migrator, _ []string, log *zap.Logger) error {
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		log.Info("Schema version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		return nil
	},
}

func intArg(args []string, what string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%s required", what)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, args[0])
	}
	return n, nil
}

func main() {
	dir := flag.String("path", "", "read migrations from this directory instead of the embedded set")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, rest := args[0], args[1:]

	log, err := logger.New(&logger.Config{Level: *level, Format: "console", Output: "stdout", TimeFormat: "15:04:05"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	var source fs.FS = migrations.FS
	if *dir != "" {
		source = os.DirFS(*dir)
	}

	switch cmd {
	case "create":
		if len(rest) == 0 {
			log.Fatal("Migration name required")
		}
		target := *dir
		if target == "" {
			target = "migrations"
		}
		desc := ""
		if len(rest) > 1 {
			desc = rest[1]
		}
		mf, err := migration.CreateMigration(target, rest[0], desc)
		if err != nil {
			log.Fatal("Create migration failed", zap.Error(err))
		}
		log.Info("Migration created", zap.String("up", mf.UpPath), zap.String("down", mf.DownPath))
		return
	case "list":
		names, err := migration.ListMigrations(source)
		if err != nil {
			log.Fatal("List migrations failed", zap.Error(err))
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	run, ok := dbCommands[cmd]
	if !ok {
		log.Error("Unknown command", zap.String("command", cmd))
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Load configuration failed", zap.Error(err))
	}
	if cfg.Database.Driver != "postgres" {
		log.Fatal("Versioned migrations need PostgreSQL", zap.String("driver", cfg.Database.Driver))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Open database failed", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal("Database unreachable", zap.Error(err))
	}

	m, err := migration.New(db, source, log)
	if err != nil {
		log.Fatal("Init migrator failed", zap.Error(err))
	}
	defer m.Close()

	if err := run(m, rest, log); err != nil {
		log.Fatal("Migration command failed", zap.String("command", cmd), zap.Error(err))
	}
}
