// csvloader is a one-shot offline tool that bulk-loads a sales CSV into the
// transactions table. It is not part of the request-serving path.
package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	"sales-ledger/internal/bulkload"
	"sales-ledger/internal/config"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bulk load failed", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	path := flag.String("file", "dataset.csv", "path to the source CSV file")
	chunkSize := flag.Int("chunk-size", bulkload.DefaultChunkSize, "rows per copy operation")
	flag.Parse()

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return err
	}

	file, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer file.Close()

	slog.Info("starting bulk load", "file", *path, "chunk_size", *chunkSize)

	loader := bulkload.NewLoader(
		bulkload.NewPostgresCopier(db),
		bulkload.WithChunkSize(*chunkSize),
	)

	summary, err := loader.Run(file)
	if err != nil {
		return err
	}

	slog.Info("all chunks loaded", "rows", summary.TotalRows, "chunks", summary.Chunks)
	return nil
}
