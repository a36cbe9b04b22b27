// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/doclens/doclens/internal/analyzer"
	"github.com/doclens/doclens/internal/config"
	"github.com/doclens/doclens/internal/llm"
	"github.com/doclens/doclens/internal/server"
	"github.com/doclens/doclens/internal/source"
	"github.com/doclens/doclens/internal/store"
	"github.com/doclens/doclens/internal/suggest"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	tables := analyzer.DefaultTables()
	an := analyzer.New(tables)

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("failed to open history store: %v", err)
	}
	defer st.Close()

	sg, err := suggest.NewService(tables.Vocabulary())
	if err != nil {
		log.Fatalf("failed to build suggestion service: %v", err)
	}

	var provider llm.Provider
	if cfg.OpenAI.Enabled() {
		provider, err = llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			log.Fatalf("failed to create LLM provider: %v", err)
		}
	} else {
		slog.Info("no OpenAI API key configured, AI enhancement disabled")
	}

	folder := source.NewFolder(cfg.Documents.Dir)

	srv := server.New(*cfg, an, st, folder, sg, provider)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
