package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/videval/videval/internal/api"
	"github.com/videval/videval/internal/config"
	"github.com/videval/videval/internal/db"
	"github.com/videval/videval/internal/store"
	"github.com/videval/videval/internal/youtube"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			videoStore := store.NewVideoStore(database)
			fetcher := youtube.NewClient(cfg.YouTube.APIKey)

			router := api.NewRouter(api.Deps{
				VideoStore: videoStore,
				Fetcher:    fetcher,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
