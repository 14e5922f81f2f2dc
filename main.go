// main.go
//
// Entry point for the make10 play server.
// Loads .env, sets the log level, and serves the HTTP API from an in-memory
// game store.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/make10/internal/httpserver"
	"github.com/robalobadob/make10/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting make10 server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
