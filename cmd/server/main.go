package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/youruser/brandcards/internal/api"
	"github.com/youruser/brandcards/internal/fetch"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load()

	resolver := fetch.NewResolver()
	if ua := os.Getenv("BRANDCARDS_USER_AGENT"); ua != "" {
		resolver = resolver.WithUserAgent(ua)
	}

	r := gin.Default()
	api.RegisterRoutes(r, resolver)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting preview server")
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
