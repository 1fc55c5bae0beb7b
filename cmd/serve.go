package cmd

import (
	"fmt"
	"os"

	"github.com/fintrack-app/backend/internal/config"
	"github.com/fintrack-app/backend/internal/controllers/version"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve()
		},
	}
}

func serve() error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(c.GinMode)
	setupLogging(c, gin.IsDebugging())

	if dir := c.DataDir(); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	if err := models.Connect(c.DSN); err != nil {
		return fmt.Errorf("connecting to the database: %w", err)
	}

	r, teardown, err := router.Config(c.APIURL)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(r.Group("/"), version.Of(release))

	log.Info().Str("port", c.Port).Msg("Listening")
	return r.Run(":" + c.Port)
}
