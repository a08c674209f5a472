package cmd

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/mong0520/kapaipai-api/api/openapi"
	"github.com/mong0520/kapaipai-api/internal/api/handlers"
	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/store"
)

// registerAPIRoutes mounts every versioned API operation on api.
func registerAPIRoutes(api huma.API, catalog kapaipai.Catalog, eng *engine.Engine, st store.Store) {
	handlers.RegisterCardRoutes(api, handlers.NewCardsHandler(catalog, eng))
	handlers.RegisterWatchRoutes(api, handlers.NewWatchHandler(st, eng))
	handlers.RegisterNotificationRoutes(api, handlers.NewNotificationsHandler(st))
	handlers.RegisterTriggerRoutes(api, handlers.NewPriceCheckHandler(eng))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
}

func openapiCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long:  "Print the OpenAPI 3.1 document of the HTTP API without starting the server.",
		RunE: func(c *cobra.Command, _ []string) error {
			api := openapi.New(echo.New(), Version)
			registerAPIRoutes(api, nil, nil, nil)
			return openapi.Write(c.OutOrStdout(), api, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, json)")

	return cmd
}
