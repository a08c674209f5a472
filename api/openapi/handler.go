// Package openapi builds the huma API surface of the tracker and exports its
// OpenAPI 3.1 document. The running server serves the same document at
// /openapi.json and a docs UI at /docs.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
)

const (
	title       = "kapaipai tracker API"
	description = "Search the kapaipai.tw trading card marketplace, find sellers stocking " +
		"a whole shopping list, and manage price watches."
)

// Config returns the huma configuration for the given build version.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.Info.Description = description
	cfg.Tags = []*huma.Tag{
		{Name: "cards", Description: "Card search, listings and multi-card matching"},
		{Name: "watches", Description: "Price watches and their history"},
		{Name: "notifications", Description: "Sent price alerts"},
		{Name: "scheduler", Description: "Price checks and job history"},
	}
	return cfg
}

// New mounts a huma API on e.
func New(e *echo.Echo, version string) huma.API {
	return humaecho.New(e, Config(version))
}

// Write encodes the API's OpenAPI document to w as "yaml" or "json".
func Write(w io.Writer, api huma.API, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = api.OpenAPI().YAML()
	case "json":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding openapi document: %w", err)
	}

	_, err = w.Write(data)
	return err
}
