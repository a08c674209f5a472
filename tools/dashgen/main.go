// Command dashgen generates the Grafana dashboard and Prometheus rules for
// kapaipai-tracker from code, validating every PromQL expression first.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mong0520/kapaipai-api/tools/dashgen/dashboards"
	"github.com/mong0520/kapaipai-api/tools/dashgen/rules"
	"github.com/mong0520/kapaipai-api/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen; DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	arts, warnings, err := build(cfg)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range arts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// build renders and validates every enabled artifact.
func build(cfg Config) ([]artifact, []string, error) {
	var (
		arts     []artifact
		warnings []string
		errs     []string
	)
	collect := func(res *validate.Result) {
		warnings = append(warnings, res.Warnings...)
		errs = append(errs, res.Errors...)
	}

	if cfg.RulesEnabled {
		for _, r := range []struct {
			path string
			cr   rules.PrometheusRule
		}{
			{filepath.Join("prometheus", "kpp-recording-rules.yaml"), rules.RecordingRules()},
			{filepath.Join("prometheus", "kpp-alerts.yaml"), rules.AlertRules()},
		} {
			collect(validate.Rules(r.cr, KnownMetrics))
			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, warnings, fmt.Errorf("encoding %s: %w", r.path, err)
			}
			arts = append(arts, artifact{path: r.path, data: append([]byte(generatedHeader), data...)})
		}
	}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, warnings, fmt.Errorf("building dashboard: %w", err)
		}
		collect(validate.Dashboard(dash, KnownMetrics))
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, warnings, fmt.Errorf("encoding dashboard: %w", err)
		}
		arts = append(arts, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	if len(errs) > 0 {
		joined := make([]error, 0, len(errs))
		for _, e := range errs {
			joined = append(joined, errors.New(e))
		}
		return nil, warnings, fmt.Errorf("validation failed: %w", errors.Join(joined...))
	}
	return arts, warnings, nil
}
