package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds the HTTP listener settings
type Server struct {
	addr    string
	baseURL string
	metrics bool
}

func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CONTROLTOWER_ADDR"),
			Destination: &x.addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public URL of the dashboard (e.g., https://tower.example.com), used in notification links",
			Sources:     cli.EnvVars("CONTROLTOWER_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("CONTROLTOWER_METRICS"),
			Destination: &x.metrics,
		},
	}
}

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.String("base_url", x.baseURL),
		slog.Bool("metrics", x.metrics),
	)
}

func (x *Server) Addr() string {
	return x.addr
}

func (x *Server) BaseURL() string {
	return x.baseURL
}

func (x *Server) MetricsEnabled() bool {
	return x.metrics
}
