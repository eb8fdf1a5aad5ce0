package nav

import (
	"context"
	"log/slog"

	"github.com/jenilutfifauzi/bottomnav/pkg/logger"
	"github.com/jenilutfifauzi/bottomnav/pkg/metric"
	"github.com/jenilutfifauzi/bottomnav/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X main.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X main.date=date"
)

// Run starts the navigation server and blocks until the context is
// canceled or an error occurs. It serves the resolved navigation as
// JSON at /nav, the HTML partial at /nav/partial, health at /healthz,
// and prometheus metrics at /metrics.
func (n *Navigation) Run(ctx context.Context, opt ...server.Option) error {
	logger.SetDefault("bottomnavd", version)
	slog.Info("starting bottomnavd", "commit", commit, "date", date)

	resolutions := metric.NewCounter(
		"bottomnav_resolutions_total",
		"Number of navigation resolutions by response format and match outcome.",
		"format", "outcome",
	)

	renderer := NewRenderer(n.AriaLabel)

	if opt == nil {
		opt = []server.Option{}
	}

	opt = append(opt,
		server.WithHandler("/nav", n.Handler(resolutions)),
		server.WithHandler("/nav/partial", n.PartialHandler(renderer, resolutions)),
		server.WithSimpleHealth(),
		server.WithMetricsEndpoint(),
	)

	return server.New(opt...).Serve(ctx)
}
