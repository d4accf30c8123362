// Package maritimemap mounts the maritime style service on a fiber app.
package maritimemap

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khankhulgun/maritimemap/controllers"
	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/metrics"
	"github.com/khankhulgun/maritimemap/stylecache"
	"github.com/khankhulgun/maritimemap/tiles"
)

// Options wires the service's dependencies. Presets, Glyphs and
// ArchivePath are optional; their routes are skipped when unset.
type Options struct {
	Cache       *stylecache.Cache
	Presets     controllers.PresetStore
	Glyphs      *tiles.GlyphProxy
	Metrics     *metrics.Metrics
	Logger      *log.Logger
	ArchivePath string

	// Base is applied to GET /style.json when no preset is named.
	Base mapstyle.Config
}

func Set(app *fiber.App, opts Options) {
	m := &controllers.MapController{
		Cache:   opts.Cache,
		Presets: opts.Presets,
		Base:    opts.Base,
		Logger:  opts.Logger,
		Metrics: opts.Metrics,
	}

	app.Get("/style.json", m.GetStyle)
	app.Post("/style", m.BuildStyle)
	app.Get("/legend.json", m.GetLegend)
	app.Post("/legend.json", m.BuildLegend)
	app.Get("/legend/:id.png", m.GetSwatch)
	app.Post("/legend/:id.png", m.BuildSwatch)

	if opts.Glyphs != nil {
		app.Get("/fonts/:fontstack/:range.pbf", opts.Glyphs.Handler)
	}
	if opts.ArchivePath != "" {
		tiles.ServeArchive(app, opts.ArchivePath)
	}
	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	if opts.Presets != nil {
		a := app.Group("/api/presets")
		a.Get("/", m.ListPresets)
		a.Get("/:name", m.GetPreset)
		a.Put("/:name", m.SavePreset)
		a.Delete("/:name", m.DeletePreset)
	}
}
