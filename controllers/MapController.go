package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/metrics"
	"github.com/khankhulgun/maritimemap/models"
	"github.com/khankhulgun/maritimemap/presets"
	"github.com/khankhulgun/maritimemap/stylecache"
)

// PresetStore is the subset of presets.Store the HTTP handlers use.
type PresetStore interface {
	List(ctx context.Context) ([]models.StylePreset, error)
	Get(ctx context.Context, name string) (mapstyle.Config, error)
	Save(ctx context.Context, name string, description *string, cfg mapstyle.Config) (*models.StylePreset, error)
	Delete(ctx context.Context, name string) error
}

// MapController serves generated styles, legends and presets.
type MapController struct {
	Cache *stylecache.Cache

	// Presets is optional; preset lookups answer 404 without it.
	Presets PresetStore

	// Base is the partial config used when a request names no preset.
	Base mapstyle.Config

	Logger  *log.Logger
	Metrics *metrics.Metrics
}

// Style request sources, used as metric labels.
const (
	sourceDefault = "default"
	sourcePreset  = "preset"
	sourcePost    = "post"
)

// GetStyle serves /style.json, optionally built from ?preset=name.
func (m *MapController) GetStyle(c *fiber.Ctx) error {
	cfg, source, err := m.requestedConfig(c)
	if err != nil {
		m.Metrics.ObserveStyle(source, resultFor(err))
		return m.fail(c, err)
	}
	return m.sendStyle(c, cfg, source)
}

// BuildStyle builds a style from the partial config in the request body.
func (m *MapController) BuildStyle(c *fiber.Ctx) error {
	cfg, err := bodyConfig(c)
	if err != nil {
		m.Metrics.ObserveStyle(sourcePost, metrics.ResultInvalid)
		return m.fail(c, err)
	}
	return m.sendStyle(c, cfg, sourcePost)
}

func (m *MapController) sendStyle(c *fiber.Ctx, cfg mapstyle.Config, source string) error {
	data, hit, err := m.Cache.Get(cfg)
	if err != nil {
		m.Metrics.ObserveStyle(source, resultFor(err))
		return m.fail(c, err)
	}
	if hit {
		m.Metrics.ObserveCacheHit()
	}
	m.Metrics.ObserveStyle(source, metrics.ResultOK)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// requestedConfig resolves the partial config of a GET request.
func (m *MapController) requestedConfig(c *fiber.Ctx) (mapstyle.Config, string, error) {
	name := c.Query("preset")
	if name == "" {
		return m.Base, sourceDefault, nil
	}
	if m.Presets == nil {
		return nil, sourcePreset, presets.ErrNotFound
	}
	cfg, err := m.Presets.Get(c.UserContext(), name)
	return cfg, sourcePreset, err
}

// errBadBody marks request bodies that could not be decoded.
var errBadBody = errors.New("invalid request body")

// bodyConfig decodes the request body as a partial config. JSON is the
// default; YAML and TOML are picked by Content-Type.
func bodyConfig(c *fiber.Ctx) (mapstyle.Config, error) {
	format := mapstyle.FormatJSON
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.Contains(contentType, "yaml"):
		format = mapstyle.FormatYAML
	case strings.Contains(contentType, "toml"):
		format = mapstyle.FormatTOML
	}

	cfg, err := mapstyle.Decode(c.Body(), format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadBody, err)
	}
	return cfg, nil
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, presets.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, mapstyle.ErrInvalidConfigurationShape),
		errors.Is(err, stylecache.ErrUnencodable),
		errors.Is(err, errBadBody):
		return metrics.ResultInvalid
	}
	return metrics.ResultError
}

// fail maps err to a status code and the JSON error body.
func (m *MapController) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Error building style"
	switch resultFor(err) {
	case metrics.ResultNotFound:
		status = fiber.StatusNotFound
		message = err.Error()
	case metrics.ResultInvalid:
		status = fiber.StatusBadRequest
		message = err.Error()
	default:
		if m.Logger != nil {
			m.Logger.Error("request failed", "path", c.Path(), "err", err)
		}
	}
	return errorJSON(c, status, message)
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
