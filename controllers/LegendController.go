package controllers

import (
	"bytes"
	"image/png"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
	"github.com/khankhulgun/maritimemap/sprite"
)

const (
	defaultSwatchSize = 32
	maxSwatchSize     = 512
)

// GetLegend lists legend entries for the default config or ?preset=name.
func (m *MapController) GetLegend(c *fiber.Ctx) error {
	cfg, _, err := m.requestedConfig(c)
	if err != nil {
		return m.fail(c, err)
	}
	return m.sendLegend(c, cfg)
}

// BuildLegend lists legend entries for the config in the request body.
func (m *MapController) BuildLegend(c *fiber.Ctx) error {
	cfg, err := bodyConfig(c)
	if err != nil {
		return m.fail(c, err)
	}
	return m.sendLegend(c, cfg)
}

// GetSwatch renders one legend entry as PNG.
func (m *MapController) GetSwatch(c *fiber.Ctx) error {
	cfg, _, err := m.requestedConfig(c)
	if err != nil {
		return m.fail(c, err)
	}
	return m.sendSwatch(c, cfg)
}

// BuildSwatch renders one legend entry of the posted config as PNG.
func (m *MapController) BuildSwatch(c *fiber.Ctx) error {
	cfg, err := bodyConfig(c)
	if err != nil {
		return m.fail(c, err)
	}
	return m.sendSwatch(c, cfg)
}

func (m *MapController) sendLegend(c *fiber.Ctx, cfg mapstyle.Config) error {
	entries, err := legendEntries(cfg)
	if err != nil {
		return m.fail(c, err)
	}
	return c.JSON(entries)
}

func (m *MapController) sendSwatch(c *fiber.Ctx, cfg mapstyle.Config) error {
	size := defaultSwatchSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSwatchSize {
			return errorJSON(c, fiber.StatusBadRequest, "size must be between 1 and 512")
		}
		size = n
	}

	entries, err := legendEntries(cfg)
	if err != nil {
		return m.fail(c, err)
	}

	id := c.Params("id")
	for _, entry := range entries {
		if entry.ID != id {
			continue
		}
		img, err := sprite.Swatch(entry, size)
		if err != nil {
			return m.fail(c, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return m.fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(buf.Bytes())
	}
	return errorJSON(c, fiber.StatusNotFound, "Legend entry not found")
}

func legendEntries(cfg mapstyle.Config) ([]models.LegendEntry, error) {
	merged, err := mapstyle.Merge(cfg)
	if err != nil {
		return nil, err
	}
	return sprite.Entries(merged), nil
}
