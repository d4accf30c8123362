package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
)

type presetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Config      json.RawMessage `json:"config"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newPresetResponse(p models.StylePreset) presetResponse {
	cfg := json.RawMessage(p.Config)
	if len(cfg) == 0 {
		cfg = json.RawMessage("{}")
	}
	return presetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Config:      cfg,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type savePresetRequest struct {
	Description *string         `json:"description"`
	Config      mapstyle.Config `json:"config"`
}

// ListPresets returns every stored preset.
func (m *MapController) ListPresets(c *fiber.Ctx) error {
	list, err := m.Presets.List(c.UserContext())
	if err != nil {
		return m.fail(c, err)
	}
	out := make([]presetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, newPresetResponse(p))
	}
	return c.JSON(out)
}

// GetPreset returns the partial config stored under :name.
func (m *MapController) GetPreset(c *fiber.Ctx) error {
	name := c.Params("name")
	cfg, err := m.Presets.Get(c.UserContext(), name)
	if err != nil {
		return m.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"name":   name,
		"config": cfg,
	})
}

// SavePreset creates or replaces the preset :name.
func (m *MapController) SavePreset(c *fiber.Ctx) error {
	var req savePresetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	preset, err := m.Presets.Save(c.UserContext(), c.Params("name"), req.Description, req.Config)
	if err != nil {
		return m.fail(c, err)
	}
	return c.JSON(newPresetResponse(*preset))
}

// DeletePreset removes the preset :name.
func (m *MapController) DeletePreset(c *fiber.Ctx) error {
	if err := m.Presets.Delete(c.UserContext(), c.Params("name")); err != nil {
		return m.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Preset deleted",
	})
}
