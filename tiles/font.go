package tiles

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/khankhulgun/maritimemap/metrics"
)

// maxGlyphBytes caps an upstream glyph response. A 256-codepoint range of
// SDF glyphs is usually well under 100KB.
const maxGlyphBytes = 4 << 20

// glyphRange matches a glyph PBF range such as "0-255".
var glyphRange = regexp.MustCompile(`^[0-9]+-[0-9]+$`)

// GlyphProxy serves font glyphs for map text rendering. It serves from
// local storage if available, otherwise downloads from Upstream and caches.
type GlyphProxy struct {
	Upstream string
	Dir      string

	client  *retryablehttp.Client
	logger  *log.Logger
	metrics *metrics.Metrics
}

func NewGlyphProxy(upstream, dir string, retryMax int, timeout time.Duration, logger *log.Logger, m *metrics.Metrics) *GlyphProxy {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	if logger == nil {
		logger = log.Default()
	}

	return &GlyphProxy{
		Upstream: strings.TrimRight(upstream, "/"),
		Dir:      dir,
		client:   client,
		logger:   logger,
		metrics:  m,
	}
}

// Handler serves /:fontstack/:range.pbf.
func (g *GlyphProxy) Handler(c *fiber.Ctx) error {
	fontstack, err := url.PathUnescape(c.Params("fontstack"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid font request")
	}
	rangeParam := c.Params("range")

	if !validFontstack(fontstack) || !glyphRange.MatchString(rangeParam) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid font request")
	}

	fontPath := filepath.Join(g.Dir, fontstack, rangeParam+".pbf")

	// Check if font exists locally
	if body, err := os.ReadFile(fontPath); err == nil {
		g.metrics.ObserveGlyph("disk")
		return sendGlyphs(c, body)
	}

	fontURL := fmt.Sprintf("%s/%s/%s.pbf", g.Upstream, url.PathEscape(fontstack), rangeParam)
	resp, err := g.client.Get(fontURL)
	if err != nil {
		g.metrics.ObserveGlyph("error")
		g.logger.Error("glyph fetch failed", "url", fontURL, "err", err)
		return c.Status(fiber.StatusBadGateway).SendString("Error fetching font")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.metrics.ObserveGlyph("error")
		return c.Status(resp.StatusCode).SendString("Font not found")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGlyphBytes+1))
	if err != nil {
		g.metrics.ObserveGlyph("error")
		return c.Status(fiber.StatusBadGateway).SendString("Error reading font data")
	}
	if len(body) > maxGlyphBytes {
		g.metrics.ObserveGlyph("error")
		g.logger.Warn("glyph response too large", "url", fontURL, "limit", maxGlyphBytes)
		return c.Status(fiber.StatusBadGateway).SendString("Font data too large")
	}
	g.metrics.ObserveGlyph("upstream")

	if err := writeFileAtomic(fontPath, body); err != nil {
		g.logger.Warn("glyph cache write failed", "path", fontPath, "err", err)
	}

	return sendGlyphs(c, body)
}

func sendGlyphs(c *fiber.Ctx, body []byte) error {
	c.Set("Content-Type", "application/x-protobuf")
	c.Set("Cache-Control", "public, max-age=86400") // Cache for 1 day
	return c.Send(body)
}

// validFontstack rejects anything that could leave the glyph directory.
func validFontstack(fontstack string) bool {
	if fontstack == "" || fontstack == "." || fontstack == ".." {
		return false
	}
	return !strings.ContainsAny(fontstack, `/\`) && !strings.Contains(fontstack, "..")
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".glyph-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
