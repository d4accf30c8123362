package tiles

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeArchiveByteRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maritime.pmtiles")
	require.NoError(t, os.WriteFile(path, []byte("PMTiles-archive-bytes"), 0o644))

	app := fiber.New()
	ServeArchive(app, path)

	req := httptest.NewRequest(http.MethodGet, ArchiveRoute, nil)
	req.Header.Set("Range", "bytes=0-6")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "PMTiles", string(body))
}
