package tiles

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// ArchiveRoute is where the style's vector source points.
const ArchiveRoute = "/maritime.pmtiles"

// ServeArchive mounts the PMTiles archive. Byte ranges are required: the
// PMTiles client reads the header, directories and tiles with range requests.
func ServeArchive(app *fiber.App, path string) {
	app.Get(ArchiveRoute, adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeFile(w, r, path)
	}))
}
