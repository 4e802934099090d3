package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/fenlinghub/trainerdex/models"
	"github.com/fenlinghub/trainerdex/search"
)

// Shared collaborators set once at startup; handlers read them for the
// process lifetime.
var (
	catalog *models.CatalogStore
	engine  *search.Engine
)

// Initialize registers every route on the app and starts listening. Run it
// in its own goroutine; it blocks in Listen.
func Initialize(app *fiber.App, store *models.CatalogStore, searchEngine *search.Engine, staticDir, port string) {
	catalog = store
	engine = searchEngine

	app.Get("/api/games", HandleGames)
	app.Get("/api/games/:id", HandleGame)
	app.Get("/api/categories", HandleCategories)
	app.Get("/about", HandleAbout)
	app.Get("/metrics", HandleMetrics)

	if staticDir != "" {
		app.Static("/", staticDir)
	}

	if port == "" {
		port = "8000"
	}

	log.Infof("Listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Errorf("Server stopped: %v", err)
	}
}
