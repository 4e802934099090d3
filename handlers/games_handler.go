package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fenlinghub/trainerdex/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 24
	maxPageSize     = 100
)

// HandleGames serves the paginated catalog listing. Query parameters:
// q (free-text search), category (exact label), page, page_size.
func HandleGames(c *fiber.Ctx) error {
	opts := models.SearchOptions{
		Filter:   c.Query("q"),
		Category: c.Query("category"),
		Page:     getPageNumber(c.Query("page")),
		PageSize: getPageSize(c.Query("page_size")),
	}

	start := time.Now()
	games, total := models.SearchGamesWithOptions(engine, catalog.Games(), opts)
	observeSearch(time.Since(start), total)

	totalPages := (total + int64(opts.PageSize) - 1) / int64(opts.PageSize)
	if totalPages == 0 {
		totalPages = 1
	}

	return c.JSON(fiber.Map{
		"games":       games,
		"page":        opts.Page,
		"page_size":   opts.PageSize,
		"total":       total,
		"total_pages": totalPages,
	})
}

// HandleGame serves a single catalog entry by its id.
func HandleGame(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return sendValidationError(c, "invalid game id")
	}
	for _, game := range catalog.Games() {
		if game.ID == id {
			return c.JSON(game)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "game not found",
	})
}

func getPageNumber(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return defaultPage
	}
	return page
}

func getPageSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return defaultPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}
