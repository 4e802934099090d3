package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

// HandleCategories lists every category present in the catalog with its
// entry count, ordered by label for stable filter buttons.
func HandleCategories(c *fiber.Ctx) error {
	counts := catalog.CategoryCounts()

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	type categoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	categories := make([]categoryCount, len(labels))
	for i, label := range labels {
		categories[i] = categoryCount{Category: label, Count: counts[label]}
	}

	return c.JSON(fiber.Map{
		"categories": categories,
		"total":      catalog.Len(),
	})
}
