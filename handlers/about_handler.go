package handlers

import (
	"bytes"
	_ "embed"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
)

//go:embed usage.md
var usageNotes []byte

// HandleAbout renders the usage notes page.
func HandleAbout(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := goldmark.Convert(usageNotes, &buf); err != nil {
		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
