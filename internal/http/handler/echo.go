package handler

import "github.com/gofiber/fiber/v2"

// Echo returns the handler for the catch-all route.
//
// The captured remainder after the leading slash is echoed back exactly as
// the client sent it: no percent-decoding and no case folding. Fiber matches
// routes against the escaped path by default (UnescapePath is off), so a
// request for "/a%20b" is reported as "a%20b". Query strings are never part
// of the capture.
//
// @Summary Echo the request path
// @Description Returns the captured path wrapped in brackets as plain text.
// @Tags echo
// @Produce plain
// @Param path path string false "Any path, including nested segments"
// @Success 200 {string} string "I'm Python!\r\n[<path>]\r\n"
// @Router /{path} [get]
func Echo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString("I'm Python!\r\n[" + c.Params("*") + "]\r\n")
	}
}
