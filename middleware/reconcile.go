package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DailyTodo/Services"
)

// EnsureDay reconciles the current logical day before the request runs,
// so every read and write path self-heals missing instances and
// summaries. The reconcile is idempotent, so calling it per request is
// safe.
func EnsureDay(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/api/health" {
			return c.Next()
		}

		if err := Services.EnsureDayExists(db, nil); err != nil {
			log.Printf("Day reconcile failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare today's tasks"})
		}
		return c.Next()
	}
}
