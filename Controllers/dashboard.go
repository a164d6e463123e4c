package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DailyTodo/Services"
)

// DashboardController handles aggregate read endpoints
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Summary returns today's progress, streaks, the weekly window and
// per-task consistency in one payload
func (c *DashboardController) Summary(ctx *fiber.Ctx) error {
	data, err := Services.GetDashboardData(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(data)
}
