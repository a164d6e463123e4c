package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DailyTodo/Services"
)

// TaskController handles daily task endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// Today returns the current logical day's task instances
func (c *TaskController) Today(ctx *fiber.Ctx) error {
	tasks, err := Services.GetTodayTasks(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(tasks)
}

// Complete marks a daily task as done
func (c *TaskController) Complete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	task, err := Services.CompleteTask(c.DB, uint(id))
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(task)
}
