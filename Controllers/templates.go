package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DailyTodo/Models"
	"DailyTodo/Services"
)

// TemplateController handles task template endpoints
type TemplateController struct {
	DB *gorm.DB
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

// GetTemplates lists all templates, active and inactive
func (c *TemplateController) GetTemplates(ctx *fiber.Ctx) error {
	var templates []Models.TaskTemplate
	if err := c.DB.Order("name").Find(&templates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve templates"})
	}
	return ctx.JSON(templates)
}

// CreateTemplate adds a new recurring task
func (c *TemplateController) CreateTemplate(ctx *fiber.Ctx) error {
	var input Services.CreateTemplateInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	template, err := Services.CreateTaskTemplate(c.DB, input)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(template)
}

// ToggleTemplate flips a template's active flag
func (c *TemplateController) ToggleTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	template, err := Services.ToggleTaskTemplate(c.DB, uint(id))
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(template)
}
