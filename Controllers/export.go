package Controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"DailyTodo/Models"
	"DailyTodo/Services"
)

// Export writes the full day-summary history and per-task consistency
// into an Excel workbook and streams it as a download.
func (c *DashboardController) Export(ctx *fiber.Ctx) error {
	var summaries []Models.DaySummary
	if err := c.DB.Order("date").Find(&summaries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load summaries"})
	}

	consistency, err := Services.TaskConsistency(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}

	buffer, err := buildHistoryWorkbook(summaries, consistency)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="daily-todo-history.xlsx"`)
	return ctx.Send(buffer.Bytes())
}

func buildHistoryWorkbook(summaries []Models.DaySummary, consistency []Services.ConsistencyEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	summarySheet := "Summaries"
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Date", "Total Tasks", "Completed Tasks", "Completion %"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(summarySheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetRowStyle(summarySheet, 1, 1, headerStyle)
	}

	for rowIndex, summary := range summaries {
		row := rowIndex + 2
		values := []interface{}{
			summary.Date.Format("2006-01-02"),
			summary.TotalTasks,
			summary.CompletedTasks,
			summary.CompletionPct,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(summarySheet, cell, value)
		}
	}
	f.SetColWidth(summarySheet, "A", "D", 18)

	consistencySheet := "Consistency"
	if _, err := f.NewSheet(consistencySheet); err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetCellValue(consistencySheet, "A1", "Task")
	f.SetCellValue(consistencySheet, "B1", "Completion %")
	if headerStyle != 0 {
		f.SetRowStyle(consistencySheet, 1, 1, headerStyle)
	}
	for rowIndex, entry := range consistency {
		row := rowIndex + 2
		f.SetCellValue(consistencySheet, fmt.Sprintf("A%d", row), entry.Task)
		f.SetCellValue(consistencySheet, fmt.Sprintf("B%d", row), entry.Percent)
	}
	f.SetColWidth(consistencySheet, "A", "B", 18)

	f.DeleteSheet("Sheet1")

	buffer := new(bytes.Buffer)
	if err := f.Write(buffer); err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}
	return buffer, nil
}
