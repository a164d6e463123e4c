package middleware

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every request to the console and appends it to
// logs/requests.log. Health checks are skipped.
func RequestLogger() fiber.Handler {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/api/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		message := formatRequestLog(c, start, latency, err)
		log.Println(message)
		logToFile("logs/requests.log", message)

		return err
	}
}

func formatRequestLog(c *fiber.Ctx, start time.Time, latency time.Duration, err error) string {
	status := c.Response().StatusCode()
	line := start.Format("2006-01-02 15:04:05") + " " +
		c.Method() + " " + c.Path() + " " +
		statusMarker(status) + " " +
		latency.String() + " " + c.IP()
	if err != nil {
		line += " error:" + err.Error()
	}
	return line
}

// statusMarker returns a quick visual indicator for the status class
func statusMarker(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "✅"
	case status >= 400 && status < 500:
		return "⚠️"
	case status >= 500:
		return "❌"
	default:
		return "🔄"
	}
}

// logToFile appends the log message to a file
func logToFile(filePath, message string) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(message + "\n"); err != nil {
		log.Printf("Error writing to log file: %v\n", err)
	}
}
