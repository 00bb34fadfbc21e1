// SummaryRoutes registers HTTP routes for the purchase summary.
//
// Routes:
//   - GET  /api/summary        : Per-fish totals and the grand total.
//   - POST /api/summary/export : Write the summary PDF, return its path.

package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thevuong/harvest/pkg/app"
	reportservice "github.com/thevuong/harvest/pkg/service/report"
)

func SummaryRoutes(router fiber.Router, a *app.App) {
	svc := a.ReportService
	router.Get("/summary", GetSummary(svc))
	router.Post("/summary/export", ExportSummary(svc))
}

func GetSummary(svc *reportservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := svc.Summarize(c.UserContext())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to build summary", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Summary built",
			Data:    summary,
		})
	}
}

func ExportSummary(svc *reportservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.Export(c.UserContext())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to export summary", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Summary exported",
			Data:    result,
		})
	}
}
