// TareRoutes registers HTTP routes for the tare registry.
//
// Routes:
//   - GET    /api/tares        : Fetch the whole fish-name → tare mapping.
//   - PUT    /api/tares        : Replace the whole mapping.
//   - PUT    /api/tares/:name  : Set the tare for one fish name.
//   - DELETE /api/tares/:name  : Drop the tare for one fish name.

package webapi

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/thevuong/harvest/pkg/app"
	tareservice "github.com/thevuong/harvest/pkg/service/tare"
)

// TareReplaceRequest carries the full replacement mapping.
type TareReplaceRequest struct {
	Overrides map[string]float64 `json:"overrides" validate:"required"`
}

// TareSetRequest carries one override value.
type TareSetRequest struct {
	Tare float64 `json:"tare" validate:"gte=0"`
}

// paramName reads the :name path parameter. Fish names are arbitrary
// UTF-8 (often Vietnamese), so the segment arrives percent-encoded.
func paramName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func TareRoutes(router fiber.Router, a *app.App) {
	svc := a.TareService
	router.Get("/tares", GetTares(svc))
	router.Put("/tares", ReplaceTares(svc))
	router.Put("/tares/:name", SetTare(svc))
	router.Delete("/tares/:name", RemoveTare(svc))
}

func GetTares(svc *tareservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overrides, err := svc.Overrides(c.UserContext())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to load tares", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Tares loaded",
			Data:    overrides,
		})
	}
}

func ReplaceTares(svc *tareservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TareReplaceRequest](c)
		if input == nil {
			return err
		}
		if err := svc.Replace(c.UserContext(), input.Overrides); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to replace tares", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Tares replaced",
			Data:    input.Overrides,
		})
	}
}

func SetTare(svc *tareservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := paramName(c)
		input, err := BindAndValidate[TareSetRequest](c)
		if input == nil {
			return err
		}
		if err := svc.SetOverride(c.UserContext(), name, input.Tare); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to set tare", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Tare set",
		})
	}
}

func RemoveTare(svc *tareservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := paramName(c)
		if err := svc.RemoveOverride(c.UserContext(), name); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to remove tare", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Tare removed",
		})
	}
}
