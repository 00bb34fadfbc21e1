// WeighingRoutes registers HTTP routes for weighings addressed by
// their own id rather than through the owning fish.
//
// Routes:
//   - PUT    /api/weighings/:id : Edit a weighing.
//   - DELETE /api/weighings     : Batch delete weighings by id list.

package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thevuong/harvest/pkg/app"
	"github.com/thevuong/harvest/pkg/dto"
	fishservice "github.com/thevuong/harvest/pkg/service/fish"
)

func WeighingRoutes(router fiber.Router, a *app.App) {
	svc := a.FishService
	router.Put("/weighings/:id", UpdateWeighing(svc))
	router.Delete("/weighings", DeleteWeighings(svc))
}

func UpdateWeighing(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		input, err := BindAndValidate[dto.WeighingUpdate](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateWeighing(c.UserContext(), id, *input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to update weighing", err.Error())
		}
		if updated == nil {
			// vanished concurrently; the edit was skipped
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Weighing not found", nil)
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Weighing updated",
			Data:    updated,
		})
	}
}

func DeleteWeighings(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.WeighingDelete](c)
		if input == nil {
			return err
		}
		if err := svc.DeleteWeighings(c.UserContext(), input.IDs); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to delete weighings", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Weighings deleted",
		})
	}
}
