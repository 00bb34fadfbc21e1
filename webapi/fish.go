// FishRoutes registers HTTP routes for the fish catalogue and its
// weighings.
//
// Routes:
//   - POST   /api/fish                 : Add a fish type.
//   - GET    /api/fish                 : List the catalogue, price-sorted.
//   - GET    /api/fish/live            : Stream catalogue snapshots over SSE.
//   - GET    /api/fish/:id             : Fetch one fish type.
//   - PUT    /api/fish/:id             : Edit a fish type.
//   - DELETE /api/fish/:id             : Delete a fish type and its weighings.
//   - POST   /api/fish/:id/weighings   : Record a weighing for the fish.
//   - GET    /api/fish/:id/weighings   : List the fish's weighings in entry order.

package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thevuong/harvest/pkg/app"
	"github.com/thevuong/harvest/pkg/dto"
	fishservice "github.com/thevuong/harvest/pkg/service/fish"
)

func FishRoutes(router fiber.Router, a *app.App) {
	svc := a.FishService
	router.Post("/fish", CreateFish(svc))
	router.Get("/fish", ListFish(svc))
	router.Get("/fish/live", LiveFish(a))
	router.Get("/fish/:id", GetFish(svc))
	router.Put("/fish/:id", UpdateFish(svc))
	router.Delete("/fish/:id", DeleteFish(svc))
	router.Post("/fish/:id/weighings", RecordWeighing(svc))
	router.Get("/fish/:id/weighings", ListWeighings(svc))
}

func CreateFish(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.FishCreate](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateFish(c.UserContext(), *input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to create fish", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Fish created",
			Data:    created,
		})
	}
}

func ListFish(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.ListFish(c.UserContext())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to list fish", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Fish listed",
			Data:    list,
		})
	}
}

func GetFish(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		read, err := svc.GetFish(c.UserContext(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to get fish", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Fish found",
			Data:    read,
		})
	}
}

func UpdateFish(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		input, err := BindAndValidate[dto.FishUpdate](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateFish(c.UserContext(), id, *input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to update fish", err.Error())
		}
		if updated == nil {
			// vanished concurrently; the edit was skipped
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Fish not found", nil)
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Fish updated",
			Data:    updated,
		})
	}
}

func DeleteFish(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		if err := svc.DeleteFish(c.UserContext(), id); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to delete fish", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Fish deleted",
		})
	}
}

func RecordWeighing(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		input, err := BindAndValidate[dto.WeighingCreate](c)
		if input == nil {
			return err
		}
		input.FishID = id
		recorded, err := svc.RecordWeighing(c.UserContext(), *input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to record weighing", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Weighing recorded",
			Data:    recorded,
		})
	}
}

func ListWeighings(svc *fishservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		list, err := svc.ListWeighings(c.UserContext(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to list weighings", err.Error())
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Weighings listed",
			Data:    list,
		})
	}
}
