package storage

import (
	"path"

	"backend-lumashare/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			FileName string `json:"file_name"`
			Kind     string `json:"kind"`
		}
		_ = c.BodyParser(&body)
		if body.FileName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "file_name required")
		}

		userID := auth.UserID(c)
		objectPath := path.Join(userID, body.FileName)
		id, err := svc.SaveObject(c.Context(), userID, objectPath, body.Kind)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"id":  id,
			"url": svc.PublicURL(objectPath),
		})
	})
}
