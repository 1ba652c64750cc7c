package social

import (
	"errors"

	"backend-lumashare/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/likes/toggle", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			GalleryItemID string `json:"gallery_item_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.GalleryItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "gallery_item_id required")
		}

		liked, err := svc.ToggleLike(c.Context(), body.GalleryItemID, auth.UserID(c), auth.Email(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		action := "unliked"
		if liked {
			action = "liked"
		}
		return c.JSON(fiber.Map{"liked": liked, "action": action})
	})

	r.Post("/comments", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			GalleryItemID string `json:"gallery_item_id"`
			Content       string `json:"content"`
		}
		if err := c.BodyParser(&body); err != nil || body.GalleryItemID == "" || body.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "gallery_item_id and content required")
		}

		comment, err := svc.AddComment(c.Context(), body.GalleryItemID, auth.UserID(c), auth.Email(c), body.Content)
		if err != nil {
			if errors.Is(err, ErrEmptyContent) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
	})

	r.Get("/comments/:itemID", func(c *fiber.Ctx) error {
		comments, err := svc.Comments(c.Context(), c.Params("itemID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if comments == nil {
			comments = []Comment{}
		}
		return c.JSON(fiber.Map{"comments": comments})
	})
}
