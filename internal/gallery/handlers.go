package gallery

import (
	"encoding/json"
	"strconv"

	"backend-lumashare/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware, optionalAuth fiber.Handler) {
	// Listing degrades to anonymous on a bad token instead of rejecting.
	r.Get("/", optionalAuth, func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))

		q := ListQuery{
			ViewerID:     auth.UserID(c),
			SharedWithMe: c.QueryBool("shared_with_me"),
			Page:         page,
			PageSize:     pageSize,
		}
		if c.QueryBool("mine") {
			q.OwnerID = q.ViewerID
		}
		// Owner-scoped views are empty for anonymous viewers, never an error.
		if q.ViewerID == "" && (c.QueryBool("mine") || q.SharedWithMe) {
			return c.JSON([]Item{})
		}

		items, err := svc.List(c.Context(), q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if items == nil {
			items = []Item{}
		}
		return c.JSON(items)
	})

	r.Get("/:id", optionalAuth, func(c *fiber.Ctx) error {
		item, err := svc.Get(c.Context(), c.Params("id"), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		}
		return c.JSON(item)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Item
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Type == "" || req.Src == "" {
			return fiber.NewError(fiber.StatusBadRequest, "type and src required")
		}
		req.UserID = auth.UserID(c)

		item, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	r.Put("/", authMiddleware, func(c *fiber.Ctx) error {
		var patches []ItemPatch
		if err := json.Unmarshal(c.Body(), &patches); err != nil {
			var one ItemPatch
			if err := json.Unmarshal(c.Body(), &one); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
			}
			patches = []ItemPatch{one}
		}
		return c.JSON(svc.UpdateItems(c.Context(), auth.UserID(c), patches))
	})

	r.Delete("/", authMiddleware, func(c *fiber.Ctx) error {
		var ids []string
		if err := json.Unmarshal(c.Body(), &ids); err != nil {
			var one string
			if err := json.Unmarshal(c.Body(), &one); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
			}
			ids = []string{one}
		}
		return c.JSON(svc.DeleteItems(c.Context(), auth.UserID(c), ids))
	})
}
