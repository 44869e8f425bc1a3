package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/storage"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// UploadsHandler hands out presigned image upload URLs.
type UploadsHandler struct {
	images *storage.ImageStore
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(images *storage.ImageStore) *UploadsHandler {
	return &UploadsHandler{images: images}
}

// PresignImage POST /api/uploads/images. The client PUTs image bytes to the
// returned URL and attaches the key to a product.
func (h *UploadsHandler) PresignImage(c *fiber.Ctx) error {
	if _, ok := auth.IdentityFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	key, url, err := h.images.PresignedUpload(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"key": key, "upload_url": url}})
}
