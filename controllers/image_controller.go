package controllers

import (
	"net/http"
	"strconv"

	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ImageController struct {
	images *services.ImageService
	log    *zap.Logger
}

func NewImageController(images *services.ImageService, log *zap.Logger) *ImageController {
	return &ImageController{images: images, log: log}
}

// ownerFromForm reads the owner reference from the multipart form. Exactly
// one of the owner id fields must be present; the carousel owner needs no
// id of its own because it hangs off the tenant.
func ownerFromForm(c *gin.Context) (string, uint, bool) {
	refs := []struct {
		field string
		owner string
	}{
		{"entertainment_id", services.OwnerEntertainment},
		{"food_spot_id", services.OwnerFoodSpot},
		{"suggestion_id", services.OwnerSuggestion},
	}

	var (
		owner   string
		ownerID uint
		found   int
	)
	for _, ref := range refs {
		raw := c.PostForm(ref.field)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid "+ref.field)
			return "", 0, false
		}
		owner, ownerID = ref.owner, uint(id)
		found++
	}
	if c.PostForm("carousel") == "true" {
		owner = services.OwnerCarousel
		found++
	}

	if found != 1 {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest,
			"exactly one owner reference is required")
		return "", 0, false
	}
	return owner, ownerID, true
}

// Upload accepts a multipart file plus one owner reference, stores the file
// on the media host, and links it to the owner.
func (ic *ImageController) Upload(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	owner, ownerID, ok := ownerFromForm(c)
	if !ok {
		return
	}
	if owner == services.OwnerCarousel {
		ownerID = hotelID
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "unreadable file")
		return
	}
	defer file.Close()

	image, err := ic.images.Attach(c.Request.Context(), hotelID, owner, ownerID, fileHeader.Filename, file)
	if err != nil {
		ic.log.Error("image attach failed",
			zap.String("owner", owner), zap.Uint("owner_id", ownerID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, image)
}

type principalPayload struct {
	Owner   string `json:"owner"`
	OwnerID uint   `json:"owner_id"`
}

// SetPrincipal makes the given image the owner's single principal image.
func (ic *ImageController) SetPrincipal(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	imageID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload principalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	if payload.Owner == services.OwnerCarousel {
		payload.OwnerID = hotelID
	}

	if err := ic.images.SetPrincipal(hotelID, payload.Owner, payload.OwnerID, imageID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "principal updated"})
}

func (ic *ImageController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	imageID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ic.images.Delete(hotelID, imageID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
