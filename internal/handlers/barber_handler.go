package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type BarberHandler struct {
	photos *ucAdmin.Photos
}

func NewBarberHandler(photos *ucAdmin.Photos) *BarberHandler {
	return &BarberHandler{photos: photos}
}

func (h *BarberHandler) List(c *gin.Context) {
	roster, err := h.photos.Roster(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, roster)
}
