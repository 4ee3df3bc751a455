package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type AdminHandler struct {
	auth     *ucAdmin.Authenticator
	exporter *ucAdmin.Exporter
	photos   *ucAdmin.Photos
	audit    *audit.Dispatcher
}

func NewAdminHandler(
	auth *ucAdmin.Authenticator,
	exporter *ucAdmin.Exporter,
	photos *ucAdmin.Photos,
	auditDispatcher *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		exporter: exporter,
		photos:   photos,
		audit:    auditDispatcher,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Login ---------

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, codeInvalidRequest, "password is required.")
		return
	}

	res, err := h.auth.Login(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAdmin,
		Action:   audit.ActionAdminLogin,
		Metadata: map[string]string{"client_ip": c.ClientIP()},
	})

	httpresp.OK(c, res)
}

// --------- Exports ---------

func (h *AdminHandler) ExportBookings(c *gin.Context) {
	exp, err := h.exporter.Build(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exp.Filename))
	c.Data(http.StatusOK, ucAdmin.XLSXContentType, exp.Data)
}

func (h *AdminHandler) ArchiveBookings(c *gin.Context) {
	res, err := h.exporter.Archive(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAdmin,
		Action:   audit.ActionExportArchived,
		Entity:   "export",
		EntityID: res.Key,
	})

	httpresp.Created(c, res)
}

// --------- Photos ---------

// UploadPhoto accepts a multipart "photo" field or a raw image body.
func (h *AdminHandler) UploadPhoto(c *gin.Context) {
	data, err := readUpload(c)
	if err != nil {
		httperr.BadRequest(c, ucAdmin.CodeInvalidImage, "Could not read the uploaded image.")
		return
	}

	res, err := h.photos.Upload(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAdmin,
		Action:   audit.ActionPhotoUploaded,
		Entity:   "barber",
		EntityID: res.BarberID,
	})

	httpresp.OK(c, res)
}

func readUpload(c *gin.Context) ([]byte, error) {
	limit := int64(ucAdmin.MaxUploadBytes) + 1

	if fh, err := c.FormFile("photo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, limit))
	}

	return io.ReadAll(io.LimitReader(c.Request.Body, limit))
}
