package api

import (
	"errors"
	"net/http"

	"bioinsight-quotes/internal/domain/vendorreq"
	reqdto "bioinsight-quotes/internal/handler/dto/request"
	resdto "bioinsight-quotes/internal/handler/dto/response"
	"bioinsight-quotes/internal/handler/httperr"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/usecase/commands"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// VendorHandler serves the tokened vendor portal. There is no login here;
// possession of the link is the credential.
type VendorHandler struct {
	cmds commands.VendorRequestCommands
	q    queries.VendorRequestQueries
}

func NewVendorHandler(cmds commands.VendorRequestCommands, q queries.VendorRequestQueries) *VendorHandler {
	return &VendorHandler{cmds: cmds, q: q}
}

// @Summary View request
// @Description Show the frozen quote snapshot behind a vendor link
// @Tags vendor-portal
// @Produce json
// @Param token path string true "Access token"
// @Success 200 {object} resdto.VendorPortalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /vendor/{token} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	view, err := h.q.GetVendorPortal(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortVendorPortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVendorPortalView(view))
}

// @Summary Submit response
// @Description Record the vendor's offer for each line of the snapshot
// @Tags vendor-portal
// @Accept json
// @Produce json
// @Param token path string true "Access token"
// @Param request body reqdto.VendorRespondRequest true "Response items"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /vendor/{token}/respond [post]
func (h *VendorHandler) Respond(c *gin.Context) {
	var req reqdto.VendorRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Respond(c.Request.Context(), c.Param("token"), req.ToInput()); err != nil {
		abortVendorPortalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortVendorPortalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVendorRequestNotFound), errors.Is(err, queries.ErrVendorRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, vendorreq.ErrAlreadyResponded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Response already submitted", nil)
	case errors.Is(err, vendorreq.ErrRequestExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Request expired", nil)
	case errors.Is(err, vendorreq.ErrRequestCancelled):
		httperr.AbortWithError(c, http.StatusGone, err, "Request cancelled", nil)
	case errors.Is(err, vendorreq.ErrUnknownLine),
		errors.Is(err, vendorreq.ErrDuplicateLine),
		errors.Is(err, vendorreq.ErrEmptyResponse):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Response does not match the request", nil)
	case infra.IsKind(err, infra.KindDBFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request failed", nil)
	}
}
