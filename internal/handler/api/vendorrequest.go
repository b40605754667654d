package api

import (
	"errors"
	"fmt"
	"net/http"

	"bioinsight-quotes/internal/domain/vendorreq"
	reqdto "bioinsight-quotes/internal/handler/dto/request"
	resdto "bioinsight-quotes/internal/handler/dto/response"
	"bioinsight-quotes/internal/handler/httperr"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/config"
	"bioinsight-quotes/internal/usecase/commands"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendorRequestHandler struct {
	cmds commands.VendorRequestCommands
	q    queries.VendorRequestQueries
	cfg  config.QuoteConfig
}

func NewVendorRequestHandler(cmds commands.VendorRequestCommands, q queries.VendorRequestQueries, cfg config.QuoteConfig) *VendorRequestHandler {
	return &VendorRequestHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Send vendor requests
// @Description Freeze the quote into a snapshot and send it to one or more vendors
// @Tags vendor-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.SendVendorRequestsRequest true "Send request"
// @Success 201 {array} resdto.CreatedVendorRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/vendor-requests [post]
func (h *VendorRequestHandler) Send(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	var req reqdto.SendVendorRequestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.SendToVendors(c.Request.Context(), quoteID, actorID, role, req.ToInput())
	if err != nil {
		abortVendorRequestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedVendorRequests(created))
}

// @Summary List vendor requests
// @Description List vendor requests of a quote with their effective status
// @Tags vendor-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param status query string false "Filter by effective status (sent, responded, expired, cancelled)"
// @Param vendor query string false "Filter by vendor name or email substring"
// @Success 200 {array} resdto.VendorRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/vendor-requests [get]
func (h *VendorRequestHandler) List(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	filter, err := parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	views, err := h.q.ListByQuote(c.Request.Context(), quoteID, actorID, role, filter)
	if err != nil {
		abortVendorRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVendorRequestViews(views, h.cfg.PublicBaseURL))
}

// @Summary Cancel vendor request
// @Description Withdraw an open vendor request
// @Tags vendor-requests
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param requestId path string true "Vendor request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/vendor-requests/{requestId}/cancel [post]
func (h *VendorRequestHandler) Cancel(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), quoteID, requestID, actorID, role); err != nil {
		abortVendorRequestError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get comparison
// @Description Reconcile vendor responses into a side-by-side comparison grid
// @Tags vendor-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param status query string false "Filter by effective status"
// @Param vendor query string false "Filter by vendor name or email substring"
// @Success 200 {object} resdto.ComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/comparison [get]
func (h *VendorRequestHandler) Comparison(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	filter, err := parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	cmp, err := h.q.GetComparison(c.Request.Context(), quoteID, actorID, role, filter)
	if err != nil {
		abortVendorRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromComparison(cmp))
}

// @Summary Export comparison
// @Description Download the comparison grid as CSV or XLSX
// @Tags vendor-requests
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param format query string false "Export format: csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/comparison/export [get]
func (h *VendorRequestHandler) Export(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		httperr.AbortWithError(c, http.StatusBadRequest, fmt.Errorf("unsupported format %q", format), "Unsupported format", nil)
		return
	}

	cmp, err := h.q.GetComparison(c.Request.Context(), quoteID, actorID, role, queries.ListFilter{})
	if err != nil {
		abortVendorRequestError(c, err)
		return
	}

	switch format {
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="comparison.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = queries.WriteComparisonXLSX(c.Writer, cmp)
	default:
		c.Header("Content-Disposition", `attachment; filename="comparison.csv"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = queries.WriteComparisonCSV(c.Writer, cmp)
	}
	if err != nil {
		if errors.Is(err, queries.ErrNothingToExport) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Nothing to export", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}
}

func parseListFilter(c *gin.Context) (queries.ListFilter, error) {
	filter := queries.ListFilter{Vendor: c.Query("vendor")}
	if raw := c.Query("status"); raw != "" {
		status := vendorreq.Status(raw)
		if !status.IsValid() {
			return queries.ListFilter{}, fmt.Errorf("unknown status %q", raw)
		}
		filter.Status = &status
	}
	return filter, nil
}

func abortVendorRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrQuoteNotFound), errors.Is(err, queries.ErrQuoteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", nil)
	case errors.Is(err, commands.ErrVendorRequestNotFound), errors.Is(err, queries.ErrVendorRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor request not found", nil)
	case errors.Is(err, commands.ErrQuoteAccess), errors.Is(err, queries.ErrQuoteAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrRequestAlreadyClosed),
		errors.Is(err, vendorreq.ErrAlreadyResponded),
		errors.Is(err, vendorreq.ErrRequestCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request already closed", nil)
	case errors.Is(err, vendorreq.ErrRequestExpired):
		// Buyer-side state conflict; 410 is reserved for the vendor portal.
		httperr.AbortWithError(c, http.StatusConflict, err, "Request already expired", nil)
	case errors.Is(err, vendorreq.ErrEmptyQuote):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quote has no items", nil)
	case infra.IsKind(err, infra.KindDBFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request failed", nil)
	}
}
