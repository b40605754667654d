package api

import (
	"errors"
	"net/http"

	"bioinsight-quotes/internal/domain/user"
	reqdto "bioinsight-quotes/internal/handler/dto/request"
	resdto "bioinsight-quotes/internal/handler/dto/response"
	"bioinsight-quotes/internal/handler/httperr"
	"bioinsight-quotes/internal/handler/middleware"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/usecase/commands"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	cmds commands.QuoteCommands
	q    queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q}
}

// @Summary Create quote
// @Description Create a new purchase quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Create quote request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actorID, commands.CreateQuoteInput{Title: req.Title})
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create quote failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get quote
// @Description Get a quote with its items
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), quoteID, actorID, role)
	if err != nil {
		abortQuoteError(c, err)
		return
	}
	resp, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List quotes
// @Description List the caller's quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QuoteListResponse
// @Failure 401 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByOwner(c.Request.Context(), actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list quotes", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteListItems(items))
}

// @Summary Add quote item
// @Description Add a line item to a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.AddQuoteItemRequest true "Add item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	var req reqdto.AddQuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.AddItem(c.Request.Context(), quoteID, actorID, role, req.ToInput())
	if err != nil {
		abortQuoteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update quote item
// @Description Update quantity, price, or note of a line item
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateQuoteItemRequest true "Update item request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/items/{itemId} [patch]
func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	var req reqdto.UpdateQuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), quoteID, itemID, actorID, role, req.ToInput()); err != nil {
		abortQuoteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete quote item
// @Description Remove a line item from a quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param itemId path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) DeleteItem(c *gin.Context) {
	actorID, role, quoteID, ok := actorAndQuoteID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	if err := h.cmds.DeleteItem(c.Request.Context(), quoteID, itemID, actorID, role); err != nil {
		abortQuoteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrQuoteNotFound), errors.Is(err, queries.ErrQuoteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", nil)
	case errors.Is(err, commands.ErrQuoteItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quote item not found", nil)
	case errors.Is(err, commands.ErrQuoteAccess), errors.Is(err, queries.ErrQuoteAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case infra.IsKind(err, infra.KindDBFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request failed", nil)
	}
}

func actorAndQuoteID(c *gin.Context) (uuid.UUID, user.Role, uuid.UUID, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote id", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	return actorID, role, quoteID, true
}
