//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bioinsight-quotes/internal/domain/user"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/handler/api"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/config"
	"bioinsight-quotes/internal/usecase/commands"
	"bioinsight-quotes/internal/usecase/queries"
	"bioinsight-quotes/tests/common/builder"
	"bioinsight-quotes/tests/common/helper"
	commandsmock "bioinsight-quotes/tests/mock/commands"
	queriesmock "bioinsight-quotes/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VendorRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVendorRequestCommands
	mockQueries  *queriesmock.MockVendorRequestQueries
	actorID      uuid.UUID
	quoteID      uuid.UUID
}

func (s *VendorRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVendorRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVendorRequestQueries(s.mockCtrl)
	h := api.NewVendorRequestHandler(s.mockCommands, s.mockQueries, config.QuoteConfig{
		PublicBaseURL:     "https://quotes.example.com",
		DefaultExpiryDays: 30,
	})

	s.actorID = uuid.New()
	s.quoteID = uuid.New()

	// Stands in for the JWT middleware so tests can pick the actor freely.
	authStub := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleBuyer)
		c.Next()
	}

	quotes := s.router.Group("/api/quotes", authStub)
	quotes.POST("/:id/vendor-requests", h.Send)
	quotes.GET("/:id/vendor-requests", h.List)
	quotes.POST("/:id/vendor-requests/:requestId/cancel", h.Cancel)
	quotes.GET("/:id/comparison", h.Comparison)
	quotes.GET("/:id/comparison/export", h.Export)
}

func (s *VendorRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVendorRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(VendorRequestHandlerTestSuite))
}

func (s *VendorRequestHandlerTestSuite) TestSend() {
	sendBody := map[string]any{
		"vendors": []map[string]any{
			{"email": "sales@vendor-a.example.com", "name": "Vendor A"},
			{"email": "order@vendor-b.example.com"},
		},
	}

	s.Run("success: returns the created requests with links", func() {
		created := []commands.CreatedVendorRequest{
			{
				ID:          uuid.New(),
				VendorEmail: "sales@vendor-a.example.com",
				AccessToken: "tok-a",
				ExpiresAt:   time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
				Link:        "https://quotes.example.com/vendor/tok-a",
			},
			{
				ID:          uuid.New(),
				VendorEmail: "order@vendor-b.example.com",
				AccessToken: "tok-b",
				ExpiresAt:   time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
				Link:        "https://quotes.example.com/vendor/tok-b",
			},
		}
		s.mockCommands.EXPECT().
			SendToVendors(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			Return(created, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", sendBody, "")

		var body []map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body, 2)
		s.Equal("tok-a", body[0]["token"])
		s.Equal("https://quotes.example.com/vendor/tok-a", body[0]["link"])
	})

	s.Run("error: 400 Bad Request when no vendors given", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", map[string]any{"vendors": []any{}}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request when the quote has no items", func() {
		s.mockCommands.EXPECT().
			SendToVendors(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			Return(nil, vendorreq.ErrEmptyQuote).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", sendBody, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Quote has no items")
	})

	s.Run("error: 403 Forbidden for a quote owned by someone else", func() {
		s.mockCommands.EXPECT().
			SendToVendors(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			Return(nil, commands.ErrQuoteAccess).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", sendBody, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *VendorRequestHandlerTestSuite) TestList() {
	s.Run("success: passes the status filter through", func() {
		view, err := builder.NewVendorRequestBuilder().BuildView()
		s.Require().NoError(err)

		s.mockQueries.EXPECT().
			ListByQuote(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, _ user.Role, filter queries.ListFilter) ([]*queries.VendorRequestView, error) {
				s.Require().NotNil(filter.Status)
				s.Equal(vendorreq.StatusSent, *filter.Status)
				return []*queries.VendorRequestView{view}, nil
			}).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+s.quoteID.String()+"/vendor-requests?status=sent", nil, "")

		var body []map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("https://quotes.example.com/vendor/test-access-token", body[0]["link"])
	})

	s.Run("error: 400 Bad Request on an unknown status value", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+s.quoteID.String()+"/vendor-requests?status=frozen", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})

	s.Run("error: 404 Not Found for an unknown quote", func() {
		s.mockQueries.EXPECT().
			ListByQuote(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			Return(nil, queries.ErrQuoteNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})

	s.Run("error: 500 Internal Server Error on a store failure", func() {
		storeErr := infra.WrapRepoErr("failed to list vendor requests", errors.New("connection reset"))
		s.mockQueries.EXPECT().
			ListByQuote(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, gomock.Any()).
			Return(nil, storeErr).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+s.quoteID.String()+"/vendor-requests", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VendorRequestHandlerTestSuite) TestCancel() {
	requestID := uuid.New()
	path := "/api/quotes/" + s.quoteID.String() + "/vendor-requests/"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.quoteID, requestID, s.actorID, user.RoleBuyer).
			Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, path+requestID.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when the request already closed", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.quoteID, requestID, s.actorID, user.RoleBuyer).
			Return(commands.ErrRequestAlreadyClosed).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, path+requestID.String()+"/cancel", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Request already closed")
	})

	s.Run("error: 409 Conflict when the request already expired", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.quoteID, requestID, s.actorID, user.RoleBuyer).
			Return(vendorreq.ErrRequestExpired).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, path+requestID.String()+"/cancel", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Request already expired")
	})

	s.Run("error: 400 Bad Request on a malformed request id", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, path+"not-a-uuid/cancel", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request id")
	})
}

func (s *VendorRequestHandlerTestSuite) TestExport() {
	path := "/api/quotes/" + s.quoteID.String() + "/comparison/export"

	comparison := func() *queries.Comparison {
		view, err := builder.NewVendorRequestBuilder().BuildView()
		s.Require().NoError(err)
		return queries.BuildComparison([]*queries.VendorRequestView{view})
	}

	s.Run("success: csv attachment by default", func() {
		s.mockQueries.EXPECT().
			GetComparison(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, queries.ListFilter{}).
			Return(comparison(), nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/csv")
		s.Contains(rec.Header().Get("Content-Disposition"), "comparison.csv")
		s.Contains(rec.Body.String(), "Human IL-6 ELISA Kit")
	})

	s.Run("success: xlsx when asked for", func() {
		s.mockQueries.EXPECT().
			GetComparison(gomock.Any(), s.quoteID, s.actorID, user.RoleBuyer, queries.ListFilter{}).
			Return(comparison(), nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, path+"?format=xlsx", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Disposition"), "comparison.xlsx")
		s.NotZero(rec.Body.Len())
	})

	s.Run("error: 400 Bad Request on an unknown format", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, path+"?format=pdf", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unsupported format")
	})
}
