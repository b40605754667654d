//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/handler/api"
	"bioinsight-quotes/internal/handler/middleware"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/usecase/queries"
	"bioinsight-quotes/tests/common/helper"
	commandsmock "bioinsight-quotes/tests/mock/commands"
	queriesmock "bioinsight-quotes/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VendorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVendorRequestCommands
	mockQueries  *queriesmock.MockVendorRequestQueries
	handler      *api.VendorHandler
}

func (s *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVendorRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVendorRequestQueries(s.mockCtrl)
	s.handler = api.NewVendorHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/vendor/:token", s.handler.Get)
	s.router.POST("/vendor/:token/respond", s.handler.Respond)
}

func (s *VendorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVendorHandlerSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}

func (s *VendorHandlerTestSuite) portalView() *queries.VendorPortalView {
	return &queries.VendorPortalView{
		RequestID:   uuid.New(),
		QuoteTitle:  "Q3 Immunology Reagents",
		VendorEmail: "sales@vendor-a.example.com",
		ExpiresAt:   time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Lines: []vendorreq.SnapshotLine{
			{LineID: uuid.New(), LineNo: 1, ProductName: "Human IL-6 ELISA Kit", Quantity: 2, Unit: "kit"},
		},
	}
}

func (s *VendorHandlerTestSuite) respondBody(lineID uuid.UUID) map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{
				"quoteItemId":  lineID.String(),
				"unitPrice":    decimal.NewFromInt(420000),
				"currency":     "KRW",
				"leadTimeDays": 7,
				"moq":          1,
			},
		},
	}
}

func (s *VendorHandlerTestSuite) TestGet() {
	s.Run("success: returns snapshot for an open request", func() {
		view := s.portalView()
		s.mockQueries.EXPECT().GetVendorPortal(gomock.Any(), "tok-open").
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/tok-open", nil, "")

		var body map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Q3 Immunology Reagents", body["quoteTitle"])
	})

	s.Run("error: maps lifecycle states to statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
		}{
			{name: "unknown token", queryError: queries.ErrVendorRequestNotFound, expectedStatus: http.StatusNotFound},
			{name: "already responded", queryError: vendorreq.ErrAlreadyResponded, expectedStatus: http.StatusConflict},
			{name: "expired", queryError: vendorreq.ErrRequestExpired, expectedStatus: http.StatusGone},
			{name: "cancelled", queryError: vendorreq.ErrRequestCancelled, expectedStatus: http.StatusGone},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetVendorPortal(gomock.Any(), "tok").
					Return(nil, tc.queryError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/tok", nil, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 500 Internal Server Error on a store failure", func() {
		storeErr := infra.WrapRepoErr("failed to find vendor request", errors.New("connection reset"))
		s.mockQueries.EXPECT().GetVendorPortal(gomock.Any(), "tok").
			Return(nil, storeErr).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/tok", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VendorHandlerTestSuite) TestRespond() {
	lineID := uuid.New()

	s.Run("success: returns 204 on accepted response", func() {
		s.mockCommands.EXPECT().Respond(gomock.Any(), "tok-open", gomock.Any()).
			Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/tok-open/respond", s.respondBody(lineID), "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on empty items", func() {
		body := map[string]any{"items": []map[string]any{}}
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/tok/respond", body, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps command errors to statuses", func() {
		testCases := []struct {
			name           string
			commandError   error
			expectedStatus int
		}{
			{name: "double submission", commandError: vendorreq.ErrAlreadyResponded, expectedStatus: http.StatusConflict},
			{name: "expired", commandError: vendorreq.ErrRequestExpired, expectedStatus: http.StatusGone},
			{name: "cancelled", commandError: vendorreq.ErrRequestCancelled, expectedStatus: http.StatusGone},
			{name: "line not in snapshot", commandError: vendorreq.ErrUnknownLine, expectedStatus: http.StatusBadRequest},
			{name: "duplicate line", commandError: vendorreq.ErrDuplicateLine, expectedStatus: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Respond(gomock.Any(), "tok", gomock.Any()).
					Return(tc.commandError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/tok/respond", s.respondBody(lineID), "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
