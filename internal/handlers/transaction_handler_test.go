package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sales-ledger/internal/dto"
	apperrors "sales-ledger/internal/errors"
	"sales-ledger/internal/models"
	"sales-ledger/internal/services/service_mocks"
	"sales-ledger/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionQueryServiceInterface
	handler     *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionQueryServiceInterface(s.ctrl)
	s.handler = &TransactionHandler{
		queryService: s.mockService,
		validator:    validation.NewTransactionQueryValidator(),
	}
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) request(query string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions"+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return rec, c
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Success() {
	name := "Alice Smith"
	response := &dto.ListTransactionsResponse{
		Success: true,
		Data: []dto.TransactionResponse{
			{ID: "1", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), CustomerName: &name},
		},
		Meta: dto.PaginationMeta{TotalItems: 1, TotalPages: 1, CurrentPage: 1, PageSize: 10},
	}
	s.mockService.EXPECT().ListTransactions(gomock.Any()).Return(response, nil)

	rec, c := s.request("")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(true, body["success"])

	data := body["data"].([]interface{})
	s.Require().Len(data, 1)
	first := data[0].(map[string]interface{})
	s.Equal("1", first["id"])
	s.Equal("Alice Smith", first["customerName"])

	meta := body["meta"].(map[string]interface{})
	s.Equal(float64(1), meta["totalItems"])
	s.Equal(float64(10), meta["pageSize"])
}

func (s *TransactionHandlerTestSuite) TestListTransactions_FiltersReachService() {
	var captured models.TransactionFilters
	s.mockService.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(
		func(filters models.TransactionFilters) (*dto.ListTransactionsResponse, error) {
			captured = filters
			return &dto.ListTransactionsResponse{Success: true, Data: []dto.TransactionResponse{}}, nil
		})

	rec, c := s.request("?search=smith&customerRegions=North,South&sortBy=quantity&sortOrder=asc&page=2&pageSize=25")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("smith", captured.Search)
	s.Equal([]string{"North", "South"}, captured.CustomerRegions)
	s.Equal(models.SortByQuantity, captured.SortBy)
	s.Equal(models.SortOrderAsc, captured.SortOrder)
	s.Equal(2, captured.Page)
	s.Equal(25, captured.PageSize)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidInputSkipsStorage() {
	// No EXPECT on the service: validation failure must issue zero queries

	rec, c := s.request("?ageMin=abc&page=0")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(false, body["success"])
	s.Equal("Invalid query parameters", body["error"])

	details := body["details"].(map[string]interface{})
	s.Contains(details, "ageMin")
	s.Contains(details, "page")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_StorageFailureIsOpaque() {
	s.mockService.EXPECT().ListTransactions(gomock.Any()).
		Return(nil, apperrors.NewStorage(errors.New("pq: connection refused")))

	rec, c := s.request("")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Internal server error", body["error"])
	s.NotContains(rec.Body.String(), "pq:")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_UnknownErrorBecomes500() {
	s.mockService.EXPECT().ListTransactions(gomock.Any()).
		Return(nil, errors.New("plain failure"))

	rec, c := s.request("")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "plain failure")
}
