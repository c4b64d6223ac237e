//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/handler/api"
	"estate-marketplace/internal/usecase/commands"
	"estate-marketplace/tests/common/builder"
	"estate-marketplace/tests/common/httptest"
	"estate-marketplace/tests/common/testutil"
	commandsmock "estate-marketplace/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationCommands
	buyerID          uuid.UUID
	now              time.Time
	project          project.Project
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	h := api.NewReservationHandler(s.mockReservations)
	s.buyerID = uuid.New()
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.project = builder.NewProjectBuilder().Build()

	g := s.router.Group("/units", fakeAuth(s.buyerID, user.RoleBuyer))
	g.POST("/:id/book", h.Book)
	g.POST("/:id/confirm-deposit", h.ConfirmDeposit)
	g.POST("/:id/cancel-booking", h.CancelBooking)
	g.POST("/:id/under-contract", h.MarkUnderContract)
	g.POST("/:id/mark-sold", h.MarkSold)
	g.POST("/:id/visit", h.RequestVisit)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// bookedResult mirrors what Book returns: a held unit plus its pending booking deal.
func (s *ReservationHandlerTestSuite) bookedResult() *commands.ReservationResult {
	u := builder.NewUnitBuilder().WithProjectID(s.project.ID).MustBuildDomain()
	policy := unit.HoldPolicy{TTL: 48 * time.Hour, DefaultDownPaymentPercent: decimal.NewFromInt(5)}
	s.Require().NoError(u.PlaceHold(s.buyerID, decimal.Zero, policy, s.now))
	d, err := deal.NewBooking(u, s.project.Owner(), s.now)
	s.Require().NoError(err)
	return &commands.ReservationResult{Unit: u, Project: &s.project, Deal: d}
}

// ================================================================================
// TestBook
// ================================================================================

func (s *ReservationHandlerTestSuite) TestBook() {
	unitID := uuid.New()
	url := "/units/" + unitID.String() + "/book"

	s.Run("success: empty body uses default deposit", func() {
		result := s.bookedResult()
		s.mockReservations.EXPECT().
			Book(gomock.Any(), unitID, user.NewActor(s.buyerID, user.RoleBuyer), decimal.Zero).
			Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body struct {
			Unit struct {
				Status string `json:"status"`
				Hold   struct {
					HolderID      uuid.UUID `json:"holderId"`
					DepositAmount float64   `json:"depositAmount"`
					ExpiresAt     time.Time `json:"expiresAt"`
				} `json:"currentHold"`
			} `json:"unit"`
			Deal struct {
				Kind   string `json:"kind"`
				Status string `json:"status"`
			} `json:"deal"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("booked", body.Unit.Status)
		s.Equal(s.buyerID, body.Unit.Hold.HolderID)
		s.InDelta(100_000, body.Unit.Hold.DepositAmount, 0)
		s.True(body.Unit.Hold.ExpiresAt.Equal(s.now.Add(48 * time.Hour)))
		s.Equal("booking", body.Deal.Kind)
		s.Equal("pending", body.Deal.Status)
	})

	s.Run("success: explicit deposit is passed through", func() {
		s.mockReservations.EXPECT().
			Book(gomock.Any(), unitID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ user.Actor, deposit decimal.Decimal) (*commands.ReservationResult, error) {
				s.True(decimal.NewFromInt(250_000).Equal(deposit))
				return s.bookedResult(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"depositAmount": 250000}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: negative deposit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"depositAmount": -1}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: already booked is 409", func() {
		s.mockReservations.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, unit.ErrUnitNotAvailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available for booking")
		s.Equal("conflict", body.Error)
	})

	s.Run("error: lost race is 409", func() {
		s.mockReservations.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, unit.ErrConcurrentUpdate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified by another request")
	})

	s.Run("error: unexpected failure is masked", func() {
		s.mockReservations.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
		s.Equal("internal error", body.Error)
	})

	s.Run("error: malformed unit id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units/abc/book", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

// ================================================================================
// TestConfirmDeposit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirmDeposit() {
	unitID := uuid.New()
	url := "/units/" + unitID.String() + "/confirm-deposit"

	cases := []struct {
		name       string
		body       any
		expectCode int
	}{
		{"missing body", nil, http.StatusBadRequest},
		{"missing reference", map[string]any{}, http.StatusBadRequest},
		{"reference at 100 chars", map[string]any{"paymentReference": strings.Repeat("r", 100)}, http.StatusOK},
		{"reference over 100 chars", map[string]any{"paymentReference": strings.Repeat("r", 101)}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusOK {
				s.mockReservations.EXPECT().ConfirmDeposit(gomock.Any(), unitID, gomock.Any(), gomock.Any()).
					Return(s.bookedResult(), nil)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "token")

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: hold expired", func() {
		s.mockReservations.EXPECT().ConfirmDeposit(gomock.Any(), unitID, gomock.Any(), "TX-1").
			Return(nil, unit.ErrHoldExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentReference": "TX-1"}, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "hold has expired")
		s.Equal("invalid state", body.Error)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelBooking() {
	unitID := uuid.New()
	url := "/units/" + unitID.String() + "/cancel-booking"

	s.Run("success: reason forwarded", func() {
		released := builder.NewUnitBuilder().MustBuildDomain()
		s.mockReservations.EXPECT().CancelBooking(gomock.Any(), unitID, gomock.Any(), "changed my mind").
			Return(&commands.ReservationResult{Unit: released, Project: &s.project}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "changed my mind"}, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "deal")
	})

	s.Run("success: no body", func() {
		s.mockReservations.EXPECT().CancelBooking(gomock.Any(), unitID, gomock.Any(), "").
			Return(&commands.ReservationResult{Unit: builder.NewUnitBuilder().MustBuildDomain(), Project: &s.project}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: reason too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": strings.Repeat("x", 501)}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: stranger cannot cancel", func() {
		s.mockReservations.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCancelForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only the holder")
	})
}

// ================================================================================
// TestMarkUnderContract / TestMarkSold
// ================================================================================

func (s *ReservationHandlerTestSuite) TestMarkUnderContract() {
	unitID := uuid.New()

	s.Run("error: not reserved", func() {
		s.mockReservations.EXPECT().MarkUnderContract(gomock.Any(), unitID, gomock.Any()).
			Return(nil, unit.ErrNotReserved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units/"+unitID.String()+"/under-contract", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unit is not reserved")
	})
}

func (s *ReservationHandlerTestSuite) TestMarkSold() {
	unitID := uuid.New()
	url := "/units/" + unitID.String() + "/mark-sold"

	s.Run("success", func() {
		s.mockReservations.EXPECT().MarkSold(gomock.Any(), unitID, gomock.Any()).
			Return(&commands.ReservationResult{Unit: builder.NewUnitBuilder().MustBuildDomain(), Project: &s.project}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: already sold", func() {
		s.mockReservations.EXPECT().MarkSold(gomock.Any(), unitID, gomock.Any()).Return(nil, unit.ErrUnitSold)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already sold")
	})
}

// ================================================================================
// TestRequestVisit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRequestVisit() {
	unitID := uuid.New()
	url := "/units/" + unitID.String() + "/visit"
	valid := map[string]any{
		"name":    "Sara",
		"phone":   "+20 100 000 0000",
		"email":   "sara@example.com",
		"message": "Weekend please",
	}

	cases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing name", testutil.Field("name", nil)},
		{"missing phone", testutil.Field("phone", nil)},
		{"bad email", testutil.Field("email", "not-an-email")},
		{"message too long", testutil.Field("message", strings.Repeat("m", 1001))},
	}
	for _, tc := range cases {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), valid, tc.mutate), "token")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		})
	}

	s.Run("success: 201 with visit deal", func() {
		u := builder.NewUnitBuilder().MustBuildDomain()
		s.mockReservations.EXPECT().RequestVisit(gomock.Any(), unitID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, actor user.Actor, contact deal.Contact) (*commands.ReservationResult, error) {
				s.Equal(s.buyerID, actor.ID)
				s.Equal("Sara", contact.Name)
				d, err := deal.NewVisitRequest(u, actor.ID, s.project.Owner(), contact, s.now)
				s.Require().NoError(err)
				return &commands.ReservationResult{Unit: u, Project: &s.project, Deal: d}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, valid, "token")

		var body struct {
			Deal struct {
				Kind    string `json:"kind"`
				Contact struct {
					Name  string `json:"name"`
					Email string `json:"email"`
				} `json:"contact"`
				Notes []any `json:"notes"`
			} `json:"deal"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("visit", body.Deal.Kind)
		s.Equal("Sara", body.Deal.Contact.Name)
		s.NotNil(body.Deal.Notes)
	})

	s.Run("error: unit not found", func() {
		s.mockReservations.EXPECT().RequestVisit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, unit.ErrUnitNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, valid, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "unit not found")
	})
}
