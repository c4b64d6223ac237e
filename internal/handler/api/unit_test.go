//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/handler/api"
	"estate-marketplace/internal/usecase/commands"
	"estate-marketplace/internal/usecase/queries"
	"estate-marketplace/tests/common/builder"
	"estate-marketplace/tests/common/httptest"
	"estate-marketplace/tests/common/testutil"
	commandsmock "estate-marketplace/tests/mock/commands"
	queriesmock "estate-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UnitHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockInventory *commandsmock.MockInventoryCommands
	mockQueries   *queriesmock.MockUnitQueries
	handler       *api.UnitHandler
	actorID       uuid.UUID
}

// fakeAuth stands in for RequireAuth: any Authorization header is a developer.
func fakeAuth(actorID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set("user_id", actorID)
		c.Set("user_role", role)
		c.Next()
	}
}

func (s *UnitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockInventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUnitQueries(s.mockCtrl)
	s.handler = api.NewUnitHandler(s.mockInventory, s.mockQueries)
	s.actorID = uuid.New()

	g := s.router.Group("/units", fakeAuth(s.actorID, user.RoleDeveloper))
	g.GET("/search", s.handler.SearchUnits)
	g.GET("/project/:id", s.handler.ListProjectUnits)
	g.GET("/project/:id/stats", s.handler.ProjectStats)
	g.GET("/:id", s.handler.GetUnit)
	g.POST("/project/:id", s.handler.CreateUnit)
	g.POST("/project/:id/bulk", s.handler.CreateUnitsBulk)
	g.PATCH("/:id", s.handler.UpdateUnit)
	g.DELETE("/:id", s.handler.DeleteUnit)
}

func (s *UnitHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUnitHandlerSuite(t *testing.T) {
	suite.Run(t, new(UnitHandlerTestSuite))
}

type testCaseUnit struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateUnit
// ================================================================================

func (s *UnitHandlerTestSuite) TestCreateUnit() {
	p := builder.NewProjectBuilder().Build()
	url := "/units/project/" + p.ID.String()
	b := builder.NewUnitBuilder().WithProjectID(p.ID).WithDownPayment(10)
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuildDomain()

	cases := []testCaseUnit{
		{name: "price zero is allowed", mutate: testutil.Field("price", 0), expectCode: http.StatusCreated},
		{name: "negative price", mutate: testutil.Field("price", -1), expectCode: http.StatusBadRequest},
		{name: "zero area", mutate: testutil.Field("area", 0), expectCode: http.StatusBadRequest},
		{name: "missing unitNumber", mutate: testutil.Field("unitNumber", nil), expectCode: http.StatusBadRequest},
		{name: "missing type", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
		{name: "unitNumber too long", mutate: testutil.Field("unitNumber", strings.Repeat("9", 51)), expectCode: http.StatusBadRequest},
		{name: "negative bedrooms", mutate: testutil.Field("bedrooms", -1), expectCode: http.StatusBadRequest},
		{name: "down payment above 100", mutate: testutil.Field("paymentPlan", map[string]any{"minDownPaymentPercent": 101, "installmentYears": 5}), expectCode: http.StatusBadRequest},
		{name: "down payment 100 is allowed", mutate: testutil.Field("paymentPlan", map[string]any{"minDownPaymentPercent": 100, "installmentYears": 0}), expectCode: http.StatusCreated},
	}

	s.Run("success: 201 with project unit count", func() {
		updated := p
		updated.UnitCount = 1
		s.mockInventory.EXPECT().
			CreateUnit(gomock.Any(), p.ID, user.NewActor(s.actorID, user.RoleDeveloper), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ user.Actor, d unit.Details) (*commands.ReservationResult, error) {
				s.True(decimal.NewFromInt(2_000_000).Equal(d.Price))
				s.Require().NotNil(d.PaymentPlan)
				s.True(decimal.NewFromInt(10).Equal(d.PaymentPlan.MinDownPaymentPercent))
				return &commands.ReservationResult{Unit: created, Project: &updated}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body struct {
			Unit struct {
				ID            uuid.UUID `json:"id"`
				Status        string    `json:"status"`
				PricePerMeter float64   `json:"pricePerMeter"`
			} `json:"unit"`
			Project struct {
				UnitCount int `json:"unitCount"`
			} `json:"project"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.Unit.ID)
		s.Equal("available", body.Unit.Status)
		s.InDelta(20000, body.Unit.PricePerMeter, 0)
		s.Equal(1, body.Project.UnitCount)
	})

	s.Run("validation boundaries", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockInventory.EXPECT().CreateUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&commands.ReservationResult{Unit: created, Project: &p}, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: listing project is 400", func() {
		s.mockInventory.EXPECT().CreateUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, project.ErrNotProjectKind)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "units can only be added to a project")
		s.Equal("validation failed", body.Error)
	})

	s.Run("error: not the owner is 403", func() {
		s.mockInventory.EXPECT().CreateUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, project.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "owner")
	})

	s.Run("error: malformed project id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units/project/not-a-uuid", reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: unknown field rejected", func() {
		binding.EnableDecoderDisallowUnknownFields = true
		defer func() { binding.EnableDecoderDisallowUnknownFields = false }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "sold")), "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *UnitHandlerTestSuite) TestCreateUnitsBulk() {
	p := builder.NewProjectBuilder().Build()
	url := "/units/project/" + p.ID.String() + "/bulk"
	first := builder.NewUnitBuilder().WithProjectID(p.ID).WithUnitNumber("A-1")
	second := builder.NewUnitBuilder().WithProjectID(p.ID).WithUnitNumber("A-2")

	s.Run("success: creates all", func() {
		units := []*unit.Unit{first.MustBuildDomain(), second.MustBuildDomain()}
		s.mockInventory.EXPECT().CreateUnitsBulk(gomock.Any(), p.ID, gomock.Any(), gomock.Len(2)).
			Return(units, &p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"units": []any{first.BuildCreateRequestDTO(), second.BuildCreateRequestDTO()},
		}, "token")

		var body struct {
			Count int `json:"count"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.Count)
	})

	s.Run("error: empty batch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"units": []any{}}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: one invalid unit rejects the batch", func() {
		bad := testutil.DtoMap(s.T(), second.BuildCreateRequestDTO(), testutil.Field("area", -5))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"units": []any{first.BuildCreateRequestDTO(), bad},
		}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: duplicate unit number", func() {
		s.mockInventory.EXPECT().CreateUnitsBulk(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrDuplicateUnitNumber)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"units": []any{first.BuildCreateRequestDTO()},
		}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "unit number already exists")
	})
}

// ================================================================================
// TestUpdateUnit / TestDeleteUnit
// ================================================================================

func (s *UnitHandlerTestSuite) TestUpdateUnit() {
	u := builder.NewUnitBuilder().MustBuildDomain()
	p := builder.NewProjectBuilder().Build()
	url := "/units/" + u.ID().String()

	s.Run("success: only sent fields are patched", func() {
		s.mockInventory.EXPECT().UpdateUnit(gomock.Any(), u.ID(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ user.Actor, patch unit.Patch) (*commands.ReservationResult, error) {
				s.Require().NotNil(patch.Price)
				s.True(decimal.NewFromInt(3_000_000).Equal(*patch.Price))
				s.Nil(patch.Area)
				s.Nil(patch.UnitNumber)
				return &commands.ReservationResult{Unit: u, Project: &p}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price": 3000000}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: zero area", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"area": 0}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: unit not found", func() {
		s.mockInventory.EXPECT().UpdateUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, unit.ErrUnitNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"floor": 3}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "unit not found")
	})
}

func (s *UnitHandlerTestSuite) TestDeleteUnit() {
	id := uuid.New()
	url := "/units/" + id.String()

	s.Run("success", func() {
		s.mockInventory.EXPECT().DeleteUnit(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unit is booked", func() {
		s.mockInventory.EXPECT().DeleteUnit(gomock.Any(), id, gomock.Any()).Return(unit.ErrUnitInUse)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "only be deleted while available")
		s.Equal("conflict", body.Error)
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// Read endpoints
// ================================================================================

func (s *UnitHandlerTestSuite) TestGetUnit() {
	view := builder.NewUnitBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/"+view.ID.String(), nil, "token")

		var body struct {
			Unit struct {
				ID          uuid.UUID `json:"id"`
				ProjectName string    `json:"projectName"`
				Price       float64   `json:"price"`
			} `json:"unit"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.Unit.ID)
		s.Equal("Palm Residence", body.Unit.ProjectName)
		s.InDelta(2_000_000, body.Unit.Price, 0)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), gomock.Any()).Return(nil, unit.ErrUnitNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/"+uuid.NewString(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "unit not found")
	})
}

func (s *UnitHandlerTestSuite) TestListProjectUnits() {
	projectID := uuid.New()
	views := []*queries.UnitView{builder.NewUnitBuilder().BuildView(), builder.NewUnitBuilder().AsVilla().BuildView()}

	s.Run("success with status filter", func() {
		booked := unit.StatusBooked
		s.mockQueries.EXPECT().ListProjectUnits(gomock.Any(), projectID, &booked).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/project/"+projectID.String()+"?status=booked", nil, "token")

		var body struct {
			Count int `json:"count"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/project/"+projectID.String()+"?status=lost", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *UnitHandlerTestSuite) TestSearchUnits() {
	s.Run("filters and next cursor", func() {
		views := []*queries.UnitView{builder.NewUnitBuilder().BuildView()}
		s.mockQueries.EXPECT().
			SearchUnits(gomock.Any(), gomock.Any(), gomock.Nil(), 10).
			DoAndReturn(func(_ any, f queries.UnitFilters, _ *queries.Cursor, _ int) ([]*queries.UnitView, *queries.Cursor, error) {
				s.Require().NotNil(f.MinPrice)
				s.True(decimal.NewFromInt(1_000_000).Equal(*f.MinPrice))
				s.Require().NotNil(f.Status)
				s.Equal(unit.StatusAvailable, *f.Status)
				s.Equal("villa", f.Type)
				return views, &queries.Cursor{After: "next-page"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/units/search?minPrice=1000000&status=available&type=Villa&limit=10", nil, "token")

		var body struct {
			Count      int    `json:"count"`
			NextCursor string `json:"nextCursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("error: malformed price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/search?maxPrice=cheap", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid search filter")
	})

	s.Run("error: bad cursor", func() {
		s.mockQueries.EXPECT().SearchUnits(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/search?cursor=zzz", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *UnitHandlerTestSuite) TestProjectStats() {
	projectID := uuid.New()

	s.Run("success", func() {
		stats := queries.FoldStats(projectID, []queries.StatusAggregate{
			{Status: unit.StatusSold, Count: 1, Value: decimal.NewFromInt(3_000_000), MinPrice: decimal.NewFromInt(3_000_000), MaxPrice: decimal.NewFromInt(3_000_000)},
		})
		s.mockQueries.EXPECT().ProjectStats(gomock.Any(), projectID).Return(&stats, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/project/"+projectID.String()+"/stats", nil, "token")

		var body struct {
			Stats struct {
				Total    int64 `json:"total"`
				ByStatus map[string]struct {
					Count int64 `json:"count"`
				} `json:"byStatus"`
			} `json:"stats"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(1, body.Stats.Total)
		s.EqualValues(1, body.Stats.ByStatus["sold"].Count)
		s.EqualValues(0, body.Stats.ByStatus["available"].Count)
	})

	s.Run("error: unknown project", func() {
		s.mockQueries.EXPECT().ProjectStats(gomock.Any(), gomock.Any()).Return(nil, project.ErrProjectNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/project/"+projectID.String()+"/stats", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "project not found")
	})
}
