//go:build e2e

package units_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/infra/db"
	"estate-marketplace/tests/common/builder"
	"estate-marketplace/tests/common/dbtest"
	"estate-marketplace/tests/common/httptest"
	"estate-marketplace/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	projectUnitsURL = "/api/units/project/%s"
	bulkURL         = "/api/units/project/%s/bulk"
	statsURL        = "/api/units/project/%s/stats"
	unitURL         = "/api/units/%s"
	searchURL       = "/api/units/search"
)

type UnitSuite struct {
	e2e.SharedSuite
}

func (s *UnitSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestUnitSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UnitSuite))
}

type unitBody struct {
	ID            uuid.UUID `json:"id"`
	UnitNumber    string    `json:"unitNumber"`
	Status        string    `json:"status"`
	Price         float64   `json:"price"`
	PricePerMeter float64   `json:"pricePerMeter"`
}

func (s *UnitSuite) createUnit(token string, projectID uuid.UUID, b *builder.UnitBuilder) unitBody {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectUnitsURL, projectID), b.BuildCreateRequestDTO(), token)
	var body struct {
		Unit unitBody `json:"unit"`
	}
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	return body.Unit
}

// =============================================================================
// Inventory
// =============================================================================

func (s *UnitSuite) TestCreateUnit() {
	s.Run("owner creates a unit and unitCount follows", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)

		created := s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithPrice(3_000_000).WithArea(150))

		require.Equal(t, "available", created.Status)
		require.InDelta(t, 20000, created.PricePerMeter, 0)
		require.Equal(t, 1, dbtest.ProjectUnitCount(t, s.DB, projectID))
	})

	s.Run("another developer is forbidden", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		other := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectUnitsURL, projectID),
			builder.NewUnitBuilder().BuildCreateRequestDTO(), other.Token)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "owner")
		require.Equal(t, 0, dbtest.ProjectUnitCount(t, s.DB, projectID))
	})

	s.Run("buyers cannot reach inventory endpoints", func() {
		t := s.T()
		buyer := s.JWT.NewIdentity(t, user.RoleBuyer)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectUnitsURL, projectID),
			builder.NewUnitBuilder().BuildCreateRequestDTO(), buyer.Token)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("listing projects do not take units", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Resale flat", "listing", owner.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectUnitsURL, projectID),
			builder.NewUnitBuilder().BuildCreateRequestDTO(), owner.Token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "only be added to a project")
	})

	s.Run("duplicate unit number is a conflict", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)
		s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithUnitNumber("B-7"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectUnitsURL, projectID),
			builder.NewUnitBuilder().WithUnitNumber("B-7").BuildCreateRequestDTO(), owner.Token)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "unit number already exists")
		require.Equal(t, 1, dbtest.ProjectUnitCount(t, s.DB, projectID))
	})
}

func (s *UnitSuite) TestCreateUnitsBulk() {
	s.Run("all or nothing", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)

		ok := map[string]any{"units": []any{
			builder.NewUnitBuilder().WithUnitNumber("C-1").BuildCreateRequestDTO(),
			builder.NewUnitBuilder().WithUnitNumber("C-2").BuildCreateRequestDTO(),
		}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bulkURL, projectID), ok, owner.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		require.Equal(t, 2, dbtest.ProjectUnitCount(t, s.DB, projectID))

		clash := map[string]any{"units": []any{
			builder.NewUnitBuilder().WithUnitNumber("C-3").BuildCreateRequestDTO(),
			builder.NewUnitBuilder().WithUnitNumber("C-1").BuildCreateRequestDTO(),
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bulkURL, projectID), clash, owner.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "unit number already exists")
		require.Equal(t, 2, dbtest.ProjectUnitCount(t, s.DB, projectID), "failed batch must not change unitCount")
	})
}

func (s *UnitSuite) TestUpdateUnit() {
	s.Run("price edit recomputes price per meter", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)
		created := s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithPrice(3_000_000).WithArea(150))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(unitURL, created.ID),
			map[string]any{"price": 4_500_000}, owner.Token)

		var body struct {
			Unit unitBody `json:"unit"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.InDelta(t, 30000, body.Unit.PricePerMeter, 0)
		require.Equal(t, "available", body.Unit.Status)
	})
}

func (s *UnitSuite) TestDeleteUnit() {
	s.Run("available unit is deleted and hidden", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)
		created := s.createUnit(owner.Token, projectID, builder.NewUnitBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(unitURL, created.ID), nil, owner.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, 0, dbtest.ProjectUnitCount(t, s.DB, projectID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(unitURL, created.ID), nil, owner.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "unit not found")
	})

	s.Run("booked unit cannot be deleted", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		buyer := s.JWT.NewIdentity(t, user.RoleBuyer)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)
		created := s.createUnit(owner.Token, projectID, builder.NewUnitBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(unitURL, created.ID)+"/book", nil, buyer.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(unitURL, created.ID), nil, owner.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "only be deleted while available")
		require.Equal(t, 1, dbtest.ProjectUnitCount(t, s.DB, projectID))
	})
}

// =============================================================================
// Read side
// =============================================================================

func (s *UnitSuite) TestProjectStats() {
	s.Run("aggregates by status", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		buyer := s.JWT.NewIdentity(t, user.RoleBuyer)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)

		s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithUnitNumber("S-1").WithPrice(1_000_000))
		s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithUnitNumber("S-2").WithPrice(2_000_000))
		sold := s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().WithUnitNumber("S-3").WithPrice(3_000_000))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(unitURL, sold.ID)+"/book", nil, buyer.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(unitURL, sold.ID)+"/mark-sold", nil, owner.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(statsURL, projectID), nil, buyer.Token)

		type statusStats struct {
			Count int64   `json:"count"`
			Value float64 `json:"value"`
		}
		var body struct {
			Stats struct {
				Total      int64                  `json:"total"`
				TotalValue float64                `json:"totalValue"`
				ByStatus   map[string]statusStats `json:"byStatus"`
				PriceRange struct {
					Min float64 `json:"min"`
					Max float64 `json:"max"`
					Avg float64 `json:"avg"`
				} `json:"priceRange"`
			} `json:"stats"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.EqualValues(t, 3, body.Stats.Total)
		require.InDelta(t, 6_000_000, body.Stats.TotalValue, 0)
		want := map[string]statusStats{
			"available":      {Count: 2, Value: 3_000_000},
			"booked":         {},
			"reserved":       {},
			"under_contract": {},
			"sold":           {Count: 1, Value: 3_000_000},
		}
		if diff := cmp.Diff(want, body.Stats.ByStatus); diff != "" {
			t.Errorf("byStatus mismatch (-want +got):\n%s", diff)
		}
		require.InDelta(t, 1_000_000, body.Stats.PriceRange.Min, 0)
		require.InDelta(t, 3_000_000, body.Stats.PriceRange.Max, 0)
		require.InDelta(t, 2_000_000, body.Stats.PriceRange.Avg, 0)
	})

	s.Run("unknown project is 404", func() {
		t := s.T()
		buyer := s.JWT.NewIdentity(t, user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(statsURL, uuid.New()), nil, buyer.Token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "project not found")
	})
}

func (s *UnitSuite) TestSearchUnits() {
	s.Run("cursor pages through every match once", func() {
		t := s.T()
		owner := s.JWT.NewIdentity(t, user.RoleDeveloper)
		projectID := dbtest.CreateTestProject(t, s.DB, "Palm Residence", "project", owner.ID)
		for i := range 5 {
			s.createUnit(owner.Token, projectID, builder.NewUnitBuilder().
				WithUnitNumber(fmt.Sprintf("P-%d", i)).
				WithPrice(int64(1_000_000*(i+1))))
		}

		seen := map[uuid.UUID]bool{}
		cursor := ""
		for page := 0; page < 5; page++ {
			url := fmt.Sprintf("%s?projectId=%s&minPrice=2000000&limit=2", searchURL, projectID)
			if cursor != "" {
				url += "&cursor=" + cursor
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, owner.Token)

			var body struct {
				Units      []unitBody `json:"units"`
				NextCursor string     `json:"nextCursor"`
			}
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			for _, u := range body.Units {
				require.False(t, seen[u.ID], "unit %s returned twice", u.ID)
				require.GreaterOrEqual(t, u.Price, float64(2_000_000))
				seen[u.ID] = true
			}
			if body.NextCursor == "" {
				break
			}
			cursor = body.NextCursor
		}
		require.Len(t, seen, 4)
	})
}

func (s *UnitSuite) TestMigrations() {
	s.Run("applying again on a migrated database is a no-op", func() {
		ctx := context.Background()
		var before int
		require.NoError(s.T(), s.DB.QueryRow(ctx, "SELECT count(*) FROM "+db.MigrationsTable).Scan(&before))
		require.Positive(s.T(), before)

		require.NoError(s.T(), db.ApplyMigrations(ctx, s.DB))
		require.NoError(s.T(), db.ApplyMigrations(ctx, s.DB))

		var after int
		require.NoError(s.T(), s.DB.QueryRow(ctx, "SELECT count(*) FROM "+db.MigrationsTable).Scan(&after))
		require.Equal(s.T(), before, after)
	})
}
