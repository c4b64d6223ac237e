//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/infra/memstore"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/commands"
	"estate-marketplace/internal/usecase/shared"
	"estate-marketplace/tests/common/builder"
	sharedmock "estate-marketplace/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inventoryFixture struct {
	ctx     context.Context
	store   *memstore.Store
	project *builder.ProjectBuilder
	owner   user.Actor
	cmds    commands.InventoryCommands
}

func newInventoryFixture(t *testing.T, invalidator shared.StatsInvalidator) *inventoryFixture {
	t.Helper()
	store := memstore.New()
	pb := builder.NewProjectBuilder().WithUnitCount(0)
	store.PutProject(pb.Build())
	if invalidator == nil {
		invalidator = shared.NopInvalidator{}
	}
	return &inventoryFixture{
		ctx:     context.Background(),
		store:   store,
		project: pb,
		owner:   user.NewActor(pb.Owner(), user.RoleDeveloper),
		cmds: commands.NewInventoryCommands(store, invalidator, clock.NewMockClock(baseTime),
			slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func (f *inventoryFixture) unitCount(t *testing.T) int {
	t.Helper()
	p, err := f.store.Projects().FindByID(f.ctx, f.project.ID)
	require.NoError(t, err)
	return p.UnitCount
}

func TestInventory_CreateUnitsBulk(t *testing.T) {
	details := []unit.Details{
		builder.NewUnitBuilder().WithUnitNumber("A-101").BuildDetails(),
		builder.NewUnitBuilder().WithUnitNumber("A-102").BuildDetails(),
		builder.NewUnitBuilder().WithUnitNumber("B-201").AsVilla().BuildDetails(),
	}

	t.Run("owner creates all units and the count follows", func(t *testing.T) {
		f := newInventoryFixture(t, nil)

		units, p, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, details)

		require.NoError(t, err)
		assert.Len(t, units, 3)
		assert.Equal(t, 3, p.UnitCount)
		assert.Equal(t, 3, f.unitCount(t))
		for _, u := range units {
			assert.Equal(t, unit.StatusAvailable, u.Status())
		}
	})

	t.Run("admin may create for any project", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, user.NewActor(uuid.New(), user.RoleAdmin), details[:1])
		assert.NoError(t, err)
	})

	t.Run("other developer is forbidden", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, user.NewActor(uuid.New(), user.RoleDeveloper), details)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, 0, f.unitCount(t))
	})

	t.Run("listing does not accept units", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		listing := builder.NewProjectBuilder().WithOwner(f.owner.ID).AsListing()
		f.store.PutProject(listing.Build())

		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, listing.ID, f.owner, details)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("one invalid unit rejects the batch", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		bad := builder.NewUnitBuilder().WithUnitNumber("C-1").WithArea(0).BuildDetails()

		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, append(details[:2:2], bad))

		assert.ErrorIs(t, err, unit.ErrInvalidArea)
		assert.Equal(t, 0, f.unitCount(t))
	})

	t.Run("duplicate unit numbers", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, []unit.Details{details[0], details[0]})
		assert.ErrorIs(t, err, errs.ErrConflict)

		_, _, err = f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, details[:1])
		require.NoError(t, err)
		_, _, err = f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, details)
		assert.ErrorIs(t, err, commands.ErrDuplicateUnitNumber)
		assert.Equal(t, 1, f.unitCount(t))
	})

	t.Run("empty batch", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, f.project.ID, f.owner, nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown project", func(t *testing.T) {
		f := newInventoryFixture(t, nil)
		_, _, err := f.cmds.CreateUnitsBulk(f.ctx, uuid.New(), f.owner, details)
		assert.ErrorIs(t, err, project.ErrProjectNotFound)
	})
}

func TestInventory_CreateUnit_InvalidatesStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	invalidator := sharedmock.NewMockStatsInvalidator(ctrl)
	f := newInventoryFixture(t, invalidator)

	invalidator.EXPECT().Invalidate(gomock.Any(), f.project.ID).Times(1)

	res, err := f.cmds.CreateUnit(f.ctx, f.project.ID, f.owner, builder.NewUnitBuilder().BuildDetails())

	require.NoError(t, err)
	assert.Equal(t, f.project.ID, res.Unit.ProjectID())
	assert.Equal(t, "Palm Residence", res.Project.Name)
}

func TestInventory_UpdateUnit(t *testing.T) {
	f := newInventoryFixture(t, nil)
	res, err := f.cmds.CreateUnit(f.ctx, f.project.ID, f.owner,
		builder.NewUnitBuilder().WithPrice(3_000_000).WithArea(150).BuildDetails())
	require.NoError(t, err)
	id := res.Unit.ID()
	assert.True(t, decimal.NewFromInt(20000).Equal(res.Unit.PricePerMeter()))

	t.Run("price change recomputes price per meter", func(t *testing.T) {
		price := decimal.NewFromInt(4_500_000)
		out, err := f.cmds.UpdateUnit(f.ctx, id, f.owner, unit.Patch{Price: &price})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30000).Equal(out.Unit.PricePerMeter()))
		stored, err := f.store.Units().FindByID(f.ctx, id)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30000).Equal(stored.PricePerMeter()))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		floor := 9
		_, err := f.cmds.UpdateUnit(f.ctx, id, user.NewActor(uuid.New(), user.RoleBuyer), unit.Patch{Floor: &floor})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("invalid area", func(t *testing.T) {
		area := decimal.NewFromInt(-1)
		_, err := f.cmds.UpdateUnit(f.ctx, id, f.owner, unit.Patch{Area: &area})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestInventory_DeleteUnit(t *testing.T) {
	setup := func(t *testing.T) (*inventoryFixture, uuid.UUID) {
		f := newInventoryFixture(t, nil)
		res, err := f.cmds.CreateUnit(f.ctx, f.project.ID, f.owner, builder.NewUnitBuilder().BuildDetails())
		require.NoError(t, err)
		require.Equal(t, 1, f.unitCount(t))
		return f, res.Unit.ID()
	}

	t.Run("available unit is deleted and the count drops", func(t *testing.T) {
		f, id := setup(t)

		require.NoError(t, f.cmds.DeleteUnit(f.ctx, id, f.owner))

		assert.Equal(t, 0, f.unitCount(t))
		_, err := f.store.Units().FindByID(f.ctx, id)
		assert.Error(t, err)
	})

	t.Run("booked unit is a conflict", func(t *testing.T) {
		f, id := setup(t)
		u, err := f.store.Units().FindByID(f.ctx, id)
		require.NoError(t, err)
		expected := u.StateToken()
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime))
		require.NoError(t, f.store.Units().ApplyTransition(f.ctx, u, expected))

		err = f.cmds.DeleteUnit(f.ctx, id, f.owner)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, f.unitCount(t))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f, id := setup(t)
		err := f.cmds.DeleteUnit(f.ctx, id, user.NewActor(uuid.New(), user.RoleDeveloper))
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown unit", func(t *testing.T) {
		f, _ := setup(t)
		assert.ErrorIs(t, f.cmds.DeleteUnit(f.ctx, uuid.New(), f.owner), errs.ErrNotFound)
	})
}
