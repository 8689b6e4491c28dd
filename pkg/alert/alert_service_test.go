package alert

import (
	"context"
	"testing"
	"time"

	"github.com/billfold/billfold/internal/utils"
	"github.com/billfold/billfold/pkg/limit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2025, time.November, 15, 12, 30, 0, 0, time.UTC)}

func setup(t *testing.T) (Service, *StubAlertRepo, context.Context, func()) {
	repo := NewStubAlertRepo()
	service := NewAlertService(repo, clock)
	return service, repo, context.Background(), func() {
		repo.Cleanup()
	}
}

func monthlyBreach(breached bool) limit.BreachResult {
	return limit.BreachResult{
		Breached: breached,
		Window: limit.Window{
			Start: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		Period:      limit.PeriodMonthly,
		LimitAmount: decimal.NewFromInt(100),
		SpentAmount: decimal.NewFromInt(110),
	}
}

func TestAlertServiceImpl_MaybeEmit_skipsNonBreach(t *testing.T) {
	service, repo, ctx, teardown := setup(t)
	defer teardown()

	created, err := service.MaybeEmit(ctx, 1, limit.BreachResult{})

	require.NoError(t, err)
	assert.Nil(t, created)
	stored, err := repo.GetAll(ctx, false, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAlertServiceImpl_MaybeEmit_storesBreachAlert(t *testing.T) {
	service, repo, ctx, teardown := setup(t)
	defer teardown()

	// when
	created, err := service.MaybeEmit(ctx, 7, monthlyBreach(true))

	// then
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 7, created.CategoryID)
	assert.Equal(t, limit.PeriodMonthly, created.Period)
	assert.True(t, created.LimitAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, created.SpentAmount.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, clock.FixedNow, created.CreatedAt)
	assert.False(t, created.IsRead)

	stored, err := repo.GetAll(ctx, false, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].ID)
}

func TestAlertServiceImpl_MaybeEmit_emitsForEveryBreach(t *testing.T) {
	service, repo, ctx, teardown := setup(t)
	defer teardown()

	// two breaches in the same window produce two alerts
	first, err := service.MaybeEmit(ctx, 7, monthlyBreach(true))
	require.NoError(t, err)
	second, err := service.MaybeEmit(ctx, 7, monthlyBreach(true))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	stored, err := repo.GetAll(ctx, false, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestAlertServiceImpl_GetAll_unreadOnly(t *testing.T) {
	service, _, ctx, teardown := setup(t)
	defer teardown()

	// given two alerts, one already read
	_, err := service.MaybeEmit(ctx, 1, monthlyBreach(true))
	require.NoError(t, err)
	_, err = service.MarkAllRead(ctx)
	require.NoError(t, err)
	_, err = service.MaybeEmit(ctx, 2, monthlyBreach(true))
	require.NoError(t, err)

	// when
	unread, err := service.GetAll(ctx, true, 0)

	// then
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, 2, unread[0].CategoryID)

	all, err := service.GetAll(ctx, false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAlertServiceImpl_MarkAllRead(t *testing.T) {
	service, _, ctx, teardown := setup(t)
	defer teardown()

	// given
	_, err := service.MaybeEmit(ctx, 1, monthlyBreach(true))
	require.NoError(t, err)
	_, err = service.MaybeEmit(ctx, 2, monthlyBreach(true))
	require.NoError(t, err)

	// when
	marked, err := service.MarkAllRead(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	// marking again touches nothing
	marked, err = service.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}
