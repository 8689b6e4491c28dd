package alert

import (
	"context"

	"github.com/billfold/billfold/internal/utils"
	"github.com/billfold/billfold/pkg/limit"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// MaybeEmit persists a new alert for a breached evaluation and returns
	// it. A non-breached result is a no-op. Every breach-causing
	// transaction gets its own alert; there is no per-window
	// deduplication.
	MaybeEmit(ctx context.Context, categoryId int, breach limit.BreachResult) (*Alert, error)
	GetAll(ctx context.Context, unreadOnly bool, limit int) ([]Alert, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewAlertService(repo Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) MaybeEmit(ctx context.Context, categoryId int, breach limit.BreachResult) (*Alert, error) {
	if !breach.Breached {
		return nil, nil
	}

	a := Alert{
		CategoryID:  categoryId,
		WindowStart: breach.Window.Start,
		WindowEnd:   breach.Window.End,
		Period:      breach.Period,
		LimitAmount: breach.LimitAmount,
		SpentAmount: breach.SpentAmount,
		CreatedAt:   s.clock.Now(),
	}
	id, err := s.repo.Store(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	log.Debugf("stored spending alert %d for category %d", id, categoryId)
	return &a, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context, unreadOnly bool, limit int) ([]Alert, error) {
	return s.repo.GetAll(ctx, unreadOnly, limit)
}

func (s *ServiceImpl) MarkAllRead(ctx context.Context) (int, error) {
	return s.repo.MarkAllRead(ctx)
}
