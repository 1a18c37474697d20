package application

import (
	"context"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/google/uuid"
)

// StatusCase reads saga status for callers. Pure read, never side-effecting.
type StatusCase struct {
	sagaStore domain.SagaStore
}

func NewStatusCase(sagaStore domain.SagaStore) *StatusCase {
	return &StatusCase{
		sagaStore: sagaStore,
	}
}

func (sc *StatusCase) GetStatus(ctx context.Context, sagaID uuid.UUID) (domain.Projection, error) {
	saga, err := sc.sagaStore.GetByID(ctx, sagaID)
	if err != nil {
		return domain.Projection{}, err
	}

	return domain.ProjectStatus(saga), nil
}
