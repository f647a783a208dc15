package service

import (
	"context"

	"student-recordbook/internal/models"
)

type GroupService interface {
	// SaveGroup замещает сохраненное состояние текущей группой
	SaveGroup(ctx context.Context, group *models.Group) error

	// LoadGroup восстанавливает группу из базы.
	// Ошибки репозитория (repository.ErrNoData, repository.ErrSchemaMissing)
	// пробрасываются как есть, чтобы вызывающий код различал причины.
	LoadGroup(ctx context.Context) (*models.Group, error)
}
