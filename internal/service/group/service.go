package group_service

import (
	"context"

	"student-recordbook/internal/models"
	"student-recordbook/internal/repository"
	"student-recordbook/internal/service"

	"go.uber.org/zap"
)

type groupService struct {
	groupRepo repository.GroupRepository
	logger    *zap.SugaredLogger
}

func NewGroupService(groupRepo repository.GroupRepository, logger *zap.SugaredLogger) service.GroupService {
	return &groupService{
		groupRepo: groupRepo,
		logger:    logger,
	}
}

func (s *groupService) SaveGroup(ctx context.Context, group *models.Group) error {
	if err := s.groupRepo.Save(ctx, group); err != nil {
		s.logger.Errorw("❌ Ошибка сохранения группы", "error", err)
		return err
	}
	s.logger.Infow("💾 Группа сохранена", "students", len(group.Students))
	return nil
}

func (s *groupService) LoadGroup(ctx context.Context) (*models.Group, error) {
	group, err := s.groupRepo.Load(ctx)
	if err != nil {
		s.logger.Warnw("⚠️ Группа не загружена", "reason", err)
		return nil, err
	}
	s.logger.Infow("📂 Группа загружена", "students", len(group.Students))
	return group, nil
}
