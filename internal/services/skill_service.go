package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
	model "skill-share.com/skill-share/internal/models"
)

type SkillService struct {
	accounts AccountLookup
	skills   SkillStore
	log      *zap.Logger
}

func NewSkillService(accounts AccountLookup, skills SkillStore, log *zap.Logger) *SkillService {
	return &SkillService{
		accounts: accounts,
		skills:   skills,
		log:      log,
	}
}

// AddOrUpdate stores the provider's skill, replacing any skill it already
// holds in the same category.
func (s *SkillService) AddOrUpdate(ctx context.Context, providerID string, req dto.AddUpdateSkillRequest) (*dto.MessageResponse, error) {
	account, err := findAccount(ctx, s.accounts, providerID)
	if err != nil {
		return nil, err
	}
	if !account.IsProvider() {
		return nil, apperrors.ErrNotAProvider
	}

	skill := &model.Skill{
		AccountID:    account.ID,
		Category:     req.Category,
		Experience:   req.Experience,
		NatureOfWork: req.NatureOfWork,
		HourlyRate:   req.HourlyRate,
		RateCurrency: req.RateCurrency,
	}

	created, err := s.skills.Upsert(ctx, skill)
	if err != nil {
		return nil, fmt.Errorf("upsert skill: %w", err)
	}

	if created {
		s.log.Info("skill added", zap.String("account_id", account.ID), zap.String("category", string(skill.Category)))
		return &dto.MessageResponse{Message: "Added new skill!"}, nil
	}
	return &dto.MessageResponse{Message: "Updated existing skill!"}, nil
}

func (s *SkillService) GetSkills(ctx context.Context, accountID string) ([]model.Skill, error) {
	skills, err := s.skills.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	if len(skills) == 0 {
		return nil, apperrors.ErrNoSkillsFound
	}
	return skills, nil
}
