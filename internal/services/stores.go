package services

import (
	"context"

	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

type AccountLookup interface {
	FindByID(ctx context.Context, id string) (*model.Account, error)
}

type AccountStore interface {
	AccountLookup
	Create(ctx context.Context, account *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}

type SkillLookup interface {
	ListByAccounts(ctx context.Context, accountIDs []string) (map[string][]model.Skill, error)
}

type SkillStore interface {
	SkillLookup
	Upsert(ctx context.Context, skill *model.Skill) (bool, error)
	ListByAccount(ctx context.Context, accountID string) ([]model.Skill, error)
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) (string, error)
	FindByID(ctx context.Context, id string, rel repository.Relations) (*model.Task, error)
	FindByParticipant(ctx context.Context, accountID string) ([]model.Task, error)
	ListOfferedBy(ctx context.Context, providerID string) ([]model.Task, error)
	ListOwnedBy(ctx context.Context, ownerID string) ([]model.Task, error)
	AddOffer(ctx context.Context, taskID, providerID string) error
	TryAcceptOffer(ctx context.Context, taskID, providerID string) error
	Complete(ctx context.Context, taskID string) error
	AppendProgress(ctx context.Context, taskID string, entry *model.ProgressEntry, guard func(*model.Task) error) error
}

type TokenGenerator interface {
	Generate(accountID string) (string, error)
}
