package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

// OfferService runs the offer-then-accept negotiation. Many providers may
// offer on a PENDING task; the owner accepts exactly one of them.
type OfferService struct {
	accounts AccountLookup
	skills   SkillLookup
	tasks    TaskStore
	log      *zap.Logger
}

func NewOfferService(accounts AccountLookup, skills SkillLookup, tasks TaskStore, log *zap.Logger) *OfferService {
	return &OfferService{
		accounts: accounts,
		skills:   skills,
		tasks:    tasks,
		log:      log,
	}
}

func (s *OfferService) MakeOffer(ctx context.Context, providerID, taskID string) (*model.Task, error) {
	task, err := findTask(ctx, s.tasks, taskID, repository.Relations{Offers: true})
	if err != nil {
		return nil, err
	}
	if task.HasProvider() {
		return nil, apperrors.ErrOfferAlreadyAccepted
	}

	account, err := findAccount(ctx, s.accounts, providerID)
	if err != nil {
		return nil, err
	}
	if !account.IsProvider() {
		return nil, apperrors.ErrUnauthorizedRole
	}
	if task.HasOfferFrom(providerID) {
		return nil, apperrors.ErrAlreadyOffered
	}

	if err := s.tasks.AddOffer(ctx, taskID, providerID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyOffered
		}
		return nil, fmt.Errorf("add offer: %w", err)
	}

	s.log.Info("offer made", zap.String("task_id", taskID), zap.String("provider_id", providerID))
	return findTask(ctx, s.tasks, taskID, repository.Relations{Owner: true, Offers: true})
}

// GetOffersForAccount lists open offers from the account's point of view:
// the tasks a provider has offered on, or the offers on a user's own tasks.
// Tasks that already have an assigned provider are left out.
func (s *OfferService) GetOffersForAccount(ctx context.Context, accountID string) (*dto.OffersView, error) {
	account, err := findAccount(ctx, s.accounts, accountID)
	if err != nil {
		return nil, err
	}

	switch account.Role {
	case constants.RoleProvider:
		tasks, err := s.tasks.ListOfferedBy(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("list offered tasks: %w", err)
		}
		return &dto.OffersView{
			Role:           account.Role,
			ProviderOffers: listOpenOffersForProvider(tasks),
		}, nil

	default:
		tasks, err := s.tasks.ListOwnedBy(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("list owned tasks: %w", err)
		}
		skills, err := s.skills.ListByAccounts(ctx, offeringProviderIDs(tasks))
		if err != nil {
			return nil, fmt.Errorf("list provider skills: %w", err)
		}
		return &dto.OffersView{
			Role:        account.Role,
			OwnerOffers: listOpenOffersForOwner(tasks, skills),
		}, nil
	}
}

func (s *OfferService) AcceptOffer(ctx context.Context, ownerID, providerID, taskID string) (*dto.MessageResponse, error) {
	task, err := findTask(ctx, s.tasks, taskID, repository.Relations{Offers: true})
	if err != nil {
		return nil, err
	}
	if !task.IsOwnedBy(ownerID) {
		return nil, apperrors.ErrUnauthorized
	}
	if task.HasProvider() {
		return nil, apperrors.ErrAlreadyAccepted
	}
	if !task.HasOfferFrom(providerID) {
		return nil, apperrors.ErrOfferNotFound
	}

	if err := s.tasks.TryAcceptOffer(ctx, taskID, providerID); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.log.Warn("concurrent offer acceptance rejected",
				zap.String("task_id", taskID),
				zap.String("provider_id", providerID))
			return nil, apperrors.ErrAlreadyAccepted
		}
		return nil, fmt.Errorf("accept offer: %w", err)
	}

	s.log.Info("offer accepted", zap.String("task_id", taskID), zap.String("provider_id", providerID))
	return &dto.MessageResponse{Message: "Offer accepted successfully!"}, nil
}

func listOpenOffersForProvider(tasks []model.Task) []dto.ProviderOffer {
	offers := make([]dto.ProviderOffer, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]
		if task.HasProvider() {
			continue
		}
		offers = append(offers, dto.ProviderOffer{
			TaskID:   task.ID,
			TaskName: task.Name,
			User:     dto.NewAccountSummary(task.Owner),
		})
	}
	return offers
}

func listOpenOffersForOwner(tasks []model.Task, skills map[string][]model.Skill) []dto.OwnerOffer {
	result := make([]dto.OwnerOffer, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]
		if task.HasProvider() {
			continue
		}

		providers := make([]dto.ProviderSummary, 0, len(task.Offers))
		for _, offer := range task.Offers {
			summary := dto.ProviderSummary{
				AccountSummary: dto.NewAccountSummary(offer.Provider),
				Skills:         make([]dto.SkillSummary, 0, len(skills[offer.ProviderID])),
			}
			summary.ID = offer.ProviderID
			for _, skill := range skills[offer.ProviderID] {
				summary.Skills = append(summary.Skills, dto.NewSkillSummary(skill))
			}
			providers = append(providers, summary)
		}

		result = append(result, dto.OwnerOffer{
			TaskID:   task.ID,
			TaskName: task.Name,
			Offers:   providers,
		})
	}
	return result
}

func offeringProviderIDs(tasks []model.Task) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, task := range tasks {
		if task.HasProvider() {
			continue
		}
		for _, offer := range task.Offers {
			if _, ok := seen[offer.ProviderID]; ok {
				continue
			}
			seen[offer.ProviderID] = struct{}{}
			ids = append(ids, offer.ProviderID)
		}
	}
	return ids
}
