package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "skill-share.com/skill-share/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Upsert stores skill, replacing the provider's existing skill of the same
// category. It reports whether a new row was created.
func (r *SkillRepository) Upsert(ctx context.Context, skill *model.Skill) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Skill
		err := tx.Where("account_id = ? AND category = ?", skill.AccountID, skill.Category).
			First(&existing).Error

		switch translate(err) {
		case nil:
			skill.ID = existing.ID
			skill.CreatedAt = existing.CreatedAt
			return tx.Model(&existing).Updates(map[string]interface{}{
				"experience":     skill.Experience,
				"nature_of_work": skill.NatureOfWork,
				"hourly_rate":    skill.HourlyRate,
				"rate_currency":  skill.RateCurrency,
			}).Error
		case ErrNotFound:
			if skill.ID == "" {
				skill.ID = uuid.NewString()
			}
			created = true
			return tx.Create(skill).Error
		default:
			return err
		}
	})
	return created, translate(err)
}

func (r *SkillRepository) ListByAccount(ctx context.Context, accountID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("category asc").
		Find(&skills).Error
	return skills, translate(err)
}

// ListByAccounts returns the skills of every given account keyed by account id.
func (r *SkillRepository) ListByAccounts(ctx context.Context, accountIDs []string) (map[string][]model.Skill, error) {
	result := make(map[string][]model.Skill, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	var skills []model.Skill
	if err := r.db.WithContext(ctx).
		Where("account_id IN ?", accountIDs).
		Order("category asc").
		Find(&skills).Error; err != nil {
		return nil, translate(err)
	}

	for _, s := range skills {
		result[s.AccountID] = append(result[s.AccountID], s)
	}
	return result, nil
}
