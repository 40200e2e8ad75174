package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
)

// Relations selects which associations FindByID hydrates.
type Relations struct {
	Owner    bool
	Provider bool
	Offers   bool
	Progress bool
}

var AllRelations = Relations{Owner: true, Provider: true, Offers: true, Progress: true}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (string, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = constants.StatusPending
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return "", translate(err)
	}
	return task.ID, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string, rel Relations) (*model.Task, error) {
	var task model.Task
	if err := withRelations(r.db.WithContext(ctx), rel).First(&task, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// FindByParticipant returns tasks the account owns or is assigned to.
func (r *TaskRepository) FindByParticipant(ctx context.Context, accountID string) ([]model.Task, error) {
	var tasks []model.Task
	err := withRelations(r.db.WithContext(ctx), AllRelations).
		Preload("Provider.Skills").
		Where("owner_id = ? OR provider_id = ?", accountID, accountID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, translate(err)
}

// ListOfferedBy returns every task the provider has offered on, with owners.
func (r *TaskRepository) ListOfferedBy(ctx context.Context, providerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Select("tasks.*").
		Preload("Owner").
		Joins("JOIN task_offers ON task_offers.task_id = tasks.id").
		Where("task_offers.provider_id = ?", providerID).
		Order("task_offers.created_at asc").
		Find(&tasks).Error
	return tasks, translate(err)
}

// ListOwnedBy returns every task the user owns, with offering providers.
func (r *TaskRepository) ListOwnedBy(ctx context.Context, ownerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := withRelations(r.db.WithContext(ctx), Relations{Offers: true}).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, translate(err)
}

// AddOffer records the provider's offer. A repeated offer fails with ErrDuplicate.
func (r *TaskRepository) AddOffer(ctx context.Context, taskID, providerID string) error {
	offer := model.TaskOffer{
		TaskID:     taskID,
		ProviderID: providerID,
		CreatedAt:  time.Now().UTC(),
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(&offer).Error)
}

// TryAcceptOffer assigns the provider and starts the task in a single
// conditional update. It fails with ErrConflict when the task already has a
// provider or has left PENDING.
func (r *TaskRepository) TryAcceptOffer(ctx context.Context, taskID, providerID string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND provider_id IS NULL AND status = ?", taskID, constants.StatusPending).
		Updates(map[string]interface{}{
			"provider_id": providerID,
			"status":      constants.StatusInProgress,
			"updated_at":  time.Now().UTC(),
		})

	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// Complete moves an IN_PROGRESS task to COMPLETED. It fails with ErrConflict
// when the task is in any other state.
func (r *TaskRepository) Complete(ctx context.Context, taskID string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", taskID, constants.StatusInProgress).
		Updates(map[string]interface{}{
			"status":     constants.StatusCompleted,
			"updated_at": time.Now().UTC(),
		})

	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// AppendProgress locks the task row, runs guard against it and appends entry
// only when guard returns nil. guard must not touch the database.
func (r *TaskRepository) AppendProgress(ctx context.Context, taskID string, entry *model.ProgressEntry, guard func(*model.Task) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&task, "id = ?", taskID).Error; err != nil {
			return translate(err)
		}

		if err := guard(&task); err != nil {
			return err
		}

		entry.TaskID = taskID
		return tx.Create(entry).Error
	})
	return translate(err)
}

func withRelations(db *gorm.DB, rel Relations) *gorm.DB {
	if rel.Owner {
		db = db.Preload("Owner")
	}
	if rel.Provider {
		db = db.Preload("Provider")
	}
	if rel.Offers {
		db = db.Preload("Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).Preload("Offers.Provider")
	}
	if rel.Progress {
		db = db.Preload("Progress", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		})
	}
	return db
}
