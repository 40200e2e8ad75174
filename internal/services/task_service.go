package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

// TaskInput is a validated task creation request.
type TaskInput struct {
	Category             constants.SkillCategory
	Name                 string
	Description          string
	ExpectedStartDate    time.Time
	ExpectedWorkingHours float64
	HourlyRate           decimal.Decimal
	RateCurrency         constants.RateCurrency
}

type TaskService struct {
	accounts AccountLookup
	tasks    TaskStore
	log      *zap.Logger
	now      func() time.Time
}

func NewTaskService(accounts AccountLookup, tasks TaskStore, log *zap.Logger) *TaskService {
	return &TaskService{
		accounts: accounts,
		tasks:    tasks,
		log:      log,
		now:      time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input TaskInput) (*dto.MessageResponse, error) {
	if startsBeforeToday(input.ExpectedStartDate, s.now()) {
		return nil, apperrors.ErrInvalidStartDate
	}

	account, err := s.findAccount(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !account.IsUser() {
		return nil, apperrors.ErrNotAUser
	}

	task := &model.Task{
		Category:             input.Category,
		Name:                 input.Name,
		Description:          input.Description,
		ExpectedStartDate:    datatypes.Date(input.ExpectedStartDate),
		ExpectedWorkingHours: input.ExpectedWorkingHours,
		HourlyRate:           input.HourlyRate,
		RateCurrency:         input.RateCurrency,
		Status:               constants.StatusPending,
		OwnerID:              account.ID,
	}

	taskID, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.Info("task created", zap.String("task_id", taskID), zap.String("owner_id", ownerID))
	return &dto.MessageResponse{Message: "Task created successfully!"}, nil
}

func (s *TaskService) GetTasksForAccount(ctx context.Context, accountID string) ([]model.Task, error) {
	tasks, err := s.tasks.FindByParticipant(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoTasksFound
	}
	return tasks, nil
}

func (s *TaskService) UpdateProgress(ctx context.Context, providerID, taskID, description string) (*dto.MessageResponse, error) {
	entry := &model.ProgressEntry{
		Description: description,
		Timestamp:   s.now().UTC(),
	}

	err := s.tasks.AppendProgress(ctx, taskID, entry, func(task *model.Task) error {
		return checkProgressUpdate(task, providerID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("append progress: %w", err)
	}

	s.log.Debug("task progress updated", zap.String("task_id", taskID), zap.String("provider_id", providerID))
	return &dto.MessageResponse{Message: "Task progress updated successfully!"}, nil
}

// UpdateStatus marks an IN_PROGRESS task COMPLETED on behalf of its owner.
func (s *TaskService) UpdateStatus(ctx context.Context, ownerID, taskID string) (*dto.MessageResponse, error) {
	task, err := s.findTask(ctx, taskID, repository.Relations{})
	if err != nil {
		return nil, err
	}
	if err := checkStatusUpdate(task, ownerID); err != nil {
		return nil, err
	}

	if err := s.tasks.Complete(ctx, taskID); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("complete task: %w", err)
		}
		// Lost a race; report against the state that won.
		current, findErr := s.findTask(ctx, taskID, repository.Relations{})
		if findErr != nil {
			return nil, findErr
		}
		if err := checkStatusUpdate(current, ownerID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrTaskAlreadyCompleted
	}

	s.log.Info("task completed", zap.String("task_id", taskID), zap.String("owner_id", ownerID))
	return &dto.MessageResponse{Message: "Task status updated successfully!"}, nil
}

func (s *TaskService) findAccount(ctx context.Context, id string) (*model.Account, error) {
	return findAccount(ctx, s.accounts, id)
}

func (s *TaskService) findTask(ctx context.Context, id string, rel repository.Relations) (*model.Task, error) {
	return findTask(ctx, s.tasks, id, rel)
}

func checkProgressUpdate(task *model.Task, providerID string) error {
	if !task.IsAssignedTo(providerID) {
		return apperrors.ErrInvalidTaskProgressUpdate
	}
	if task.Status == constants.StatusCompleted {
		return apperrors.ErrTaskAlreadyCompleted
	}
	return nil
}

func checkStatusUpdate(task *model.Task, ownerID string) error {
	if !task.IsOwnedBy(ownerID) {
		return apperrors.ErrInvalidTaskStatusUpdate
	}
	switch task.Status {
	case constants.StatusCompleted:
		return apperrors.ErrTaskAlreadyCompleted
	case constants.StatusPending:
		return apperrors.ErrTaskNeverStarted
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startsBeforeToday compares calendar days. A plain date parses as UTC
// midnight, so its day is read in its own zone and placed in now's zone.
func startsBeforeToday(start, now time.Time) bool {
	y, m, d := start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Before(startOfDay(now))
}

func findAccount(ctx context.Context, accounts AccountLookup, id string) (*model.Account, error) {
	account, err := accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

func findTask(ctx context.Context, tasks TaskStore, id string, rel repository.Relations) (*model.Task, error) {
	task, err := tasks.FindByID(ctx, id, rel)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}
