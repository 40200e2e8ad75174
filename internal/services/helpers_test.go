package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

type testEnv struct {
	db       *gorm.DB
	accounts *repository.AccountRepository
	skills   *repository.SkillRepository
	tasks    *repository.TaskRepository
	taskSvc  *TaskService
	offerSvc *OfferService
	skillSvc *SkillService
}

func openTestDB(dsn string, maxConns int) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&model.Account{}, &model.Skill{}, &model.Task{}, &model.TaskOffer{}, &model.ProgressEntry{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxConns)

	return db, nil
}

func newEnv(db *gorm.DB) *testEnv {
	env := &testEnv{
		db:       db,
		accounts: repository.NewAccountRepository(db),
		skills:   repository.NewSkillRepository(db),
		tasks:    repository.NewTaskRepository(db),
	}
	log := zap.NewNop()
	env.taskSvc = NewTaskService(env.accounts, env.tasks, log)
	env.offerSvc = NewOfferService(env.accounts, env.skills, env.tasks, log)
	env.skillSvc = NewSkillService(env.accounts, env.skills, log)
	return env
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return openTestEnv(t, filepath.Join(t.TempDir(), "test.db"), 1)
}

// setupPooledTestEnv opens several connections to one database file so
// concurrent calls race on separate connections. Writers wait on the file
// lock instead of failing, and transactions take the write lock on BEGIN.
func setupPooledTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "pooled.db") + "?_busy_timeout=10000&_txlock=immediate"
	return openTestEnv(t, dsn, 8)
}

func openTestEnv(t *testing.T, dsn string, maxConns int) *testEnv {
	t.Helper()

	db, err := openTestDB(dsn, maxConns)
	if err != nil {
		t.Fatalf("failed to set up database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return newEnv(db)
}

func (e *testEnv) newAccount(role constants.Role) (*model.Account, error) {
	account := &model.Account{
		ID:           uuid.NewString(),
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "hash",
		Role:         role,
		Type:         constants.AccountIndividual,
	}
	return account, e.accounts.Create(context.Background(), account)
}

func (e *testEnv) mustAccount(t *testing.T, role constants.Role) *model.Account {
	t.Helper()
	account, err := e.newAccount(role)
	if err != nil {
		t.Fatalf("failed to create %s account: %v", role, err)
	}
	return account
}

func validTaskInput(start time.Time) TaskInput {
	return TaskInput{
		Category:             constants.CategoryBackend,
		Name:                 "Build API",
		Description:          "Build a REST API",
		ExpectedStartDate:    start,
		ExpectedWorkingHours: 10,
		HourlyRate:           decimal.NewFromInt(40),
		RateCurrency:         constants.CurrencyAUD,
	}
}

// newTask creates a task for owner through the service and returns its id.
func (e *testEnv) newTask(owner *model.Account) (string, error) {
	ctx := context.Background()
	if _, err := e.taskSvc.CreateTask(ctx, owner.ID, validTaskInput(time.Now().Add(24*time.Hour))); err != nil {
		return "", err
	}
	tasks, err := e.tasks.FindByParticipant(ctx, owner.ID)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "", errors.New("created task not found")
	}
	return tasks[len(tasks)-1].ID, nil
}

func (e *testEnv) mustTask(t *testing.T, owner *model.Account) string {
	t.Helper()
	id, err := e.newTask(owner)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return id
}

func (e *testEnv) mustFindTask(t *testing.T, id string) *model.Task {
	t.Helper()
	task, err := e.tasks.FindByID(context.Background(), id, repository.AllRelations)
	if err != nil {
		t.Fatalf("failed to load task %s: %v", id, err)
	}
	return task
}

func expectErr(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
