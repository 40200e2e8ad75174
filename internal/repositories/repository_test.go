package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Account{}, &model.Skill{}, &model.Task{}, &model.TaskOffer{}, &model.ProgressEntry{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func createAccount(t *testing.T, repo *AccountRepository, email string, role constants.Role) *model.Account {
	t.Helper()
	account := &model.Account{
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Type:         constants.AccountIndividual,
		IndividualAccount: &model.IndividualProfile{
			FirstName: "Test",
			LastName:  "Account",
		},
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

func createTask(t *testing.T, repo *TaskRepository, ownerID string) string {
	t.Helper()
	id, err := repo.Create(context.Background(), &model.Task{
		Category:             constants.CategoryBackend,
		Name:                 "Task",
		Description:          "Do the thing",
		ExpectedStartDate:    datatypes.Date(time.Now().Add(24 * time.Hour)),
		ExpectedWorkingHours: 5,
		HourlyRate:           decimal.NewFromInt(25),
		RateCurrency:         constants.CurrencyUSD,
		OwnerID:              ownerID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return id
}

func TestAccountRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := createAccount(t, repo, "a@example.com", constants.RoleUser)
	if account.ID == "" {
		t.Fatal("expected generated id")
	}

	found, err := repo.FindByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if found.ID != account.ID || found.IndividualAccount == nil || found.IndividualAccount.FirstName != "Test" {
		t.Errorf("unexpected account %+v", found)
	}
	if found.CompanyAccount != nil {
		t.Errorf("company profile should stay empty")
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	dup := &model.Account{Email: "a@example.com", PasswordHash: "x", Role: constants.RoleUser, Type: constants.AccountIndividual}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for repeated email, got %v", err)
	}
}

func TestTaskRepository_OffersAndAccept(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := createAccount(t, accounts, "owner@example.com", constants.RoleUser)
	p1 := createAccount(t, accounts, "p1@example.com", constants.RoleProvider)
	p2 := createAccount(t, accounts, "p2@example.com", constants.RoleProvider)
	taskID := createTask(t, tasks, owner.ID)

	for _, p := range []*model.Account{p1, p2} {
		if err := tasks.AddOffer(ctx, taskID, p.ID); err != nil {
			t.Fatalf("AddOffer failed: %v", err)
		}
	}
	if err := tasks.AddOffer(ctx, taskID, p1.ID); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	offered, err := tasks.ListOfferedBy(ctx, p1.ID)
	if err != nil {
		t.Fatalf("ListOfferedBy failed: %v", err)
	}
	if len(offered) != 1 || offered[0].HasProvider() || offered[0].Owner == nil {
		t.Fatalf("unexpected offered tasks %+v", offered)
	}

	if err := tasks.TryAcceptOffer(ctx, taskID, p2.ID); err != nil {
		t.Fatalf("TryAcceptOffer failed: %v", err)
	}
	if err := tasks.TryAcceptOffer(ctx, taskID, p1.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second accept, got %v", err)
	}

	task, err := tasks.FindByID(ctx, taskID, AllRelations)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !task.IsAssignedTo(p2.ID) || task.Status != constants.StatusInProgress {
		t.Fatalf("expected IN_PROGRESS with p2, got %s / %v", task.Status, task.ProviderID)
	}
	if task.Provider == nil || task.Provider.ID != p2.ID || len(task.Offers) != 2 {
		t.Errorf("relations not hydrated: %+v", task)
	}

	offered, err = tasks.ListOfferedBy(ctx, p1.ID)
	if err != nil {
		t.Fatalf("ListOfferedBy failed: %v", err)
	}
	if len(offered) != 1 || !offered[0].IsAssignedTo(p2.ID) {
		t.Errorf("joined listing must carry the task's own provider, got %+v", offered)
	}

	participant, err := tasks.FindByParticipant(ctx, p2.ID)
	if err != nil {
		t.Fatalf("FindByParticipant failed: %v", err)
	}
	if len(participant) != 1 || participant[0].ID != taskID {
		t.Errorf("expected assigned task for provider, got %+v", participant)
	}
}

func TestTaskRepository_CompleteAndProgress(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := createAccount(t, accounts, "owner@example.com", constants.RoleUser)
	provider := createAccount(t, accounts, "p@example.com", constants.RoleProvider)
	taskID := createTask(t, tasks, owner.ID)

	if err := tasks.Complete(ctx, taskID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict completing a PENDING task, got %v", err)
	}

	rejected := errors.New("rejected")
	err := tasks.AppendProgress(ctx, taskID, &model.ProgressEntry{Description: "x", Timestamp: time.Now()}, func(*model.Task) error {
		return rejected
	})
	if !errors.Is(err, rejected) {
		t.Fatalf("expected guard error, got %v", err)
	}

	err = tasks.AppendProgress(ctx, "missing", &model.ProgressEntry{Description: "x", Timestamp: time.Now()}, func(*model.Task) error {
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := tasks.AddOffer(ctx, taskID, provider.ID); err != nil {
		t.Fatalf("AddOffer failed: %v", err)
	}
	if err := tasks.TryAcceptOffer(ctx, taskID, provider.ID); err != nil {
		t.Fatalf("TryAcceptOffer failed: %v", err)
	}

	var seen constants.TaskStatus
	err = tasks.AppendProgress(ctx, taskID, &model.ProgressEntry{Description: "first", Timestamp: time.Now()}, func(task *model.Task) error {
		seen = task.Status
		return nil
	})
	if err != nil {
		t.Fatalf("AppendProgress failed: %v", err)
	}
	if seen != constants.StatusInProgress {
		t.Errorf("guard should see the current row, got %s", seen)
	}

	if err := tasks.Complete(ctx, taskID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := tasks.Complete(ctx, taskID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second complete, got %v", err)
	}

	task, err := tasks.FindByID(ctx, taskID, Relations{Progress: true})
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(task.Progress) != 1 || task.Progress[0].Description != "first" {
		t.Errorf("expected only the accepted entry, got %+v", task.Progress)
	}
}

func TestSkillRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	skills := NewSkillRepository(db)
	ctx := context.Background()

	provider := createAccount(t, accounts, "p@example.com", constants.RoleProvider)
	skill := &model.Skill{
		AccountID:    provider.ID,
		Category:     constants.CategoryFrontend,
		Experience:   2,
		NatureOfWork: constants.WorkOnline,
		HourlyRate:   decimal.NewFromInt(30),
		RateCurrency: constants.CurrencyAUD,
	}

	created, err := skills.Upsert(ctx, skill)
	if err != nil || !created {
		t.Fatalf("expected insert, got created=%v err=%v", created, err)
	}

	update := *skill
	update.ID = ""
	update.Experience = 6
	created, err = skills.Upsert(ctx, &update)
	if err != nil || created {
		t.Fatalf("expected update, got created=%v err=%v", created, err)
	}
	if update.ID != skill.ID {
		t.Errorf("update should keep the existing id")
	}

	byAccount, err := skills.ListByAccounts(ctx, []string{provider.ID, "nobody"})
	if err != nil {
		t.Fatalf("ListByAccounts failed: %v", err)
	}
	if len(byAccount[provider.ID]) != 1 || byAccount[provider.ID][0].Experience != 6 {
		t.Errorf("unexpected skills %+v", byAccount)
	}
	if len(byAccount["nobody"]) != 0 {
		t.Errorf("unknown account should have no skills")
	}

	empty, err := skills.ListByAccounts(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("expected empty map, got %v, %v", empty, err)
	}
}
