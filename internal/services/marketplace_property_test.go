package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"skill-share.com/skill-share/internal/constants"
	apperrors "skill-share.com/skill-share/internal/errors"
	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

var propertyDBSeq atomic.Int64

func propertyEnv(rt *rapid.T) (*testEnv, func()) {
	dsn := fmt.Sprintf("file:marketplace%d?mode=memory&cache=shared", propertyDBSeq.Add(1))
	db, err := openTestDB(dsn, 1)
	if err != nil {
		rt.Fatalf("failed to set up database: %v", err)
	}
	return newEnv(db), func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func TestProperty_CreateTaskAcceptsValidInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		env, closeDB := propertyEnv(rt)
		defer closeDB()
		ctx := context.Background()

		owner, err := env.newAccount(constants.RoleUser)
		if err != nil {
			rt.Fatalf("create owner: %v", err)
		}

		input := TaskInput{
			Category:             rapid.SampledFrom([]constants.SkillCategory{constants.CategoryFrontend, constants.CategoryBackend, constants.CategoryTesting}).Draw(rt, "category"),
			Name:                 rapid.StringMatching(`[A-Za-z0-9 ]{1,50}`).Draw(rt, "name"),
			Description:          rapid.StringMatching(`[A-Za-z0-9 .,]{1,100}`).Draw(rt, "description"),
			ExpectedStartDate:    time.Now().AddDate(0, 0, rapid.IntRange(0, 365).Draw(rt, "days_ahead")),
			ExpectedWorkingHours: float64(rapid.IntRange(1, 500).Draw(rt, "hours")),
			HourlyRate:           decimal.New(int64(rapid.IntRange(1, 100000).Draw(rt, "rate_cents")), -2),
			RateCurrency:         rapid.SampledFrom([]constants.RateCurrency{constants.CurrencyUSD, constants.CurrencyAUD, constants.CurrencySGD, constants.CurrencyINR}).Draw(rt, "currency"),
		}

		if _, err := env.taskSvc.CreateTask(ctx, owner.ID, input); err != nil {
			rt.Fatalf("valid input rejected: %v", err)
		}

		tasks, err := env.taskSvc.GetTasksForAccount(ctx, owner.ID)
		if err != nil {
			rt.Fatalf("GetTasksForAccount: %v", err)
		}
		task := tasks[0]
		if task.Status != constants.StatusPending || task.HasProvider() || len(task.Offers) != 0 || len(task.Progress) != 0 {
			rt.Fatalf("new task not in initial state: %+v", task)
		}
		if task.Name != input.Name || !task.HourlyRate.Equal(input.HourlyRate) {
			rt.Fatalf("stored task differs from input: %+v", task)
		}
	})
}

// marketModel mirrors the expected lifecycle of a single task.
type marketModel struct {
	status   constants.TaskStatus
	provider string
	offers   map[string]bool
	progress int
}

func (m *marketModel) expectOffer(caller *model.Account) error {
	switch {
	case m.provider != "":
		return apperrors.ErrOfferAlreadyAccepted
	case !caller.IsProvider():
		return apperrors.ErrUnauthorizedRole
	case m.offers[caller.ID]:
		return apperrors.ErrAlreadyOffered
	}
	return nil
}

func (m *marketModel) expectAccept(caller, owner *model.Account, providerID string) error {
	switch {
	case caller.ID != owner.ID:
		return apperrors.ErrUnauthorized
	case m.provider != "":
		return apperrors.ErrAlreadyAccepted
	case !m.offers[providerID]:
		return apperrors.ErrOfferNotFound
	}
	return nil
}

func (m *marketModel) expectProgress(caller *model.Account) error {
	switch {
	case m.provider == "" || m.provider != caller.ID:
		return apperrors.ErrInvalidTaskProgressUpdate
	case m.status == constants.StatusCompleted:
		return apperrors.ErrTaskAlreadyCompleted
	}
	return nil
}

func (m *marketModel) expectComplete(caller, owner *model.Account) error {
	switch {
	case caller.ID != owner.ID:
		return apperrors.ErrInvalidTaskStatusUpdate
	case m.status == constants.StatusCompleted:
		return apperrors.ErrTaskAlreadyCompleted
	case m.status == constants.StatusPending:
		return apperrors.ErrTaskNeverStarted
	}
	return nil
}

func checkOutcome(rt *rapid.T, op string, got, want error) {
	if want == nil {
		if got != nil {
			rt.Fatalf("%s: expected success, got %v", op, got)
		}
		return
	}
	if !errors.Is(got, want) {
		rt.Fatalf("%s: expected %v, got %v", op, want, got)
	}
}

var statusRank = map[constants.TaskStatus]int{
	constants.StatusPending:    0,
	constants.StatusInProgress: 1,
	constants.StatusCompleted:  2,
}

func TestProperty_TaskLifecycle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		env, closeDB := propertyEnv(rt)
		defer closeDB()
		ctx := context.Background()

		var accounts []*model.Account
		for _, role := range []constants.Role{
			constants.RoleUser, constants.RoleUser,
			constants.RoleProvider, constants.RoleProvider, constants.RoleProvider,
		} {
			a, err := env.newAccount(role)
			if err != nil {
				rt.Fatalf("create account: %v", err)
			}
			accounts = append(accounts, a)
		}
		owner := accounts[0]

		taskID, err := env.newTask(owner)
		if err != nil {
			rt.Fatalf("create task: %v", err)
		}

		m := &marketModel{status: constants.StatusPending, offers: make(map[string]bool)}
		lastRank := 0
		pick := func(rt *rapid.T, label string) *model.Account {
			return rapid.SampledFrom(accounts).Draw(rt, label)
		}

		rt.Repeat(map[string]func(*rapid.T){
			"offer": func(rt *rapid.T) {
				caller := pick(rt, "caller")
				want := m.expectOffer(caller)
				_, err := env.offerSvc.MakeOffer(ctx, caller.ID, taskID)
				checkOutcome(rt, "offer", err, want)
				if want == nil {
					m.offers[caller.ID] = true
				}
			},
			"accept": func(rt *rapid.T) {
				caller := pick(rt, "caller")
				provider := pick(rt, "provider")
				want := m.expectAccept(caller, owner, provider.ID)
				_, err := env.offerSvc.AcceptOffer(ctx, caller.ID, provider.ID, taskID)
				checkOutcome(rt, "accept", err, want)
				if want == nil {
					m.provider = provider.ID
					m.status = constants.StatusInProgress
				}
			},
			"progress": func(rt *rapid.T) {
				caller := pick(rt, "caller")
				want := m.expectProgress(caller)
				_, err := env.taskSvc.UpdateProgress(ctx, caller.ID, taskID, "step")
				checkOutcome(rt, "progress", err, want)
				if want == nil {
					m.progress++
				}
			},
			"complete": func(rt *rapid.T) {
				caller := pick(rt, "caller")
				want := m.expectComplete(caller, owner)
				_, err := env.taskSvc.UpdateStatus(ctx, caller.ID, taskID)
				checkOutcome(rt, "complete", err, want)
				if want == nil {
					m.status = constants.StatusCompleted
				}
			},
			"": func(rt *rapid.T) {
				task, err := env.tasks.FindByID(ctx, taskID, repository.AllRelations)
				if err != nil {
					rt.Fatalf("load task: %v", err)
				}
				if task.Status != m.status {
					rt.Fatalf("status %s, expected %s", task.Status, m.status)
				}
				if rank := statusRank[task.Status]; rank < lastRank {
					rt.Fatalf("status moved backwards to %s", task.Status)
				} else {
					lastRank = rank
				}
				if (m.provider == "") == task.HasProvider() {
					rt.Fatalf("provider %v, expected %q", task.ProviderID, m.provider)
				}
				if m.provider != "" && !task.IsAssignedTo(m.provider) {
					rt.Fatalf("provider %v, expected %q", *task.ProviderID, m.provider)
				}
				if task.Status != constants.StatusPending && !task.HasProvider() {
					rt.Fatalf("task left PENDING without a provider")
				}
				if len(task.Offers) != len(m.offers) {
					rt.Fatalf("%d offers stored, expected %d", len(task.Offers), len(m.offers))
				}
				if len(task.Progress) != m.progress {
					rt.Fatalf("%d progress entries stored, expected %d", len(task.Progress), m.progress)
				}
			},
		})
	})
}
