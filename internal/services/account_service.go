package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"skill-share.com/skill-share/internal/auth"
	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
	model "skill-share.com/skill-share/internal/models"
	repository "skill-share.com/skill-share/internal/repositories"
)

type AccountService struct {
	accounts AccountStore
	tokens   TokenGenerator
	log      *zap.Logger
}

func NewAccountService(accounts AccountStore, tokens TokenGenerator, log *zap.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		tokens:   tokens,
		log:      log,
	}
}

func (s *AccountService) Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.MessageResponse, error) {
	if req.Type == constants.AccountIndividual && req.IndividualAccount == nil {
		return nil, apperrors.ErrMissingIndividualAccount
	}
	if req.Type == constants.AccountCompany && req.CompanyAccount == nil {
		return nil, apperrors.ErrMissingCompanyAccount
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Type:         req.Type,
	}
	switch req.Type {
	case constants.AccountIndividual:
		profile := req.IndividualAccount.ToModel()
		account.IndividualAccount = &profile
	case constants.AccountCompany:
		profile := req.CompanyAccount.ToModel()
		account.CompanyAccount = &profile
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account created", zap.String("account_id", account.ID), zap.String("role", string(account.Role)))
	return &dto.MessageResponse{Message: "Account created successfully!"}, nil
}

// Authenticate verifies credentials and issues a bearer token for the account.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*dto.AuthenticateResponse, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound.WithMessage("No account found with the provided email")
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if !auth.ComparePassword(account.PasswordHash, password) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := s.tokens.Generate(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.AuthenticateResponse{
		Account:     account,
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *AccountService) Get(ctx context.Context, accountID string) (*model.Account, error) {
	return findAccount(ctx, s.accounts, accountID)
}
