package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgetwise/internal/operator/actions"
	"github.com/carson-networks/budgetwise/internal/storage/account"
)

var (
	// ErrAccountNotFound is returned when a delete targets an account that does not exist.
	ErrAccountNotFound = account.ErrNotFound
	// ErrInvalidAccount wraps validation failures of an AccountCreate.
	ErrInvalidAccount = errors.New("invalid account")
)

type accountLister interface {
	List(ctx context.Context) ([]*account.Account, error)
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AccountService handles account business logic. Reads go straight to storage;
// writes are serialized through the operator.
type AccountService struct {
	reader    accountLister
	processor actionProcessor
	validate  *validator.Validate
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader accountLister, processor actionProcessor) *AccountService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return AccountType(fl.Field().String()).Valid()
	})

	return &AccountService{
		reader:    reader,
		processor: processor,
		validate:  validate,
	}
}

// ListAccounts returns every account, newest first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// CreateAccount stores a new account and returns it as persisted.
func (s *AccountService) CreateAccount(ctx context.Context, create AccountCreate) (*Account, error) {
	create.Name = strings.TrimSpace(create.Name)
	if err := s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}

	action := &actions.CreateAccount{
		Name: create.Name,
		Type: accountTypeToStorage(create.Type),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := accountFromStorage(action.Created)
	return &created, nil
}

// DeleteAccount removes an account. It returns ErrAccountNotFound when nothing was deleted.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{ID: id})
}
