package service

// Service holds all business logic services.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service reading through reader and writing through processor.
func NewService(reader accountLister, processor actionProcessor) *Service {
	return &Service{
		Account: NewAccountService(reader, processor),
	}
}
