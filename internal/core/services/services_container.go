package services

import (
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Unit:     NewUnitService(repos.UnitRepo),
		Currency: NewCurrencyService(repos.CurrencyRepo, repos.ExchangeRateRepo),
	}
}
