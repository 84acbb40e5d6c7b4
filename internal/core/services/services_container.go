package services

import (
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/platform/config"
	"github.com/evtfin/eventfin_backend/internal/utils/matching"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	matchCfg := matching.Config{
		DateWindowDays: cfg.MatchDateWindowDays,
		PriceTolerance: cfg.MatchPriceTolerance,
		MaxGroupSize:   cfg.MatchMaxGroupSize,
	}

	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.PlannedItem = NewPlannedItemService(repos.PlannedItemRepo, repos.AccountRepo)
	container.LedgerEntry = NewLedgerEntryService(repos.LedgerEntryRepo, repos.AccountRepo)
	container.Reconciliation = NewReconciliationService(
		repos.LedgerEntryRepo,
		repos.BankTransactionRepo,
		repos.AccountRepo,
	)
	container.Consolidation = NewConsolidationService(
		repos.PlannedItemRepo,
		repos.LedgerEntryRepo,
		repos.BankTransactionRepo,
		repos.AccountRepo,
	)
	container.EventMatch = NewEventMatchService(
		repos.BankTransactionRepo,
		repos.EventRepo,
		repos.AccountRepo,
		WithEventMatchConfig(matchCfg),
	)
	container.Event = NewEventService(repos.EventRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Interface implementation checks
var (
	_ portssvc.AccountSvcFacade        = (*accountService)(nil)
	_ portssvc.PlannedItemSvcFacade    = (*plannedItemService)(nil)
	_ portssvc.LedgerEntrySvcFacade    = (*ledgerEntryService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.ConsolidationSvcFacade  = (*consolidationService)(nil)
	_ portssvc.EventMatchSvcFacade     = (*eventMatchService)(nil)
	_ portssvc.EventSvcFacade          = (*eventService)(nil)
	_ portssvc.UserSvcFacade           = (*userService)(nil)
)
