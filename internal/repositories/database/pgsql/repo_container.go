package pgsql

import (
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:         newPgxEventAccountRepository(dbPool),
		PlannedItemRepo:     newPgxPlannedItemRepository(dbPool),
		LedgerEntryRepo:     newPgxLedgerEntryRepository(dbPool),
		BankTransactionRepo: newPgxBankTransactionRepository(dbPool),
		EventRepo:           newPgxEventRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
	}
}
