package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateReconciliation indicates that a bank transaction is already
// backing a different ledger entry. One bank transaction may back at most
// one ledger entry; accepting the link would double-count the money.
var ErrDuplicateReconciliation = errors.New("bank transaction already reconciled to another ledger entry")

// ErrReconcileInProgress indicates that an auto-reconcile run is already
// in flight for the account. Runs are serialized per account.
var ErrReconcileInProgress = errors.New("auto-reconcile already running for this account")
