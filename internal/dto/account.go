package dto

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new event account.
type CreateAccountRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	FinancialAccountID string `json:"financialAccountID" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating an event account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	FinancialAccountID *string `json:"financialAccountID"`
	IsActive           *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an event account.
type AccountResponse struct {
	AccountID          string    `json:"accountID"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	FinancialAccountID string    `json:"financialAccountID"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy      string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.EventAccount to AccountResponse.
func ToAccountResponse(acc *domain.EventAccount) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		Name:               acc.Name,
		Description:        acc.Description,
		FinancialAccountID: acc.FinancialAccountID,
		IsActive:           acc.IsActive,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.EventAccount.
func ToListAccountResponse(accounts []domain.EventAccount) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
