package dto

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePlannedItemRequest defines the data needed to create a forecast line.
type CreatePlannedItemRequest struct {
	FlowType     domain.FlowType `json:"flowType" binding:"required,oneof=INCOME EXPENSE"`
	Category     string          `json:"category" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Remark       string          `json:"remark"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	ExpectedDate time.Time       `json:"expectedDate" binding:"required"`
}

// UpdatePlannedItemRequest defines the data allowed for updating a planned item.
type UpdatePlannedItemRequest struct {
	Category     *string                   `json:"category"`
	Description  *string                   `json:"description"`
	Remark       *string                   `json:"remark"`
	Amount       *decimal.Decimal          `json:"amount"`
	ExpectedDate *time.Time                `json:"expectedDate"`
	Status       *domain.PlannedItemStatus `json:"status"`
}

// PlannedItemResponse defines the data returned for a planned item.
type PlannedItemResponse struct {
	PlannedItemID string                   `json:"plannedItemID"`
	AccountID     string                   `json:"accountID"`
	FlowType      domain.FlowType          `json:"flowType"`
	Category      string                   `json:"category"`
	Description   string                   `json:"description"`
	Remark        string                   `json:"remark"`
	Amount        decimal.Decimal          `json:"amount"`
	ExpectedDate  time.Time                `json:"expectedDate"`
	Status        domain.PlannedItemStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

// ToPlannedItemResponse converts a domain.PlannedItem.
func ToPlannedItemResponse(item *domain.PlannedItem) PlannedItemResponse {
	return PlannedItemResponse{
		PlannedItemID: item.PlannedItemID,
		AccountID:     item.AccountID,
		FlowType:      item.FlowType,
		Category:      item.Category,
		Description:   item.Description,
		Remark:        item.Remark,
		Amount:        item.Amount,
		ExpectedDate:  item.ExpectedDate,
		Status:        item.Status,
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToListPlannedItemResponse converts a slice of domain.PlannedItem.
func ToListPlannedItemResponse(items []domain.PlannedItem) []PlannedItemResponse {
	res := make([]PlannedItemResponse, len(items))
	for i, item := range items {
		res[i] = ToPlannedItemResponse(&item)
	}
	return res
}
