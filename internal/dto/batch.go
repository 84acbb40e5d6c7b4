package dto

// BatchDeleteRequest carries the IDs of the records to delete in one batch.
type BatchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BatchResultResponse summarizes a collect-errors-and-continue batch
// operation: aggregate counts, not one message per item.
type BatchResultResponse struct {
	SucceededCount int               `json:"succeededCount"`
	FailedCount    int               `json:"failedCount"`
	Failures       map[string]string `json:"failures,omitempty"` // ID -> reason
}
