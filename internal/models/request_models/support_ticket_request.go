package request_models

type UpdateSupportTicketRequest struct {
	Status  *string `json:"status"`
	Checked *bool   `json:"checked"`
}
