package request_models

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Photo     *string `json:"photo"`
	// Birthday is "YYYY-MM-DD"; the first change after creation is recorded
	// permanently on the account.
	Birthday *string `json:"birthday"`
	Status   *string `json:"status"`
	Blocked  *bool   `json:"blocked"`
}
