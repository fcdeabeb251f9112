package request_models

import "github.com/google/uuid"

type CreateFirmRequest struct {
	Name         string  `json:"name"`
	PhoneNumber  string  `json:"phone_number"`
	About        string  `json:"about"`
	BusinessType string  `json:"business_type"`
	Keywords     string  `json:"keywords"`
	Hashtags     string  `json:"hashtags"`
	Status       string  `json:"status"`
	Checked      bool    `json:"checked"`
	Photo        string  `json:"photo"`
	Street       string  `json:"street"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Zip          string  `json:"zip"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`

	StripeCustomerToken  string `json:"stripe_customer_token"`
	StripeCardLastDigits string `json:"stripe_card_last_digits"`
	StripeCardBrand      string `json:"stripe_card_brand"`
	Balance              int64  `json:"balance"`

	OwnerID uuid.UUID `json:"owner_id"`
}

// UpdateFirmRequest uses pointers so PATCH only touches submitted fields.
type UpdateFirmRequest struct {
	Name         *string  `json:"name"`
	PhoneNumber  *string  `json:"phone_number"`
	About        *string  `json:"about"`
	BusinessType *string  `json:"business_type"`
	Keywords     *string  `json:"keywords"`
	Hashtags     *string  `json:"hashtags"`
	Status       *string  `json:"status"`
	Checked      *bool    `json:"checked"`
	Photo        *string  `json:"photo"`
	Street       *string  `json:"street"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Zip          *string  `json:"zip"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`

	StripeCustomerToken  *string `json:"stripe_customer_token"`
	StripeCardLastDigits *string `json:"stripe_card_last_digits"`
	StripeCardBrand      *string `json:"stripe_card_brand"`
	Balance              *int64  `json:"balance"`

	OwnerID *uuid.UUID `json:"owner_id"`
}

type CreatePinBalanceRequest struct {
	AmountInCents int64  `json:"amount_in_cents"`
	Comment       string `json:"comment"`
}
