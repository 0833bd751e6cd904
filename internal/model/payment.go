package model

type CreatePaymentIntentRequest struct {
	ServiceCost float64 `json:"serviceCost" validate:"gt=0"`
}

func (r *CreatePaymentIntentRequest) Validate() error {
	return validate(r)
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
