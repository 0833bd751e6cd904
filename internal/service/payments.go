package service

import (
	"context"
	"math"

	"github.com/deppfellow/luxury-living/internal/errs"
	"github.com/deppfellow/luxury-living/internal/model"
)

type PaymentService struct {
	intents IntentCreator
}

func NewPaymentService(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

// Cents converts a dollar price to the smallest currency unit, rounding to
// the nearest cent so 19.99 becomes 1999 and not 1998.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// CreateIntent starts a card payment for serviceCost dollars.
func (s *PaymentService) CreateIntent(ctx context.Context, req *model.CreatePaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	amount := Cents(req.ServiceCost)
	if amount < 1 {
		return nil, errs.NewBadRequestError("serviceCost must be at least one cent", true, nil,
			[]errs.FieldError{{Field: "serviceCost", Error: "must be at least 0.01"}}, nil)
	}

	secret, err := s.intents.CreatePaymentIntent(ctx, amount)
	if err != nil {
		return nil, err
	}

	return &model.PaymentIntentResponse{ClientSecret: secret}, nil
}
