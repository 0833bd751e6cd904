package payment

import (
	"net/http"

	"github.com/deppfellow/luxury-living/internal/errs"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
)

var (
	rejectedCode   = "PAYMENT_REJECTED"
	unreachableMsg = "The payment processor could not be reached, please retry later"
)

// mapError turns a Stripe failure into an HTTP error.
//
//   - 4xx from Stripe: the request was rejected, 400 with Stripe's message
//   - 401/403: our secret key is wrong, which is a server problem, 502
//   - anything else (network, 5xx): 502
func (c *Client) mapError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		c.logger.Error().Err(err).Msg("payment processor request failed")
		return errs.NewBadGatewayError(unreachableMsg, nil)
	}

	switch status := stripeErr.HTTPStatusCode; {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		c.logger.Error().
			Int("stripe_status", status).
			Msg("payment processor refused our credentials")
		return errs.NewBadGatewayError(unreachableMsg, nil)

	case status >= 400 && status < 500:
		c.logger.Warn().
			Int("stripe_status", status).
			Str("stripe_code", string(stripeErr.Code)).
			Msg("payment intent rejected")
		message := stripeErr.Msg
		if message == "" {
			message = "The payment was rejected"
		}
		return errs.NewBadRequestError(message, true, &rejectedCode, nil, nil)

	default:
		c.logger.Error().Err(err).Int("stripe_status", status).Msg("payment processor error")
		return errs.NewBadGatewayError(unreachableMsg, nil)
	}
}
