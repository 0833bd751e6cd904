// Package payment creates Stripe payment intents for the checkout page.
//
// Nothing about a payment is stored locally: the client secret goes back to
// the browser, which confirms the card with Stripe directly.
package payment

import (
	"context"
	"net/http"

	"github.com/deppfellow/luxury-living/internal/config"
	"github.com/deppfellow/luxury-living/internal/errs"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

const (
	// Currency is the only currency the site charges in.
	Currency = string(stripe.CurrencyUSD)

	// MethodCard is the only accepted payment method type.
	MethodCard = "card"
)

var notConfiguredCode = "PAYMENT_NOT_CONFIGURED"

// Client wraps a Stripe payment intent client. A Client built without a
// secret key is valid but answers every call with a 503.
type Client struct {
	intents *paymentintent.Client
	logger  *zerolog.Logger
}

// NewClient builds a client from config. httpClient may be nil.
func NewClient(cfg config.PaymentConfig, logger *zerolog.Logger, httpClient *http.Client) *Client {
	client := &Client{logger: logger}
	if cfg.SecretKey == "" {
		logger.Warn().Msg("payment secret key not configured, payment intents are disabled")
		return client
	}

	backendConfig := &stripe.BackendConfig{
		LeveledLogger:     &leveledLogger{logger: logger},
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
		HTTPClient:        httpClient,
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	client.intents = &paymentintent.Client{
		B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Key: cfg.SecretKey,
	}

	return client
}

// Configured reports whether a secret key was provided.
func (c *Client) Configured() bool {
	return c.intents != nil
}

// CreatePaymentIntent creates a card payment intent for amount cents of USD
// and returns its client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if !c.Configured() {
		return "", errs.NewServiceUnavailableError("Payments are not configured on this server", &notConfiguredCode)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{MethodCard}),
	}
	params.Context = ctx

	intent, err := c.intents.New(params)
	if err != nil {
		return "", c.mapError(err)
	}

	c.logger.Debug().
		Str("payment_intent_id", intent.ID).
		Int64("amount", amount).
		Msg("payment intent created")

	return intent.ClientSecret, nil
}
