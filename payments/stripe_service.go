package payments

import (
	"fmt"
	"math"

	config "github.com/edumart/course_market/configs"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/transfer"
)

type ChargeResult struct {
	IntentID     string
	ClientSecret string
	Status       string
}

type TransferResult struct {
	TransferID string
}

// Gateway is the payment processor surface the workflows depend on. The
// Stripe implementation is the only production one; tests swap in fakes.
type Gateway interface {
	// CreateIntent creates an uncaptured payment intent and returns its id
	// and client secret for client-side confirmation.
	CreateIntent(amountCents int64, currency string, metadata map[string]string) (*ChargeResult, error)
	// CapturePayment charges a payment method synchronously.
	CapturePayment(amountCents int64, currency, paymentMethod string, metadata map[string]string) (*ChargeResult, error)
	// Transfer moves money to a connected payout account, grouped so related
	// transfers can be traced back to their source transaction.
	Transfer(amountCents int64, currency, destination, transferGroup string) (*TransferResult, error)
}

type StripeGateway struct{}

func InitStripe() {
	stripe.Key = config.Config("STRIPE_SECRET_KEY")
}

// MinorUnits converts a decimal price to integer minor-currency units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (StripeGateway) CreateIntent(amountCents int64, currency string, metadata map[string]string) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &ChargeResult{IntentID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (StripeGateway) CapturePayment(amountCents int64, currency, paymentMethod string, metadata map[string]string) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment intent %s not captured, status: %s", pi.ID, pi.Status)
	}

	return &ChargeResult{IntentID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (StripeGateway) Transfer(amountCents int64, currency, destination, transferGroup string) (*TransferResult, error) {
	tr, err := transfer.New(&stripe.TransferParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		Destination:   stripe.String(destination),
		TransferGroup: stripe.String(transferGroup),
	})
	if err != nil {
		return nil, err
	}

	return &TransferResult{TransferID: tr.ID}, nil
}
