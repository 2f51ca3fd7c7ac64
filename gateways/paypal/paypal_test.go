package paypal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"checkout/internal/config"
	checkouterrors "checkout/internal/errors"
)

type recordingGateway struct {
	amount float64
	err    error
}

func (g *recordingGateway) Pay(ctx context.Context, amount float64) error {
	g.amount = amount
	return g.err
}

func TestPayConvertsAmountToFloat(t *testing.T) {
	gw := &recordingGateway{}
	backend := NewWithGateway(gw)

	ok, err := backend.Pay(context.Background(), decimal.RequireFromString("116.56"))
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	if !ok {
		t.Error("expected payment to be processed")
	}
	if gw.amount != 116.56 {
		t.Errorf("gateway received %v, expected 116.56", gw.amount)
	}
}

func TestPayNormalizesGatewayFault(t *testing.T) {
	gw := &recordingGateway{err: errors.New("Too high price")}
	backend := NewWithGateway(gw)

	ok, err := backend.Pay(context.Background(), decimal.NewFromInt(200000))
	if ok {
		t.Error("expected payment to fail")
	}
	if err == nil {
		t.Fatal("expected error from gateway fault")
	}
	e, isTyped := err.(*checkouterrors.Error)
	if !isTyped || e.Type != checkouterrors.TypePayment {
		t.Fatalf("expected PAYMENT_ERROR, got %v", err)
	}
	if e.Message != "Too high price" {
		t.Errorf("gateway message not preserved: %q", e.Message)
	}
}

func TestBuiltinGatewayCeiling(t *testing.T) {
	backend := New(config.PaypalConfig{MaxAmount: 100000})

	if ok, err := backend.Pay(context.Background(), decimal.NewFromInt(99999)); err != nil || !ok {
		t.Errorf("amount under ceiling should process, got ok=%v err=%v", ok, err)
	}
	if _, err := backend.Pay(context.Background(), decimal.NewFromInt(100001)); err == nil {
		t.Error("amount over ceiling should fail")
	}
}
