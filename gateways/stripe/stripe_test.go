package stripe

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"checkout/internal/config"
	checkouterrors "checkout/internal/errors"
)

type recordingGateway struct {
	amount  int64
	decline bool
	err     error
}

func (g *recordingGateway) ProcessPayment(ctx context.Context, amount int64) (bool, error) {
	g.amount = amount
	if g.err != nil {
		return false, g.err
	}
	return !g.decline, nil
}

func TestPayTruncatesAmountToInteger(t *testing.T) {
	gw := &recordingGateway{}
	backend := NewWithGateway(gw)

	ok, err := backend.Pay(context.Background(), decimal.RequireFromString("116.56"))
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	if !ok {
		t.Error("expected payment to be processed")
	}
	if gw.amount != 116 {
		t.Errorf("gateway received %d, expected truncated 116", gw.amount)
	}
}

func TestPayReportsDeclineWithoutError(t *testing.T) {
	gw := &recordingGateway{decline: true}
	backend := NewWithGateway(gw)

	ok, err := backend.Pay(context.Background(), decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("decline must not be an error, got %v", err)
	}
	if ok {
		t.Error("expected declined payment to report false")
	}
}

func TestPayNormalizesGatewayFault(t *testing.T) {
	gw := &recordingGateway{err: errors.New("connection reset")}
	backend := NewWithGateway(gw)

	_, err := backend.Pay(context.Background(), decimal.NewFromInt(500))
	if err == nil {
		t.Fatal("expected error from gateway fault")
	}
	e, isTyped := err.(*checkouterrors.Error)
	if !isTyped || e.Type != checkouterrors.TypePayment {
		t.Fatalf("expected PAYMENT_ERROR, got %v", err)
	}
	if e.Message != "connection reset" {
		t.Errorf("gateway message not preserved: %q", e.Message)
	}
}

func TestBuiltinGatewayMinimum(t *testing.T) {
	backend := New(config.StripeConfig{MinAmount: 100})

	if ok, err := backend.Pay(context.Background(), decimal.NewFromInt(500)); err != nil || !ok {
		t.Errorf("amount above minimum should process, got ok=%v err=%v", ok, err)
	}
	ok, err := backend.Pay(context.Background(), decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("below-minimum amount is a decline, not an error: %v", err)
	}
	if ok {
		t.Error("amount below minimum should be declined")
	}
}
