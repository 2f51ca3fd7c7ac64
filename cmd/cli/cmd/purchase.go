// Package cmd - purchase command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"checkout/core/pricing"
	"checkout/core/purchase"
	"checkout/gateways"
	"checkout/gateways/paypal"
	"checkout/gateways/stripe"
	"checkout/internal/config"
)

var (
	purchaseProductID int64
	purchaseTaxNumber string
	purchaseCoupon    string
	purchaseBackend   string
)

// purchaseCmd represents the purchase command
var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Price a product and pay through a backend",
	Long: `Compute the final price for a product and charge it through the named
payment backend. The backend name is matched case-insensitively against
the registered backends.

Examples:
  checkout purchase --product 1 --tax-number GR012345678 --backend paypal
  checkout purchase --product 2 --tax-number DE012345678 --coupon P10 --backend stripe`,
	RunE: runPurchase,
}

func init() {
	purchaseCmd.Flags().Int64VarP(&purchaseProductID, "product", "p", 0, "product id (required)")
	purchaseCmd.Flags().StringVarP(&purchaseTaxNumber, "tax-number", "t", "", "tax code (required)")
	purchaseCmd.Flags().StringVarP(&purchaseCoupon, "coupon", "c", "", "coupon code")
	purchaseCmd.Flags().StringVarP(&purchaseBackend, "backend", "b", "", "payment backend (required)")
	_ = purchaseCmd.MarkFlagRequired("product")
	_ = purchaseCmd.MarkFlagRequired("tax-number")
	_ = purchaseCmd.MarkFlagRequired("backend")
}

func runPurchase(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cfg := config.Get()
	registry := gateways.NewRegistry()
	if err := registry.Register(paypal.New(cfg.Gateways.Paypal)); err != nil {
		return err
	}
	if err := registry.Register(stripe.New(cfg.Gateways.Stripe)); err != nil {
		return err
	}

	svc := purchase.NewService(pricing.NewCalculator(store), registry)
	processed, err := svc.Execute(context.Background(), purchaseBackend, purchaseProductID, purchaseTaxNumber, purchaseCoupon)
	if err != nil {
		return err
	}

	if processed {
		fmt.Println("payment processed")
	} else {
		fmt.Println("payment declined")
	}
	return nil
}
