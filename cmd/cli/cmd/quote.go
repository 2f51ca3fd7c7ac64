// Package cmd - quote command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"checkout/core/pricing"
	"checkout/core/types"
)

var (
	quoteProductID int64
	quoteTaxNumber string
	quoteCoupon    string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute the final price for a product",
	Long: `Compute the final price for a product: base price, minus the coupon
discount when one is given, plus tax on the discounted amount.

Examples:
  checkout quote --product 1 --tax-number IT01234567890
  checkout quote --product 3 --tax-number FRXY0123456789 --coupon P50`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Int64VarP(&quoteProductID, "product", "p", 0, "product id (required)")
	quoteCmd.Flags().StringVarP(&quoteTaxNumber, "tax-number", "t", "", "tax code (required)")
	quoteCmd.Flags().StringVarP(&quoteCoupon, "coupon", "c", "", "coupon code")
	_ = quoteCmd.MarkFlagRequired("product")
	_ = quoteCmd.MarkFlagRequired("tax-number")
}

func runQuote(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	calculator := pricing.NewCalculator(store)
	quote, err := calculator.CalculatePrice(context.Background(), quoteProductID, quoteTaxNumber, quoteCoupon)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", quote.Product.Name, types.FormatMoney(quote.Price))
	if quote.Coupon != nil {
		fmt.Printf("  base %s, coupon %s (-%s%%), tax %s%%\n",
			types.FormatMoney(quote.Product.Price),
			quote.Coupon.Code,
			quote.Coupon.Discount.String(),
			quote.Tax.Rate.String())
	} else {
		fmt.Printf("  base %s, tax %s%%\n",
			types.FormatMoney(quote.Product.Price),
			quote.Tax.Rate.String())
	}
	return nil
}
