package api

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// taxCodeTemplates maps a country code to its tax number template.
// In a template, 'Y' stands for any letter and 'X' for any digit; the
// two-character country prefix is literal. Adding a country is a matter
// of adding a row here.
var taxCodeTemplates = map[string]string{
	"DE": "DEXXXXXXXXX",
	"IT": "ITXXXXXXXXXXX",
	"GR": "GRXXXXXXXXX",
	"FR": "FRYYXXXXXXXXXX",
}

var taxCodeRegex = regexp.MustCompile(buildTaxCodeRegex())

// buildTaxCodeRegex turns the template table into a single anchored
// alternation, e.g. FRYYXXXXXXXXXX becomes FR[A-Z]{2}\d{10}.
func buildTaxCodeRegex() string {
	countries := make([]string, 0, len(taxCodeTemplates))
	for country := range taxCodeTemplates {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	parts := make([]string, 0, len(countries))
	for _, country := range countries {
		template := taxCodeTemplates[country]
		part := country
		if n := strings.Count(template, "Y"); n > 0 {
			part += fmt.Sprintf("[A-Z]{%d}", n)
		}
		if n := strings.Count(template, "X"); n > 0 {
			part += fmt.Sprintf(`\d{%d}`, n)
		}
		parts = append(parts, part)
	}

	return fmt.Sprintf("^(%s)$", strings.Join(parts, "|"))
}

// validTaxCode reports whether the code matches a known country format
func validTaxCode(code string) bool {
	return taxCodeRegex.MatchString(code)
}

func validateCalculatePriceRequest(req *CalculatePriceRequest) error {
	if req.Product <= 0 {
		return fmt.Errorf("product is required and must be a positive integer")
	}
	if req.TaxNumber == "" {
		return fmt.Errorf("taxNumber is required")
	}
	if !validTaxCode(req.TaxNumber) {
		return fmt.Errorf("taxNumber has an invalid format")
	}
	return nil
}

func validatePurchaseRequest(req *PurchaseRequest) error {
	if err := validateCalculatePriceRequest(&CalculatePriceRequest{
		Product:    req.Product,
		TaxNumber:  req.TaxNumber,
		CouponCode: req.CouponCode,
	}); err != nil {
		return err
	}
	if req.PaymentProcessor == "" {
		return fmt.Errorf("paymentProcessor is required")
	}
	return nil
}
