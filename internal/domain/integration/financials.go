package integration

import "github.com/shopspring/decimal"

// DefaultPlatformFeeRate is the marketplace's standard 6% platform fee.
// The effective rate is a configuration value; this is its default.
var DefaultPlatformFeeRate = decimal.RequireFromString("0.06")

// Financials holds the monetary figures derived from a raw order. All
// arithmetic is fixed-point decimal so repeated runs never accumulate
// floating-point drift.
type Financials struct {
	// PlatformFee is the marketplace fee, rounded to 2 decimal places
	PlatformFee decimal.Decimal
	// NetRevenue is gross minus platform fee minus affiliate commission
	NetRevenue decimal.Decimal
	// AffiliateRevenue equals gross for affiliate-attributed orders, else zero
	AffiliateRevenue decimal.Decimal
}

// DeriveFinancials computes the financial breakdown for an order. It is pure
// and deterministic: no I/O, no clamping, no business-plausibility checks.
//
//	platformFee      = gross * feeRate, rounded to 2 decimal places
//	netRevenue       = gross - platformFee - commissionPaid
//	affiliateRevenue = gross if isAffiliate else 0
func DeriveFinancials(gross, commissionPaid decimal.Decimal, isAffiliate bool, feeRate decimal.Decimal) Financials {
	fee := gross.Mul(feeRate).Round(2)
	net := gross.Sub(fee).Sub(commissionPaid)

	affiliateRevenue := decimal.Zero
	if isAffiliate {
		affiliateRevenue = gross
	}

	return Financials{
		PlatformFee:      fee,
		NetRevenue:       net,
		AffiliateRevenue: affiliateRevenue,
	}
}
