package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveFinancials_OrganicOrder(t *testing.T) {
	fin := DeriveFinancials(d("45.00"), d("0.00"), false, DefaultPlatformFeeRate)

	assert.True(t, fin.PlatformFee.Equal(d("2.70")), "fee = %s", fin.PlatformFee)
	assert.True(t, fin.NetRevenue.Equal(d("42.30")), "net = %s", fin.NetRevenue)
	assert.True(t, fin.AffiliateRevenue.Equal(decimal.Zero), "affiliate revenue = %s", fin.AffiliateRevenue)
}

func TestDeriveFinancials_AffiliateOrder(t *testing.T) {
	fin := DeriveFinancials(d("100.00"), d("10.00"), true, DefaultPlatformFeeRate)

	assert.True(t, fin.PlatformFee.Equal(d("6.00")))
	assert.True(t, fin.NetRevenue.Equal(d("84.00")))
	assert.True(t, fin.AffiliateRevenue.Equal(d("100.00")))
}

func TestDeriveFinancials_AffiliateRevenueIgnoresCommission(t *testing.T) {
	// Attribution follows the affiliate flag alone, regardless of any
	// commission figure on the order.
	fin := DeriveFinancials(d("50.00"), d("5.00"), false, DefaultPlatformFeeRate)
	assert.True(t, fin.AffiliateRevenue.Equal(decimal.Zero))

	fin = DeriveFinancials(d("50.00"), d("0.00"), true, DefaultPlatformFeeRate)
	assert.True(t, fin.AffiliateRevenue.Equal(d("50.00")))
}

func TestDeriveFinancials_FeeRoundsToTwoPlaces(t *testing.T) {
	// 33.33 * 0.06 = 1.9998 -> 2.00
	fin := DeriveFinancials(d("33.33"), d("0.00"), false, DefaultPlatformFeeRate)

	assert.True(t, fin.PlatformFee.Equal(d("2.00")), "fee = %s", fin.PlatformFee)
	assert.True(t, fin.NetRevenue.Equal(d("31.33")), "net = %s", fin.NetRevenue)
}

func TestDeriveFinancials_NegativeAndZeroGrossPassThrough(t *testing.T) {
	fin := DeriveFinancials(d("-20.00"), d("0.00"), false, DefaultPlatformFeeRate)
	assert.True(t, fin.PlatformFee.Equal(d("-1.20")))
	assert.True(t, fin.NetRevenue.Equal(d("-18.80")))

	fin = DeriveFinancials(decimal.Zero, d("3.00"), false, DefaultPlatformFeeRate)
	assert.True(t, fin.PlatformFee.Equal(decimal.Zero))
	assert.True(t, fin.NetRevenue.Equal(d("-3.00")))
}

func TestDeriveFinancials_CustomFeeRate(t *testing.T) {
	fin := DeriveFinancials(d("200.00"), d("0.00"), false, d("0.10"))

	assert.True(t, fin.PlatformFee.Equal(d("20.00")))
	assert.True(t, fin.NetRevenue.Equal(d("180.00")))
}

func TestDeriveFinancials_Deterministic(t *testing.T) {
	// Repeated derivation of the same inputs must be bit-for-bit stable.
	first := DeriveFinancials(d("19.99"), d("1.37"), true, DefaultPlatformFeeRate)
	for i := 0; i < 100; i++ {
		again := DeriveFinancials(d("19.99"), d("1.37"), true, DefaultPlatformFeeRate)
		assert.True(t, first.PlatformFee.Equal(again.PlatformFee))
		assert.True(t, first.NetRevenue.Equal(again.NetRevenue))
		assert.True(t, first.AffiliateRevenue.Equal(again.AffiliateRevenue))
	}
}
