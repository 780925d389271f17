package accounting_test

import (
	"testing"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name        string
		prior       decimal.Decimal
		in, out     decimal.Decimal
		wantBalance decimal.Decimal
		wantNature  domain.BalanceNature
	}{
		{
			name:        "first entry on empty account",
			prior:       decimal.Zero,
			in:          dec("1000"),
			out:         decimal.Zero,
			wantBalance: dec("1000"),
			wantNature:  domain.NaturePositive,
		},
		{
			name:        "outflow keeps balance positive",
			prior:       dec("1000"),
			in:          decimal.Zero,
			out:         dec("300"),
			wantBalance: dec("700"),
			wantNature:  domain.NaturePositive,
		},
		{
			name:        "outflow crosses zero",
			prior:       dec("700"),
			in:          decimal.Zero,
			out:         dec("900"),
			wantBalance: dec("200"),
			wantNature:  domain.NatureNegative,
		},
		{
			name:        "exactly zero is positive nature",
			prior:       dec("250"),
			in:          decimal.Zero,
			out:         dec("250"),
			wantBalance: decimal.Zero,
			wantNature:  domain.NaturePositive,
		},
		{
			name:        "recovery from negative balance",
			prior:       dec("-200"),
			in:          dec("500"),
			out:         decimal.Zero,
			wantBalance: dec("300"),
			wantNature:  domain.NaturePositive,
		},
		{
			name:        "entry with both inflow and outflow",
			prior:       dec("100"),
			in:          dec("50.25"),
			out:         dec("30.10"),
			wantBalance: dec("120.15"),
			wantNature:  domain.NaturePositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, nature := accounting.NextBalance(tt.prior, tt.in, tt.out)
			assert.True(t, tt.wantBalance.Equal(balance), "balance: want %s, got %s", tt.wantBalance, balance)
			assert.Equal(t, tt.wantNature, nature)
		})
	}
}

func TestSignedBalance(t *testing.T) {
	assert.True(t, dec("200").Equal(accounting.SignedBalance(dec("200"), domain.NaturePositive)))
	assert.True(t, dec("-200").Equal(accounting.SignedBalance(dec("200"), domain.NatureNegative)))
	assert.True(t, decimal.Zero.Equal(accounting.SignedBalance(decimal.Zero, domain.NaturePositive)))
}

func TestNextBalance_ChainEqualsNetOfAmounts(t *testing.T) {
	// Walking the chain entry by entry must land on the same value as
	// summing all inflows minus all outflows.
	entries := []struct{ in, out string }{
		{"1000", "0"},
		{"0", "300"},
		{"0", "900"},
		{"150.75", "0"},
		{"0", "50.75"},
	}

	signed := decimal.Zero
	net := decimal.Zero
	for _, e := range entries {
		balance, nature := accounting.NextBalance(signed, dec(e.in), dec(e.out))
		signed = accounting.SignedBalance(balance, nature)
		net = net.Add(dec(e.in)).Sub(dec(e.out))
	}

	assert.True(t, net.Equal(signed), "want %s, got %s", net, signed)
	assert.True(t, dec("-100").Equal(signed))
}

func TestOwnBalance(t *testing.T) {
	balance, nature := accounting.OwnBalance(dec("100"), dec("40"))
	assert.True(t, dec("60").Equal(balance))
	assert.Equal(t, domain.NaturePositive, nature)

	balance, nature = accounting.OwnBalance(dec("40"), dec("100"))
	assert.True(t, dec("60").Equal(balance))
	assert.Equal(t, domain.NatureNegative, nature)

	balance, nature = accounting.OwnBalance(dec("75"), dec("75"))
	assert.True(t, decimal.Zero.Equal(balance))
	assert.Equal(t, domain.NaturePositive, nature)
}
