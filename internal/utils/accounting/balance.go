package accounting

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance reconstructs the signed running balance from its stored
// absolute value and nature flag.
func SignedBalance(finalBalance decimal.Decimal, nature domain.BalanceNature) decimal.Decimal {
	if nature == domain.NatureNegative {
		return finalBalance.Neg()
	}
	return finalBalance
}

// NextBalance applies one ledger entry to the prior signed running balance
// of its account and returns the stored form: absolute value plus nature.
// This is the insert-time chain rule; each entry carries the balance after
// itself so the next insert only needs the latest entry.
func NextBalance(priorSigned, amountIn, amountOut decimal.Decimal) (decimal.Decimal, domain.BalanceNature) {
	signed := priorSigned.Add(amountIn).Sub(amountOut)
	return signed.Abs(), natureOf(signed)
}

// OwnBalance derives saldo_final/natureza from an entry's own amounts alone,
// ignoring the account chain. This is the edit-time rule inherited from the
// original system and kept for compatibility: edits do not re-walk the chain.
func OwnBalance(amountIn, amountOut decimal.Decimal) (decimal.Decimal, domain.BalanceNature) {
	signed := amountIn.Sub(amountOut)
	return signed.Abs(), natureOf(signed)
}

func natureOf(signed decimal.Decimal) domain.BalanceNature {
	if signed.IsNegative() {
		return domain.NatureNegative
	}
	return domain.NaturePositive
}
