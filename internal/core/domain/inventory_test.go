package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
)

func TestInventoryItemStatusAt(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	testCases := []struct {
		name      string
		expiresAt *time.Time
		expected  domain.StockStatus
	}{
		{"no expiry date", nil, domain.StockNormal},
		{"expired yesterday", date(2025, 6, 14), domain.StockExpired},
		{"expired long ago", date(2024, 1, 1), domain.StockExpired},
		{"expires today", date(2025, 6, 15), domain.StockExpiringSoon},
		{"expires within window", date(2025, 7, 1), domain.StockExpiringSoon},
		{"expires on window edge", date(2025, 7, 15), domain.StockExpiringSoon},
		{"expires after window", date(2025, 7, 16), domain.StockNormal},
		{"expires far ahead", date(2026, 1, 1), domain.StockNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := domain.InventoryItem{Product: "Adubo NPK", ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.expected, item.StatusAt(today))
		})
	}
}

func TestInventoryItemStatusAtUsesCallerCalendarDay(t *testing.T) {
	// Late evening in UTC-5: the UTC clock has already rolled into June 16,
	// but the caller's calendar still says June 15.
	local := time.FixedZone("UTC-5", -5*3600)
	today := time.Date(2025, 6, 15, 21, 0, 0, 0, local)

	expiresToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	item := domain.InventoryItem{Product: "Calcário", ExpiresAt: &expiresToday}

	assert.Equal(t, domain.StockExpiringSoon, item.StatusAt(today))

	expiredYesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	item.ExpiresAt = &expiredYesterday
	assert.Equal(t, domain.StockExpired, item.StatusAt(today))
}
