package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaleType(t *testing.T) {
	for raw, want := range map[string]SaleType{
		"FOR_SALE":  SaleTypeForSale,
		"for_trade": SaleTypeForTrade,
		" FOR_SALE": SaleTypeForSale,
	} {
		got, err := ParseSaleType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := ParseSaleType("FOR_RENT")
	assert.Error(t, err)
	_, err = ParseSaleType("")
	assert.Error(t, err)
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, got)

	_, err = ParseOrderStatus("SHIPPED")
	assert.Error(t, err)
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
}

func TestParseSaleTypes(t *testing.T) {
	list, err := ParseSaleTypes([]string{"FOR_SALE", "FOR_TRADE"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.True(t, list.Contains(SaleTypeForSale))

	_, err = ParseSaleTypes([]string{"FOR_SALE", "FOR_SALE"})
	assert.Error(t, err)

	_, err = ParseSaleTypes([]string{"NOPE"})
	assert.Error(t, err)
}

func TestSaleTypeListValueScan(t *testing.T) {
	list := SaleTypeList{SaleTypeForSale, SaleTypeForTrade}

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "FOR_SALE,FOR_TRADE", value)

	var scanned SaleTypeList
	require.NoError(t, scanned.Scan("FOR_SALE,FOR_TRADE"))
	assert.Equal(t, list, scanned)

	require.NoError(t, scanned.Scan(""))
	assert.Nil(t, scanned)

	require.NoError(t, scanned.Scan([]byte("FOR_TRADE")))
	assert.Equal(t, SaleTypeList{SaleTypeForTrade}, scanned)

	assert.Error(t, scanned.Scan("BOGUS"))
	assert.Error(t, scanned.Scan(42))
}
