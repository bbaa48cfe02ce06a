package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		currency string
		want     int64
	}{
		{"positive cents", 1234, USD, 1234},
		{"zero", 0, USD, 0},
		{"negative cents", -5000, USD, -5000},
		{"euro", 1000, EUR, 1000},
		{"yen (no decimals)", 10000, JPY, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.cents, tt.currency)
			assert.Equal(t, tt.want, m.Amount())
			assert.Equal(t, tt.currency, m.Currency())
		})
	}
}

func TestNewFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     int64
	}{
		{"precise decimal", "123.45", USD, 12345},
		{"many decimals", "99.999", USD, 10000}, // Rounds up
		{"whole number", "500", USD, 50000},
		{"negative", "-25.50", USD, -2550},
		{"singapore dollars", "18.30", SGD, 1830},
		{"yen keeps whole units", "1500", JPY, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			m := NewFromDecimal(d, tt.currency)
			assert.Equal(t, tt.want, m.Amount())
		})
	}
}

func TestNewFromDecimalUnknownCurrency(t *testing.T) {
	m := NewFromDecimal(decimal.NewFromInt(5), "NOPE")
	assert.Equal(t, USD, m.Currency())
	assert.Equal(t, int64(500), m.Amount())
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain", "42.50", 4250, false},
		{"thousands separator", "1,234.56", 123456, false},
		{"whitespace", " 99 ", 9900, false},
		{"garbage", "lunch", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewFromString(tt.input, USD)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount())
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "$1,234.56", New(123456, USD).Display())
	assert.Equal(t, "$0.00", Zero(USD).Display())

	var nilMoney *Money
	assert.Equal(t, "$0.00", nilMoney.Display())
}

func TestToDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("42.50")
	m := NewFromDecimal(d, USD)
	assert.True(t, d.Equal(m.ToDecimal()))
}

func TestJSONRoundTrip(t *testing.T) {
	m := New(4250, USD)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"display":"$42.50"`)

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, int64(4250), back.Amount())
	assert.Equal(t, USD, back.Currency())
}
