package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundToStep(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want int64
	}{
		{"exact thousand stays", 1000, 1000},
		{"exact half stays", 1500, 1500},
		{"zero stays", 0, 0},
		{"just below half goes to half", 1499, 1500},
		{"just above half goes up", 1501, 2000},
		{"small positive goes to 500", 1, 500},
		{"remainder exactly 500", 2500, 2500},
		{"remainder 501 carries", 2501, 3000},
		{"typical daily salary", 60000, 60000},
		{"negative multiple of 500 stays", -500, -500},
		{"negative between steps", -300, 0},
		{"negative past half", -700, -500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RoundToStep(decimal.NewFromInt(tc.in))
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
				"RoundToStep(%d) = %s, want %d", tc.in, got, tc.want)
		})
	}
}

func TestRoundToStepFractional(t *testing.T) {
	// 1800000 / 30 = 60000 exactly; 1000000 / 30 = 33333.33... -> 33500
	daily := decimal.NewFromInt(1000000).Div(decimal.NewFromInt(30))
	assert.True(t, RoundToStep(daily).Equal(decimal.NewFromInt(33500)))
}

func TestRoundToStepIdempotent(t *testing.T) {
	for _, v := range []int64{-2700, -500, -1, 0, 1, 499, 500, 501, 999, 1000, 1499, 1500, 1501, 162000, 1234567} {
		once := RoundToStep(decimal.NewFromInt(v))
		twice := RoundToStep(once)
		assert.True(t, once.Equal(twice), "not idempotent for %d: %s != %s", v, once, twice)
	}
}
