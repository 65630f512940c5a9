package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		want   string
	}{
		{name: "valor finito", metric: 0.25, want: "0.25"},
		{name: "zero", metric: 0, want: "0"},
		{name: "NaN vira null", metric: Metric(math.NaN()), want: "null"},
		{name: "infinito vira null", metric: Metric(math.Inf(1)), want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.metric)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestMetric_UnmarshalNull(t *testing.T) {
	var m Metric
	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.False(t, m.IsDefined())

	require.NoError(t, json.Unmarshal([]byte("0.5"), &m))
	assert.True(t, m.IsDefined())
	assert.Equal(t, Metric(0.5), m)
}

func TestMonthKey(t *testing.T) {
	jan := MonthKeyOf(time.Date(2023, time.January, 31, 23, 0, 0, 0, time.UTC))
	feb := MonthKeyOf(time.Date(2023, time.February, 4, 0, 0, 0, 0, time.UTC))
	dec := MonthKeyOf(time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2023-1", jan.String())
	assert.Equal(t, "2023-2", feb.String())
	assert.Equal(t, "2022-12", dec.String())

	assert.True(t, jan.Before(feb))
	assert.True(t, dec.Before(jan))
	assert.False(t, feb.Before(jan))
	assert.Equal(t, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), feb.Start())
}
