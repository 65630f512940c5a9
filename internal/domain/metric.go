package domain

import (
	"math"
	"strconv"
)

// Metric é um float64 que serializa NaN e infinitos como null, já que JSON não os representa
type Metric float64

func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric(math.NaN())
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*m = Metric(f)
	return nil
}

// IsDefined informa se a métrica tem um valor finito
func (m Metric) IsDefined() bool {
	f := float64(m)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
