package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []int{101, 301, 801, 1110, 1501}, c.CommodityCodes())
	assert.Equal(t, "Wheat - HRW", c.CommodityName(101))
	assert.Equal(t, "Rice- LG Brown", c.CommodityName(1501))
	assert.Equal(t, "Metric Tons", c.UnitName(1))
	assert.Equal(t, "Running Bales", c.UnitName(2))
	assert.Equal(t, "Pounds", c.UnitName(5))
}

func TestCatalog_UnknownKeys(t *testing.T) {
	c := MustDefault()

	assert.Equal(t, "", c.CommodityName(999))
	assert.Equal(t, "", c.UnitName(42))

	_, ok := c.Commodity(999)
	assert.False(t, ok)
}

func TestCatalog_CommodityCodesIsACopy(t *testing.T) {
	c := MustDefault()

	codes := c.CommodityCodes()
	codes[0] = 0

	assert.Equal(t, 101, c.CommodityCodes()[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
		codes   []int
	}{
		{
			name: "preserva a ordem declarada",
			doc: `
units: [{id: 1, name: Metric Tons}]
commodities:
  - {code: 801, name: Soybeans, unitId: 1}
  - {code: 101, name: Wheat - HRW, unitId: 1}
`,
			codes: []int{801, 101},
		},
		{
			name: "commodity duplicada",
			doc: `
units: [{id: 1, name: Metric Tons}]
commodities:
  - {code: 101, name: A, unitId: 1}
  - {code: 101, name: B, unitId: 1}
`,
			wantErr: "commodity duplicada",
		},
		{
			name: "unidade desconhecida",
			doc: `
units: [{id: 1, name: Metric Tons}]
commodities:
  - {code: 101, name: A, unitId: 7}
`,
			wantErr: "unidade desconhecida",
		},
		{
			name:    "yaml inválido",
			doc:     "units: [",
			wantErr: "erro ao decodificar catálogo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.codes, c.CommodityCodes())
		})
	}
}
