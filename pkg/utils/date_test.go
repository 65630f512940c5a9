package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "formato ESR", input: "2023-01-05T00:00:00", want: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339", input: "2023-02-04T00:00:00Z", want: time.Date(2023, 2, 4, 0, 0, 0, 0, time.UTC)},
		{name: "somente data", input: " 2023-03-01 ", want: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "inválida", input: "05/01/2023", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
