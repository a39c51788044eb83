package client

import "testing"

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{10, 1000},
		{12.34, 1234},
		{12.345, 1235},
		{0.1, 10},
		{29.99, 2999},
	}

	for _, tt := range tests {
		got, err := toMinorUnits(tt.price)
		if err != nil {
			t.Errorf("toMinorUnits(%v) returned error: %v", tt.price, err)
			continue
		}
		if got != tt.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestToMinorUnitsRejectsNonPositive(t *testing.T) {
	for _, price := range []float64{0, -1, -0.01} {
		if _, err := toMinorUnits(price); err == nil {
			t.Errorf("toMinorUnits(%v) accepted a non-positive price", price)
		}
	}
}
