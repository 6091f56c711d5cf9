package editor

import (
	"testing"

	"github.com/adilbekov/catalog-admin/internal/model"
)

func TestStockStatusThresholds(t *testing.T) {
	for stock := 0; stock <= 50; stock++ {
		got := StockStatus(stock)
		var want string
		switch {
		case stock == 0:
			want = model.StatusOutOfStock
		case stock <= 10:
			want = model.StatusLowStock
		default:
			want = model.StatusActive
		}
		if got != want {
			t.Errorf("StockStatus(%d) = %q, want %q", stock, got, want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "19.99", want: "$19.99"},
		{in: "$19.99", want: "$19.99"},
		{in: "19.9", want: "$19.90"},
		{in: "25", want: "$25.00"},
		{in: " $5 ", want: "$5.00"},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "$", wantErr: true},
	}
	for _, tt := range tests {
		d, err := parsePrice(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q) expected error, got %v", tt.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePrice(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got := formatPrice(d); got != tt.want {
			t.Errorf("formatPrice(parsePrice(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
