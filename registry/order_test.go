package registry

import "testing"

// TestOrder_Less exercises exact fractional comparison.
func TestOrder_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b Order
		want bool
	}{
		{"line_wins", Order{Line: 3}, Order{Line: 7}, true},
		{"same_line_fraction", Order{Line: 5, Index: 1, Total: 3}, Order{Line: 5, Index: 2, Total: 3}, true},
		{"cross_denominator", Order{Line: 5, Index: 1, Total: 3}, Order{Line: 5, Index: 1, Total: 2}, true}, // 1/3 < 1/2
		{"fraction_below_next_line", Order{Line: 5, Index: 2, Total: 3}, Order{Line: 6}, true},
		{"equal", Order{Line: 5, Index: 1, Total: 2}, Order{Line: 5, Index: 1, Total: 2}, false},
		{"zero_total_as_whole", Order{Line: 5}, Order{Line: 5, Index: 1, Total: 4}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("(%+v).Less(%+v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
