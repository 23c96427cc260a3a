package pdfdoc

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", Color{0, 0, 0}, false},
		{"#ffffff", Color{255, 255, 255}, false},
		{"#1a2b3c", Color{0x1a, 0x2b, 0x3c}, false},
		{"1a2b3c", Color{0x1a, 0x2b, 0x3c}, false},
		{"#f00", Color{255, 0, 0}, false},
		{"#abc", Color{0xaa, 0xbb, 0xcc}, false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
