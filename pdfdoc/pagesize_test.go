package pdfdoc

import "testing"

func TestPageSizeDimensions(t *testing.T) {
	tests := []struct {
		name        string
		size        PageSize
		orientation Orientation
		wantW       float64
		wantH       float64
	}{
		{"letter portrait", Letter, Portrait, 8.5, 11.0},
		{"letter landscape", Letter, Landscape, 11.0, 8.5},
		{"a4 portrait", A4, Portrait, 8.27, 11.69},
		{"a4 landscape", A4, Landscape, 11.69, 8.27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Width(tt.orientation); got != tt.wantW {
				t.Errorf("Width() = %v, want %v", got, tt.wantW)
			}
			if got := tt.size.Height(tt.orientation); got != tt.wantH {
				t.Errorf("Height() = %v, want %v", got, tt.wantH)
			}
		})
	}
}

func TestPageSizeDefaults(t *testing.T) {
	if got := Letter.LineHeight(); got != 0.03 {
		t.Errorf("Letter.LineHeight() = %v, want 0.03", got)
	}
	if got := A4.LineHeight(); got != 0.025 {
		t.Errorf("A4.LineHeight() = %v, want 0.025", got)
	}
	if got := Letter.RowHeight(); got != 0.035 {
		t.Errorf("Letter.RowHeight() = %v, want 0.035", got)
	}
	if got := A4.RowHeight(); got != 0.045 {
		t.Errorf("A4.RowHeight() = %v, want 0.045", got)
	}

	l, r, tm, b := Letter.Margins()
	if l != 0.07 || r != 0.93 || tm != 0.90 || b != 0.10 {
		t.Errorf("Letter.Margins() = %v, %v, %v, %v", l, r, tm, b)
	}
	l, r, tm, b = A4.Margins()
	if l != 0.06 || r != 0.94 || tm != 0.90 || b != 0.10 {
		t.Errorf("A4.Margins() = %v, %v, %v, %v", l, r, tm, b)
	}
}

func TestPageSizeString(t *testing.T) {
	if got := Letter.String(); got != "Letter" {
		t.Errorf("Letter.String() = %q", got)
	}
	if got := A4.String(); got != "A4" {
		t.Errorf("A4.String() = %q", got)
	}
	if got := Portrait.String(); got != "Portrait" {
		t.Errorf("Portrait.String() = %q", got)
	}
	if got := Landscape.String(); got != "Landscape" {
		t.Errorf("Landscape.String() = %q", got)
	}
}
