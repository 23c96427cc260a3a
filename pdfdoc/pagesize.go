package pdfdoc

// Orientation is the page orientation for PDF layouts.
type Orientation int

const (
	// Portrait orients pages taller than wide.
	Portrait Orientation = iota
	// Landscape orients pages wider than tall.
	Landscape
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// PageSize is a supported page size with layout defaults.
type PageSize int

const (
	// Letter is US Letter, 8.5 by 11 inches.
	Letter PageSize = iota
	// A4 is ISO A4, 8.27 by 11.69 inches.
	A4
)

// String returns the string representation of the page size.
func (s PageSize) String() string {
	if s == A4 {
		return "A4"
	}
	return "Letter"
}

// pointsPerInch converts inch dimensions to PDF points.
const pointsPerInch = 72.0

// portraitDimensions returns portrait (width, height) in inches.
func (s PageSize) portraitDimensions() (float64, float64) {
	if s == A4 {
		return 8.27, 11.69
	}
	return 8.5, 11.0
}

// Width returns the page width in inches for the given orientation.
func (s PageSize) Width(o Orientation) float64 {
	w, h := s.portraitDimensions()
	if o == Landscape {
		return h
	}
	return w
}

// Height returns the page height in inches for the given orientation.
func (s PageSize) Height(o Orientation) float64 {
	w, h := s.portraitDimensions()
	if o == Landscape {
		return w
	}
	return h
}

// LineHeight returns the default line height as a fraction of page height.
func (s PageSize) LineHeight() float64 {
	if s == A4 {
		return 0.025
	}
	return 0.03
}

// RowHeight returns the default row height as a fraction of page height.
func (s PageSize) RowHeight() float64 {
	if s == A4 {
		return 0.045
	}
	return 0.035
}

// Margins returns the default margins as (left, right, top, bottom)
// fractions of the page.
func (s PageSize) Margins() (left, right, top, bottom float64) {
	if s == A4 {
		return 0.06, 0.94, 0.90, 0.10
	}
	return 0.07, 0.93, 0.90, 0.10
}
