package export

// A4 page size in millimeters, the PDF generator's unit.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Placement positions one copy of the rendered canvas image on a PDF page.
// The same full-height image is drawn on every page, shifted up so each page
// shows its own slice.
type Placement struct {
	Y float64
}

// Paginate computes the scaled image height and the per-page placements for
// a rendered canvas of the given pixel size. The image is scaled to the full
// page width; pages are added until the remaining height is used up. A zero
// sized canvas yields a single empty page.
func Paginate(canvasWidth, canvasHeight float64) (imgHeight float64, pages []Placement) {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return 0, []Placement{{Y: 0}}
	}

	imgHeight = canvasHeight * PageWidthMM / canvasWidth
	heightLeft := imgHeight

	pages = append(pages, Placement{Y: 0})
	heightLeft -= PageHeightMM
	for heightLeft > 0 {
		pages = append(pages, Placement{Y: heightLeft - imgHeight})
		heightLeft -= PageHeightMM
	}
	return imgHeight, pages
}
