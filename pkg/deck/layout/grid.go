// Package layout computes slide geometry for character grids.
//
// All coordinates are in inches with the origin at the top-left corner of
// the slide. The central entry point is [Compute], which takes a requested
// per-cell size and shrinks it in closed form so the grid never overflows
// the slide canvas. Each axis is scaled independently: a grid that is too
// wide keeps its requested row height, and vice versa.
package layout

// Title geometry relative to the grid anchor. The title occupies a fixed
// strip at the anchor; the grid starts below it.
const (
	TitleHeight = 0.5
	GridOffset  = 0.7
)

// Frame describes the slide canvas and the space reserved around a grid.
// Margins are totals per axis (left+right, top+bottom), not per side.
type Frame struct {
	CanvasWidth  float64
	CanvasHeight float64
	WidthMargin  float64
	HeightMargin float64
}

// AvailableWidth returns the horizontal space a grid may occupy.
func (f Frame) AvailableWidth() float64 { return f.CanvasWidth - f.WidthMargin }

// AvailableHeight returns the vertical space a grid may occupy.
func (f Frame) AvailableHeight() float64 { return f.CanvasHeight - f.HeightMargin }

// Request describes a grid and the caller's desired cell geometry.
// AnchorTop/AnchorLeft position the title strip; the grid itself starts
// GridOffset below AnchorTop.
type Request struct {
	Rows       int
	Cols       int
	ColWidth   float64
	RowHeight  float64
	AnchorTop  float64
	AnchorLeft float64
}

// Result holds the computed grid geometry. ColWidth and RowHeight are the
// actual (possibly shrunk) cell dimensions; Width and Height are the totals.
type Result struct {
	ColWidth  float64
	RowHeight float64
	Width     float64
	Height    float64
	GridTop   float64
	GridLeft  float64
}

// Compute determines the actual cell size and placement for a grid so that
// it fits within frame. Each axis is shrunk independently when its nominal
// extent exceeds the available space; cells are never grown. A request with
// zero rows or columns yields a zero-area result at the anchor.
//
// Compute is pure: it holds no state and is safe to call from any number of
// call sites concurrently.
func Compute(req Request, frame Frame) Result {
	width := req.ColWidth * float64(req.Cols)
	height := req.RowHeight * float64(req.Rows)

	colWidth := req.ColWidth
	rowHeight := req.RowHeight

	if aw := frame.AvailableWidth(); width > aw {
		colWidth *= aw / width
		width = colWidth * float64(req.Cols)
	}
	if ah := frame.AvailableHeight(); height > ah {
		rowHeight *= ah / height
		height = rowHeight * float64(req.Rows)
	}

	return Result{
		ColWidth:  colWidth,
		RowHeight: rowHeight,
		Width:     width,
		Height:    height,
		GridTop:   req.AnchorTop + GridOffset,
		GridLeft:  req.AnchorLeft,
	}
}

// Dimensions returns the logical size of a grid of labels: the row count
// and the maximum row length. Shorter rows are treated as padded with
// trailing empty cells, so the column count is the widest row.
func Dimensions(grid [][]string) (rows, cols int) {
	rows = len(grid)
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}
