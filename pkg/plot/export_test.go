package plot

const (
	MarginX = mLeft + mRight
	MarginY = mTop + mBottom
)

var (
	BarColour     = barColour
	InvalidColour = invalidColour
	BgColour      = bgColour
)
