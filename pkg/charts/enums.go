package charts

// Legal value sets for the string-typed configuration fields. Models store
// plain strings and accept any legal literal; the constants below name the
// canonical ones.

// Grid line display modes.
const (
	GridOff   = "off"
	GridOn    = "on"
	GridTicks = "ticks"
)

// Plot height modes.
const (
	PlotHeightFixed = "fixed"
	PlotHeightRatio = "ratio"
)

// Flag replacement styles for country-column charts.
const (
	FlagsOff    = "off"
	Flags4x3    = "4x3"
	Flags1x1    = "1x1"
	FlagsCircle = "circle"
)

// Value label display modes.
const (
	LabelsHover  = "hover"
	LabelsAlways = "always"
	LabelsOff    = "off"
)

// Line interpolation methods.
const (
	InterpolationLinear     = "linear"
	InterpolationStep       = "step"
	InterpolationStepAfter  = "step-after"
	InterpolationStepBefore = "step-before"
	InterpolationMonotoneX  = "monotone-x"
	InterpolationCardinal   = "cardinal"
	InterpolationNatural    = "natural"
)

var (
	gridDisplayValues   = []string{GridOff, GridOn, GridTicks}
	plotHeightModes     = []string{PlotHeightRatio, PlotHeightFixed}
	replaceFlagsStyles  = []string{FlagsOff, Flags4x3, Flags1x1, FlagsCircle}
	valueLabelDisplays  = []string{LabelsHover, LabelsAlways, LabelsOff}
	valueLabelPlaces    = []string{"inside", "outside", "below"}
	valueLabelAligns    = []string{"left", "right"}
	valueLabelModes     = []string{"left", "diverging"}
	gridLabelPositions  = []string{"auto", "inside", "outside", "off", "on"}
	gridLabelAligns     = []string{"left", "right"}
	interpolations      = []string{InterpolationLinear, InterpolationStep, InterpolationStepAfter, InterpolationStepBefore, InterpolationMonotoneX, InterpolationCardinal}
	areaInterpolations  = append(interpolations, InterpolationNatural)
	lineWidths          = []string{"style0", "style1", "style2", "style3", "invisible"}
	lineDashes          = []string{"style1", "style2", "style3", "style4"}
	strokeTypes         = []string{"solid", "dashed", "dotted"}
	connectorLineTypes  = []string{"straight", "curveRight", "curveLeft"}
	textAligns          = []string{"tl", "tc", "tr", "ml", "mc", "mr", "bl", "bc", "br"}
	lineSymbolShapes    = []string{"circle", "square", "diamond", "triangleUp", "triangleDown", "cross", "hexagon", "star", "wye"}
	lineSymbolStyles    = []string{"hollow", "fill"}
	lineSymbolOns       = []string{"every", "first", "last", "both"}
	overlayPatterns     = []string{"solid", "diagonal-up", "diagonal-down"}
	scatterShapes       = []string{"symbolCircle", "symbolSquare", "symbolDiamond", "symbolTriangle", "symbolTriangleDown", "symbolCross", "symbolStar", "symbolWye"}
	scatterAxisPosition = []string{"bottom", "top", "left", "right", "zero"}
	scatterGridLines    = []string{"on", "off", "no-labels", "just-labels"}
	regressionMethods   = []string{"linear", "quadratic", "cubic", "exponential", "logarithmic", "power"}
	columnTypes         = []string{"auto", "text", "number", "date"}
	uploadMethods       = []string{"copy", "upload", "google-spreadsheet", "external-data"}
)
