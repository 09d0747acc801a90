package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// Standard fontconfig property names, usable with the Pattern Add/Get
// accessors and with ObjectSet.
const (
	PropFamily     = "family"
	PropStyle      = "style"
	PropFullName   = "fullname"
	PropSlant      = "slant"
	PropWeight     = "weight"
	PropWidth      = "width"
	PropSize       = "size"
	PropPixelSize  = "pixelsize"
	PropSpacing    = "spacing"
	PropFoundry    = "foundry"
	PropAntialias  = "antialias"
	PropHinting    = "hinting"
	PropHintStyle  = "hintstyle"
	PropFile       = "file"
	PropIndex      = "index"
	PropOutline    = "outline"
	PropScalable   = "scalable"
	PropColor      = "color"
	PropDPI        = "dpi"
	PropCharSet    = "charset"
	PropLang       = "lang"
	PropFontFormat = "fontformat"
	PropPostscript = "postscriptname"
)

// Weight values for PropWeight.
const (
	WeightThin       = 0
	WeightExtraLight = 40
	WeightLight      = 50
	WeightBook       = 75
	WeightRegular    = 80
	WeightMedium     = 100
	WeightSemiBold   = 180
	WeightBold       = 200
	WeightExtraBold  = 205
	WeightBlack      = 210
)

// Slant values for PropSlant.
const (
	SlantRoman   = 0
	SlantItalic  = 100
	SlantOblique = 110
)

// Width values for PropWidth.
const (
	WidthUltraCondensed = 50
	WidthExtraCondensed = 63
	WidthCondensed      = 75
	WidthSemiCondensed  = 87
	WidthNormal         = 100
	WidthSemiExpanded   = 113
	WidthExpanded       = 125
	WidthExtraExpanded  = 150
	WidthUltraExpanded  = 200
)

// Spacing values for PropSpacing.
const (
	SpacingProportional = 0
	SpacingDual         = 90
	SpacingMono         = 100
	SpacingCharCell     = 110
)

// MatchKind selects which set of substitution rules Substitute applies.
type MatchKind int32

const (
	// MatchPattern applies the rules for application-supplied patterns.
	MatchPattern MatchKind = MatchKind(bindings.FcMatchPattern)
	// MatchFont applies the rules for patterns describing installed fonts.
	MatchFont MatchKind = MatchKind(bindings.FcMatchFont)
	// MatchScan applies the rules used while scanning font files.
	MatchScan MatchKind = MatchKind(bindings.FcMatchScan)
)
