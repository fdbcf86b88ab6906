package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
	// LineHeight is the baseline-to-baseline distance of Normal.
	LineHeight int
}

var defaultFonts *Fonts

func InitFonts() {
	face := basicfont.Face7x13
	defaultFonts = &Fonts{
		Normal:     face,
		Small:      face,
		LineHeight: face.Metrics().Height.Ceil(),
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}
