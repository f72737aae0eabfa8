package board

import "image/color"

// MaskSize bounds a piece's local frame. Every shape in the catalog fits
// inside a MaskSize x MaskSize box.
const MaskSize = 4

// Mask is a piece's cell occupancy within its local frame. It is a value
// type: assigning one copies it, which is what makes candidate masks cheap
// to build and discard during validation.
type Mask [MaskSize][MaskSize]bool

var defaultShapes = []Mask{
	{ // bar
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	{ // tee
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	{ // elbow
		{true, true, false, false},
		{true, false, false, false},
		{true, false, false, false},
		{false, false, false, false},
	},
	{ // hook
		{true, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
		{false, false, false, false},
	},
	{ // square
		{true, true, false, false},
		{true, true, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
}

// defaultPalette is cycled through at spawn time. Purely cosmetic.
var defaultPalette = []color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}
