package core

// Sprite is a drawable image placed in world units. Sprite hosts look the
// asset up by name and stretch it over Box.
type Sprite struct {
	Asset  string
	Box    Box
	Tinted bool // Draw with the red "hurt" tint
}

// Label is a line of text placed in world units. X, Y is the top-left corner.
type Label struct {
	Text string
	X, Y float64
	Size float64 // Font size in world units
}
