package model

// ActivityCategory is the closed set of motion classes reported by the
// wearable. The numeric codes are fixed by the device firmware.
type ActivityCategory int

const (
	CategoryRandom ActivityCategory = iota
	CategoryClapping
	CategoryBrushingTeeth
	CategoryWashingHands
	CategoryCombingHair
)

// Categories lists every known category in code order.
var Categories = []ActivityCategory{
	CategoryRandom,
	CategoryClapping,
	CategoryBrushingTeeth,
	CategoryWashingHands,
	CategoryCombingHair,
}

func (c ActivityCategory) Valid() bool {
	return c >= CategoryRandom && c <= CategoryCombingHair
}

func (c ActivityCategory) String() string {
	switch c {
	case CategoryRandom:
		return "randomMotion"
	case CategoryClapping:
		return "clapping"
	case CategoryBrushingTeeth:
		return "brushingTeeth"
	case CategoryWashingHands:
		return "cleaningHands"
	case CategoryCombingHair:
		return "brushingHair"
	}
	return "unknown"
}
