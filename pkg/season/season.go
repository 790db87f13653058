// Package season classifies a corrected skin tone, expressed in CIELAB,
// into one of the four seasonal color categories.
package season

// Season is one of the four seasonal color archetypes.
type Season int

// Seasons in the order probabilities are reported.
const (
	Winter Season = iota
	Summer
	Autumn
	Spring
)

// All lists every season in reporting order.
var All = [4]Season{Winter, Summer, Autumn, Spring}

// String returns the short season name.
func (s Season) String() string {
	switch s {
	case Winter:
		return "Winter"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	case Spring:
		return "Spring"
	default:
		return "Unknown"
	}
}

// FullName returns the season name with its undertone/depth description.
func (s Season) FullName() string {
	switch s {
	case Winter:
		return "Winter (Cool & Deep)"
	case Summer:
		return "Summer (Cool & Light)"
	case Autumn:
		return "Autumn (Warm & Deep)"
	case Spring:
		return "Spring (Warm & Light)"
	default:
		return "Unknown"
	}
}

// Temperature is the warm/cool undertone category.
type Temperature int

// Undertone categories.
const (
	Cool Temperature = iota
	Warm
)

func (t Temperature) String() string {
	if t == Warm {
		return "Warm"
	}
	return "Cool"
}

// Depth is the light/deep coloring category.
type Depth int

// Depth categories.
const (
	Deep Depth = iota
	Light
)

func (d Depth) String() string {
	if d == Light {
		return "Light"
	}
	return "Deep"
}
