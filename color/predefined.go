package color

// Predefined lists the color names available without a \definecolor:
// the xcolor base colors followed by the dvipsnames set.
var Predefined = []string{
	"black", "blue", "brown", "cyan", "darkgray", "gray", "green",
	"lightgray", "lime", "magenta", "olive", "orange", "pink", "purple",
	"red", "teal", "violet", "white", "yellow",
	"Apricot", "Aquamarine", "Bittersweet", "Black", "Blue", "BlueGreen",
	"BlueViolet", "BrickRed", "Brown", "BurntOrange", "CadetBlue",
	"CarnationPink", "Cerulean", "CornflowerBlue", "Cyan", "Dandelion",
	"DarkOrchid", "Emerald", "ForestGreen", "Fuchsia", "Goldenrod",
	"Gray", "Green", "GreenYellow", "JungleGreen", "Lavender",
	"LimeGreen", "Magenta", "Mahogany", "Maroon", "Melon",
	"MidnightBlue", "Mulberry", "NavyBlue", "OliveGreen", "Orange",
	"OrangeRed", "Orchid", "Peach", "Periwinkle", "PineGreen", "Plum",
	"ProcessBlue", "Purple", "RawSienna", "Red", "RedOrange",
	"RedViolet", "Rhodamine", "RoyalBlue", "RoyalPurple", "RubineRed",
	"Salmon", "SeaGreen", "Sepia", "SkyBlue", "SpringGreen", "Tan",
	"TealBlue", "Thistle", "Turquoise", "Violet", "VioletRed", "White",
	"WildStrawberry", "Yellow", "YellowGreen", "YellowOrange",
}

// IsPredefined reports whether name needs no \definecolor in the
// preamble.
func IsPredefined(name string) bool {
	for _, p := range Predefined {
		if p == name {
			return true
		}
	}

	return false
}
