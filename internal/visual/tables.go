// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package visual

// elementCategory is one visual element vocabulary with its palette
// contribution. Categories are scanned in the order of categoryOrder so
// output stays deterministic.
type elementCategory struct {
	keywords []string
	colors   []string
}

var categoryOrder = []string{"nature", "architecture", "interior", "characters", "creatures", "magic"}

var visualElements = map[string]elementCategory{
	"nature": {
		keywords: []string{"forest", "tree", "mountain", "river", "ocean", "sky",
			"sun", "moon", "star", "cloud", "rain", "snow", "flower",
			"grass", "leaf", "garden", "lake", "waterfall", "beach"},
		colors: []string{"#228B22", "#87CEEB", "#8FBC8F", "#4682B4", "#F0E68C"},
	},
	"architecture": {
		keywords: []string{"building", "house", "castle", "tower", "bridge", "city",
			"street", "road", "temple", "church", "palace", "ruins"},
		colors: []string{"#696969", "#A9A9A9", "#D3D3D3", "#8B4513", "#CD853F"},
	},
	"interior": {
		keywords: []string{"room", "door", "window", "chair", "table", "bed",
			"lamp", "floor", "ceiling", "wall", "fireplace", "stairs"},
		colors: []string{"#DEB887", "#F5DEB3", "#FAEBD7", "#8B4513", "#D2691E"},
	},
	"characters": {
		keywords: []string{"person", "man", "woman", "child", "king", "queen",
			"warrior", "hero", "villain", "wizard", "princess", "knight"},
		colors: []string{"#FFE4C4", "#FFDAB9", "#FFE4E1", "#8B0000", "#4169E1"},
	},
	"creatures": {
		keywords: []string{"dragon", "monster", "animal", "bird", "wolf", "horse",
			"lion", "snake", "fish", "butterfly", "cat", "dog"},
		colors: []string{"#800000", "#8B0000", "#FFD700", "#FF6347", "#4B0082"},
	},
	"magic": {
		keywords: []string{"magic", "spell", "glow", "light", "fire", "energy",
			"portal", "crystal", "aura", "mystical", "enchanted"},
		colors: []string{"#9932CC", "#8A2BE2", "#00CED1", "#FFD700", "#FF69B4"},
	},
}

type moodMapping struct {
	keywords []string
	lighting string
	colors   []string
}

const defaultMood = "peaceful"

var moodOrder = []string{"peaceful", "dramatic", "mysterious", "romantic",
	"adventurous", "melancholic", "joyful", "eerie"}

var moods = map[string]moodMapping{
	"peaceful": {
		keywords: []string{"calm", "quiet", "serene", "gentle", "tranquil", "peaceful"},
		lighting: "soft natural light",
		colors:   []string{"#E6F3FF", "#B0E0E6", "#98FB98", "#F0FFF0", "#FFFAF0"},
	},
	"dramatic": {
		keywords: []string{"intense", "powerful", "dramatic", "epic", "grand", "mighty"},
		lighting: "dramatic contrast lighting",
		colors:   []string{"#000000", "#8B0000", "#FFD700", "#4B0082", "#1C1C1C"},
	},
	"mysterious": {
		keywords: []string{"mysterious", "dark", "shadow", "hidden", "secret", "unknown"},
		lighting: "dim atmospheric lighting",
		colors:   []string{"#2F4F4F", "#191970", "#483D8B", "#4A4A4A", "#2E2E2E"},
	},
	"romantic": {
		keywords: []string{"love", "romantic", "tender", "passionate", "warm", "intimate"},
		lighting: "warm golden hour",
		colors:   []string{"#FF69B4", "#FFB6C1", "#FFC0CB", "#FFE4E1", "#FFD700"},
	},
	"adventurous": {
		keywords: []string{"adventure", "journey", "quest", "explore", "discover", "brave"},
		lighting: "bright dynamic lighting",
		colors:   []string{"#FF8C00", "#DAA520", "#32CD32", "#4169E1", "#20B2AA"},
	},
	"melancholic": {
		keywords: []string{"sad", "lonely", "melancholy", "sorrow", "loss", "grief"},
		lighting: "overcast diffused light",
		colors:   []string{"#708090", "#778899", "#B0C4DE", "#A9A9A9", "#696969"},
	},
	"joyful": {
		keywords: []string{"happy", "joy", "celebration", "bright", "festive", "cheerful"},
		lighting: "bright warm light",
		colors:   []string{"#FFD700", "#FFA500", "#FF6347", "#32CD32", "#00CED1"},
	},
	"eerie": {
		keywords: []string{"strange", "eerie", "creepy", "ghostly", "haunted", "supernatural"},
		lighting: "cold pale lighting",
		colors:   []string{"#00CED1", "#40E0D0", "#9370DB", "#6B8E23", "#2F4F4F"},
	},
}

var compositionTypes = map[string][]string{
	"landscape":   {"wide shot", "panoramic view", "horizon emphasis", "rule of thirds"},
	"portrait":    {"centered subject", "close-up", "eye-level", "environmental portrait"},
	"action":      {"dynamic angle", "motion blur", "diagonal lines", "low angle"},
	"atmospheric": {"depth of field", "silhouette", "foreground interest", "leading lines"},
	"intimate":    {"close framing", "shallow depth", "warm tones", "soft focus background"},
}

var actionWords = []string{"fight", "run", "chase", "battle", "fly", "escape"}

// styleOrder keeps the /visual_styles listing stable.
var styleOrder = []string{"realistic", "artistic", "abstract", "minimalist"}

type stylePreset struct {
	description     string
	characteristics []string
}

var styles = map[string]stylePreset{
	"realistic": {
		description:     "Photorealistic rendering with accurate lighting and textures",
		characteristics: []string{"natural colors", "detailed textures", "accurate proportions"},
	},
	"artistic": {
		description:     "Painterly style with expressive brushstrokes",
		characteristics: []string{"visible brushwork", "color harmony", "artistic interpretation"},
	},
	"abstract": {
		description:     "Non-representational focusing on shapes, colors, and emotions",
		characteristics: []string{"geometric shapes", "bold colors", "conceptual elements"},
	},
	"minimalist": {
		description:     "Simple, clean designs with essential elements only",
		characteristics: []string{"negative space", "limited palette", "clean lines"},
	},
}
