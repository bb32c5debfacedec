// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scent

// scentFamily is one olfactory vocabulary with its authored scents. The
// first scent is the family's primary, the last one its ambient choice.
type scentFamily struct {
	keywords      []string
	scents        []scentEntry
	baseIntensity float64
}

type scentEntry struct {
	name  string
	notes []string
}

// familyOrder fixes iteration order for deterministic output and the
// /scent_families listing. It matches the hardware channel numbering.
var familyOrder = []string{"floral", "woody", "citrus", "spicy", "fresh",
	"sweet", "earthy", "oceanic", "smoky", "herbal"}

const defaultFamily = "fresh"

var scentFamilies = map[string]scentFamily{
	"floral": {
		keywords: []string{"flower", "rose", "jasmine", "lavender", "lily", "garden",
			"blossom", "bloom", "petal", "bouquet", "orchid", "violet"},
		scents: []scentEntry{
			{"Rose Garden", []string{"rose", "green leaf", "morning dew"}},
			{"Jasmine Night", []string{"jasmine", "white flower", "honey"}},
			{"Lavender Fields", []string{"lavender", "herb", "soft musk"}},
		},
		baseIntensity: 0.6,
	},
	"woody": {
		keywords: []string{"forest", "tree", "wood", "oak", "pine", "cedar",
			"bark", "timber", "trunk", "log", "cabin"},
		scents: []scentEntry{
			{"Deep Forest", []string{"pine", "cedar", "earth"}},
			{"Oak Study", []string{"oak", "leather", "paper"}},
			{"Sandalwood Dream", []string{"sandalwood", "cream", "warmth"}},
		},
		baseIntensity: 0.5,
	},
	"citrus": {
		keywords: []string{"lemon", "orange", "lime", "citrus", "grapefruit",
			"tangerine", "zest", "fresh", "bright", "sunny"},
		scents: []scentEntry{
			{"Morning Citrus", []string{"lemon", "bergamot", "fresh air"}},
			{"Orange Grove", []string{"orange", "neroli", "green"}},
			{"Lime Burst", []string{"lime", "mint", "sparkling"}},
		},
		baseIntensity: 0.7,
	},
	"spicy": {
		keywords: []string{"spice", "cinnamon", "pepper", "ginger", "clove",
			"cardamom", "exotic", "warm", "market", "bazaar"},
		scents: []scentEntry{
			{"Spice Market", []string{"cinnamon", "cardamom", "saffron"}},
			{"Warm Ginger", []string{"ginger", "pepper", "honey"}},
			{"Exotic Blend", []string{"clove", "nutmeg", "vanilla"}},
		},
		baseIntensity: 0.6,
	},
	"fresh": {
		keywords: []string{"clean", "air", "breeze", "wind", "morning", "rain",
			"dew", "mist", "crisp", "cool", "refreshing"},
		scents: []scentEntry{
			{"Mountain Air", []string{"clean air", "pine", "ice"}},
			{"After Rain", []string{"petrichor", "wet earth", "ozone"}},
			{"Morning Dew", []string{"green", "water", "fresh grass"}},
		},
		baseIntensity: 0.4,
	},
	"sweet": {
		keywords: []string{"sweet", "candy", "sugar", "honey", "vanilla", "cake",
			"dessert", "chocolate", "caramel", "cookie"},
		scents: []scentEntry{
			{"Vanilla Dream", []string{"vanilla", "cream", "sugar"}},
			{"Honey Nectar", []string{"honey", "flower", "warmth"}},
			{"Chocolate Warmth", []string{"cocoa", "milk", "caramel"}},
		},
		baseIntensity: 0.6,
	},
	"earthy": {
		keywords: []string{"earth", "soil", "ground", "mud", "dirt", "cave",
			"stone", "rock", "mineral", "ancient", "roots"},
		scents: []scentEntry{
			{"Deep Earth", []string{"soil", "roots", "mushroom"}},
			{"Stone Cave", []string{"mineral", "moss", "damp"}},
			{"Ancient Ground", []string{"patchouli", "vetiver", "earth"}},
		},
		baseIntensity: 0.5,
	},
	"oceanic": {
		keywords: []string{"ocean", "sea", "beach", "wave", "salt", "marine",
			"coastal", "shore", "tide", "seaweed", "coral"},
		scents: []scentEntry{
			{"Ocean Breeze", []string{"sea salt", "marine", "driftwood"}},
			{"Beach Morning", []string{"sand", "coconut", "sun"}},
			{"Deep Sea", []string{"algae", "water", "mineral"}},
		},
		baseIntensity: 0.5,
	},
	"smoky": {
		keywords: []string{"smoke", "fire", "burn", "ash", "ember", "flame",
			"campfire", "incense", "charcoal", "bonfire"},
		scents: []scentEntry{
			{"Campfire Night", []string{"smoke", "wood", "embers"}},
			{"Incense Temple", []string{"frankincense", "myrrh", "smoke"}},
			{"Ember Glow", []string{"burnt wood", "warmth", "ash"}},
		},
		baseIntensity: 0.6,
	},
	"herbal": {
		keywords: []string{"herb", "mint", "basil", "sage", "thyme", "rosemary",
			"eucalyptus", "tea", "medicine", "apothecary"},
		scents: []scentEntry{
			{"Herb Garden", []string{"basil", "thyme", "rosemary"}},
			{"Mint Fresh", []string{"mint", "eucalyptus", "green"}},
			{"Sage Wisdom", []string{"sage", "cedar", "dry grass"}},
		},
		baseIntensity: 0.5,
	},
}

// emotionScents biases family selection toward an emotion's associations.
var emotionScents = map[string][]string{
	"joy":        {"citrus", "floral", "fresh"},
	"sadness":    {"woody", "earthy", "oceanic"},
	"anger":      {"spicy", "smoky", "earthy"},
	"fear":       {"smoky", "earthy", "herbal"},
	"surprise":   {"citrus", "fresh", "herbal"},
	"calm":       {"floral", "herbal", "woody"},
	"excitement": {"citrus", "spicy", "sweet"},
	"romance":    {"floral", "sweet", "spicy"},
}

// channelMap assigns each family a diffuser hardware channel.
var channelMap = map[string]int{
	"floral": 1, "woody": 2, "citrus": 3, "spicy": 4, "fresh": 5,
	"sweet": 6, "earthy": 7, "oceanic": 8, "smoky": 9, "herbal": 10,
}
