// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emotion

// Taxonomy is the fixed emotion set, in declaration order. Arg-max ties
// resolve to the earliest entry, which keeps the primary emotion
// deterministic.
var Taxonomy = []string{"joy", "sadness", "anger", "fear", "surprise", "disgust"}

// keywordSet holds the detector vocabulary for one emotion. English words
// are matched on word boundaries; Chinese terms are matched as substrings
// since CJK text has no word delimiters.
type keywordSet struct {
	en []string
	zh []string
}

var emotionKeywords = map[string]keywordSet{
	"joy": {
		en: []string{"happy", "joy", "delight", "excited", "thrilled", "wonderful",
			"amazing", "great", "love", "fantastic", "excellent", "cheerful",
			"elated", "pleased", "glad", "content", "smile", "laugh"},
		zh: []string{"開心", "快樂", "高興", "歡喜", "幸福", "愉快", "興奮", "棒"},
	},
	"sadness": {
		en: []string{"sad", "unhappy", "depressed", "sorrow", "grief", "miserable",
			"heartbroken", "devastated", "lonely", "melancholy", "gloomy",
			"despair", "hopeless", "cry", "tears", "mourn"},
		zh: []string{"悲傷", "難過", "傷心", "沮喪", "憂鬱", "哀傷", "痛苦", "哭"},
	},
	"anger": {
		en: []string{"angry", "furious", "rage", "mad", "irritated", "annoyed",
			"outraged", "hostile", "bitter", "resentful", "frustrated",
			"hate", "loathe", "despise"},
		zh: []string{"生氣", "憤怒", "惱怒", "氣憤", "火大", "討厭", "恨"},
	},
	"fear": {
		en: []string{"afraid", "scared", "terrified", "fearful", "anxious", "worried",
			"nervous", "panic", "dread", "horror", "frightened", "alarmed",
			"uneasy", "threatened"},
		zh: []string{"害怕", "恐懼", "擔心", "焦慮", "緊張", "驚恐", "不安"},
	},
	"surprise": {
		en: []string{"surprised", "shocked", "amazed", "astonished", "stunned",
			"startled", "unexpected", "incredible", "unbelievable",
			"wonder", "awe"},
		zh: []string{"驚訝", "震驚", "意外", "吃驚", "驚奇", "驚嘆"},
	},
	"disgust": {
		en: []string{"disgusted", "revolted", "repulsed", "sick", "nauseated",
			"gross", "awful", "terrible", "horrible", "unpleasant"},
		zh: []string{"噁心", "厭惡", "反感", "討厭", "作嘔"},
	},
}

var intensifiers = keywordSet{
	en: []string{"very", "extremely", "incredibly", "absolutely", "totally",
		"completely", "so", "really", "quite", "truly"},
	zh: []string{"非常", "極度", "超級", "十分", "太"},
}

var negations = keywordSet{
	en: []string{"not", "no", "never", "neither", "none", "nobody", "nothing",
		"nowhere", "hardly", "barely", "scarcely", "don't", "doesn't",
		"didn't", "won't", "wouldn't", "couldn't", "shouldn't"},
	zh: []string{"不", "沒有", "沒", "別", "未", "無"},
}

// positive/negative split used for sentiment polarity.
var (
	positiveEmotions = []string{"joy", "surprise"}
	negativeEmotions = []string{"sadness", "anger", "fear", "disgust"}
)
