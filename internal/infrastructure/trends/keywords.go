package trends

// relevanceVocabulary is the fixed domain vocabulary used to score feed entries.
// Scoring counts how many of these appear in the lowercased title+summary.
var relevanceVocabulary = []string{
	"fliesen", "tiles", "keramik", "ceramic",
	"bad", "bathroom", "küche", "kitchen",
	"boden", "floor", "wand", "wall",
	"design", "interior", "innenausstattung",
	"marmor", "marble", "naturstein", "stone",
	"mosaik", "mosaic", "terracotta",
	"trend", "renovation", "renovierung",
	"sanierung", "wellness", "spa",
}

// brandKeywords always lead the suggested keyword list.
var brandKeywords = []string{"Fliesen Frankfurt", "Hermitage"}

// seoKeywordRule maps a topic-text substring onto an SEO phrase.
// Rules are evaluated in order; first occurrence of a phrase wins.
type seoKeywordRule struct {
	pattern string
	keyword string
}

var seoKeywordRules = []seoKeywordRule{
	{"bad", "Badezimmerfliesen"},
	{"bathroom", "Badezimmerfliesen"},
	{"küche", "Küchenfliesen"},
	{"kitchen", "Küchenfliesen"},
	{"boden", "Bodenfliesen"},
	{"floor", "Bodenfliesen"},
	{"wand", "Wandfliesen"},
	{"wall", "Wandfliesen"},
	{"marmor", "Marmorfliesen"},
	{"marble", "Marmorfliesen"},
	{"naturstein", "Naturstein"},
	{"mosaik", "Mosaikfliesen"},
	{"design", "Interior Design"},
	{"trend", "Fliesen Trends 2025"},
	{"wellness", "Wellness Bad"},
	{"terrace", "Terrassenfliesen"},
	{"terrasse", "Terrassenfliesen"},
}

const maxSuggestedKeywords = 6
