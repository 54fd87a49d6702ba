package images

import (
	"crypto/md5"
	"math/big"
	"strings"
)

// queryRule maps a topic-text substring onto its search-query variants.
// Rules are evaluated in order; every matching rule contributes its variants.
type queryRule struct {
	pattern  string
	variants []string
}

var queryRules = []queryRule{
	{"fliesen", []string{"tiles interior", "ceramic tiles", "floor tiles design", "bathroom tiles"}},
	{"badezimmer", []string{"modern bathroom", "luxury bathroom", "bathroom interior", "spa bathroom"}},
	{"küche", []string{"modern kitchen", "kitchen design", "kitchen interior", "cooking space"}},
	{"marmor", []string{"marble texture", "marble interior", "marble floor", "white marble"}},
	{"naturstein", []string{"natural stone", "stone wall", "stone texture", "slate tiles"}},
	{"mosaik", []string{"mosaic tiles", "mosaic pattern", "tile mosaic", "colorful mosaic"}},
	{"boden", []string{"floor design", "flooring interior", "hardwood floor", "tile floor"}},
	{"wand", []string{"wall tiles", "wall design", "interior wall", "textured wall"}},
	{"terrasse", []string{"terrace design", "outdoor tiles", "patio design", "balcony decor"}},
	{"wellness", []string{"spa design", "wellness interior", "relaxation room", "sauna design"}},
	{"trend", []string{"interior trend", "design trend", "modern decor", "contemporary interior"}},
	{"design", []string{"interior design", "home decor", "modern design", "minimalist interior"}},
	{"renovierung", []string{"home renovation", "interior renovation", "remodeling", "home improvement"}},
	{"holzoptik", []string{"wood look", "wood texture", "wooden floor", "wood interior"}},
	{"art deco", []string{"art deco interior", "geometric pattern", "vintage design", "retro interior"}},
	{"weihnachten", []string{"christmas decor", "festive interior", "holiday home", "winter decor"}},
	{"nachhaltig", []string{"sustainable design", "eco interior", "green home", "natural materials"}},
	{"luxus", []string{"luxury interior", "premium design", "elegant home", "upscale decor"}},
	{"modern", []string{"modern interior", "contemporary home", "minimalist design", "clean interior"}},
	{"retro", []string{"retro interior", "vintage decor", "classic design", "70s style"}},
}

var defaultQueries = []string{
	"interior design modern",
	"home decor luxury",
	"bathroom tiles beautiful",
	"kitchen interior design",
	"living room modern",
}

// titleHash reduces the article title to a stable non-negative integer. The
// same title always maps to the same query variant and result index, so
// regenerating an article keeps its image while different articles vary.
func titleHash(title string) *big.Int {
	sum := md5.Sum([]byte(title))
	return new(big.Int).SetBytes(sum[:])
}

// hashIndex reduces the title hash modulo n.
func hashIndex(title string, n int) int {
	if n <= 0 {
		return 0
	}
	mod := new(big.Int).Mod(titleHash(title), big.NewInt(int64(n)))
	return int(mod.Int64())
}

// BuildSearchQuery picks a deterministic query for the title+keyword pair.
func BuildSearchQuery(title string, keywords []string) string {
	combined := strings.ToLower(title + " " + strings.Join(keywords, " "))

	var matching []string
	for _, rule := range queryRules {
		if strings.Contains(combined, rule.pattern) {
			matching = append(matching, rule.variants...)
		}
	}

	if len(matching) == 0 {
		matching = defaultQueries
	}

	return matching[hashIndex(title, len(matching))]
}
