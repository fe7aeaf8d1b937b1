package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultServings            = 4
	DefaultMinutesPerGroup     = 15
	DefaultIngredientsPerGroup = 3
)

// ServingsDirection selects how UpdateServings changes the serving count
type ServingsDirection string

const (
	ServingsIncrease ServingsDirection = "inc"
	ServingsDecrease ServingsDirection = "dec"
)

// Ingredient is a parsed ingredient line
type Ingredient struct {
	Count      float64 `json:"count" yaml:"count"`
	Unit       string  `json:"unit" yaml:"unit"`
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
}

// Recipe is a recipe loaded from the remote API
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	ImageURL    string       `json:"image_url"`
	SourceURL   string       `json:"source_url"`
	Ingredients []Ingredient `json:"ingredients"`
	Servings    int          `json:"servings"`
	CookingTime int          `json:"cooking_time"` // minutes
}

// NewRecipe builds a recipe from raw ingredient lines, parsing them and
// computing servings and cooking time with default estimates
func NewRecipe(id, title, author, imageURL, sourceURL string, lines []string) *Recipe {
	r := &Recipe{
		ID:          id,
		Title:       title,
		Author:      author,
		ImageURL:    imageURL,
		SourceURL:   sourceURL,
		Ingredients: ParseIngredients(lines),
	}
	r.CalcTime(DefaultIngredientsPerGroup, DefaultMinutesPerGroup)
	r.CalcServings(DefaultServings)
	return r
}

// CalcTime estimates cooking time: every group of perGroup ingredients takes minutes
func (r *Recipe) CalcTime(perGroup, minutes int) {
	if perGroup <= 0 {
		perGroup = DefaultIngredientsPerGroup
	}
	groups := int(math.Ceil(float64(len(r.Ingredients)) / float64(perGroup)))
	r.CookingTime = groups * minutes
}

// CalcServings sets the base serving count
func (r *Recipe) CalcServings(servings int) {
	if servings < 1 {
		servings = DefaultServings
	}
	r.Servings = servings
}

// UpdateServings moves servings one step and scales every ingredient count
func (r *Recipe) UpdateServings(dir ServingsDirection) error {
	next := r.Servings
	switch dir {
	case ServingsIncrease:
		next++
	case ServingsDecrease:
		next--
	default:
		return ErrInvalidServings
	}
	if next < 1 {
		return ErrInvalidServings
	}

	ratio := float64(next) / float64(r.Servings)
	for i := range r.Ingredients {
		r.Ingredients[i].Count *= ratio
	}
	r.Servings = next
	return nil
}

// Summary returns the search-result view of the recipe
func (r *Recipe) Summary() SearchResult {
	return SearchResult{ID: r.ID, Title: r.Title, Author: r.Author, ImageURL: r.ImageURL}
}

var (
	longUnits = []struct{ long, short string }{
		{"tablespoons", "tbsp"},
		{"tablespoon", "tbsp"},
		{"ounces", "oz"},
		{"ounce", "oz"},
		{"teaspoons", "tsp"},
		{"teaspoon", "tsp"},
		{"cups", "cup"},
		{"pounds", "pound"},
	}
	knownUnits = map[string]bool{
		"tbsp": true, "oz": true, "tsp": true, "cup": true, "pound": true, "kg": true, "g": true,
	}
	parenthesized = regexp.MustCompile(` *\([^)]*\) *`)
)

// ParseIngredients parses every line
func ParseIngredients(lines []string) []Ingredient {
	out := make([]Ingredient, 0, len(lines))
	for _, line := range lines {
		out = append(out, ParseIngredient(line))
	}
	return out
}

// ParseIngredient splits a free-text line like "1-1/2 cups flour (sifted)"
// into count, short unit and ingredient name
func ParseIngredient(raw string) Ingredient {
	text := strings.ToLower(raw)
	for _, u := range longUnits {
		text = strings.ReplaceAll(text, u.long, u.short)
	}
	text = strings.TrimSpace(parenthesized.ReplaceAllString(text, " "))
	words := strings.Fields(text)

	unitIdx := -1
	for i, w := range words {
		if knownUnits[w] {
			unitIdx = i
			break
		}
	}

	if unitIdx >= 0 {
		count, ok := parseCount(words[:unitIdx])
		if !ok {
			count = 1
		}
		return Ingredient{
			Count:      count,
			Unit:       words[unitIdx],
			Ingredient: strings.Join(words[unitIdx+1:], " "),
		}
	}

	if len(words) > 0 {
		if n, err := strconv.Atoi(leadingDigits(words[0])); err == nil && n != 0 {
			return Ingredient{Count: float64(n), Ingredient: strings.Join(words[1:], " ")}
		}
	}

	return Ingredient{Count: 1, Ingredient: strings.Join(words, " ")}
}

// parseCount sums tokens such as "1", "1/2" and "1-1/2"
func parseCount(tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	var total float64
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, "-") {
			v, ok := parseNumber(part)
			if !ok {
				return 0, false
			}
			total += v
		}
	}
	return total, true
}

func parseNumber(s string) (float64, bool) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
