package services

import (
	"sort"
	"strings"

	"garagespace/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ScoredGarage pairs a garage with its search relevance
type ScoredGarage struct {
	Garage models.Garage
	Score  int
}

// NormalizeQuery folds accents and case so "Kúta" matches "kuta"
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// NewLocationMatcher builds a fuzzy matcher over the distinct normalized
// locations of the given garages
func NewLocationMatcher(garages []models.Garage) *closestmatch.ClosestMatch {
	unique := make(map[string]bool)
	for _, garage := range garages {
		if garage.Location != "" {
			unique[NormalizeQuery(garage.Location)] = true
		}
	}

	keywords := make([]string, 0, len(unique))
	for value := range unique {
		keywords = append(keywords, value)
	}
	return closestmatch.New(keywords, []int{2, 3})
}

// similarity is 1 minus the normalized levenshtein distance
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func scoreGarage(query string, garage models.Garage, locations *closestmatch.ClosestMatch) int {
	score := 0

	normalizedTitle := NormalizeQuery(garage.Title)
	normalizedLocation := NormalizeQuery(garage.Location)

	if strings.Contains(normalizedTitle, query) || similarity(query, normalizedTitle) > 0.7 {
		score += 20
	}
	if locations.Closest(query) == normalizedLocation || strings.Contains(normalizedLocation, query) {
		score += 13
	}
	for _, amenity := range garage.Amenities {
		normalizedAmenity := NormalizeQuery(amenity.Name)
		if strings.Contains(query, normalizedAmenity) || similarity(query, normalizedAmenity) > 0.7 {
			score += 4
		}
	}

	return score
}

// SearchGarages scores every garage against the free-text query and returns
// the matches ordered by relevance
func SearchGarages(query string, garages []models.Garage) []ScoredGarage {
	normalizedQuery := NormalizeQuery(query)
	locations := NewLocationMatcher(garages)

	var scored []ScoredGarage
	for _, garage := range garages {
		score := scoreGarage(normalizedQuery, garage, locations)
		if score > 0 {
			scored = append(scored, ScoredGarage{Garage: garage, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
