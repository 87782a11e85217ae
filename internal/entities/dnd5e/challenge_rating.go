package dnd5e

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

// ChallengeRating is a monster difficulty rating. Values are ordered so that
// a lower rating always has a lower XP value.
type ChallengeRating int

// Challenge ratings in ascending order
const (
	CRZero ChallengeRating = iota
	CREighth
	CRQuarter
	CRHalf
	CROne
	CRTwo
	CRThree
	CRFour
	CRFive
	CRSix
	CRSeven
	CREight
	CRNine
	CRTen
	CREleven
	CRTwelve
	CRThirteen
	CRFourteen
	CRFifteen
	CRSixteen
	CRSeventeen
	CREighteen
	CRNineteen
	CRTwenty
	CRTwentyOne
	CRTwentyTwo
	CRTwentyThree
	CRTwentyFour
	CRTwentyFive
	CRTwentySix
	CRTwentySeven
	CRTwentyEight
	CRTwentyNine
	CRThirty
)

type challengeRatingInfo struct {
	key   string
	label string
	value float64
	xp    int
}

// challengeRatings holds the XP for each rating, excluding lair bonuses
var challengeRatings = [...]challengeRatingInfo{
	CRZero:        {key: "0", label: "0", value: 0, xp: 10},
	CREighth:      {key: "1/8", label: "⅛", value: 0.125, xp: 25},
	CRQuarter:     {key: "1/4", label: "¼", value: 0.25, xp: 50},
	CRHalf:        {key: "1/2", label: "½", value: 0.5, xp: 100},
	CROne:         {key: "1", label: "1", value: 1, xp: 200},
	CRTwo:         {key: "2", label: "2", value: 2, xp: 450},
	CRThree:       {key: "3", label: "3", value: 3, xp: 700},
	CRFour:        {key: "4", label: "4", value: 4, xp: 1100},
	CRFive:        {key: "5", label: "5", value: 5, xp: 1800},
	CRSix:         {key: "6", label: "6", value: 6, xp: 2300},
	CRSeven:       {key: "7", label: "7", value: 7, xp: 2900},
	CREight:       {key: "8", label: "8", value: 8, xp: 3900},
	CRNine:        {key: "9", label: "9", value: 9, xp: 5000},
	CRTen:         {key: "10", label: "10", value: 10, xp: 5900},
	CREleven:      {key: "11", label: "11", value: 11, xp: 7200},
	CRTwelve:      {key: "12", label: "12", value: 12, xp: 8400},
	CRThirteen:    {key: "13", label: "13", value: 13, xp: 10000},
	CRFourteen:    {key: "14", label: "14", value: 14, xp: 11500},
	CRFifteen:     {key: "15", label: "15", value: 15, xp: 13000},
	CRSixteen:     {key: "16", label: "16", value: 16, xp: 15000},
	CRSeventeen:   {key: "17", label: "17", value: 17, xp: 18000},
	CREighteen:    {key: "18", label: "18", value: 18, xp: 20000},
	CRNineteen:    {key: "19", label: "19", value: 19, xp: 22000},
	CRTwenty:      {key: "20", label: "20", value: 20, xp: 25000},
	CRTwentyOne:   {key: "21", label: "21", value: 21, xp: 33000},
	CRTwentyTwo:   {key: "22", label: "22", value: 22, xp: 41000},
	CRTwentyThree: {key: "23", label: "23", value: 23, xp: 50000},
	CRTwentyFour:  {key: "24", label: "24", value: 24, xp: 62000},
	CRTwentyFive:  {key: "25", label: "25", value: 25, xp: 75000},
	CRTwentySix:   {key: "26", label: "26", value: 26, xp: 90000},
	CRTwentySeven: {key: "27", label: "27", value: 27, xp: 105000},
	CRTwentyEight: {key: "28", label: "28", value: 28, xp: 120000},
	CRTwentyNine:  {key: "29", label: "29", value: 29, xp: 135000},
	CRThirty:      {key: "30", label: "30", value: 30, xp: 155000},
}

// ChallengeRatings returns every rating in ascending order
func ChallengeRatings() []ChallengeRating {
	all := make([]ChallengeRating, len(challengeRatings))
	for i := range challengeRatings {
		all[i] = ChallengeRating(i)
	}
	return all
}

// IsValid reports whether cr is one of the defined ratings
func (cr ChallengeRating) IsValid() bool {
	return cr >= CRZero && cr <= CRThirty
}

// XP returns the experience value of a single monster of this rating.
// Invalid ratings are worth 0.
func (cr ChallengeRating) XP() int {
	if !cr.IsValid() {
		return 0
	}
	return challengeRatings[cr].xp
}

// Label returns the display label, e.g. "½"
func (cr ChallengeRating) Label() string {
	if !cr.IsValid() {
		return ""
	}
	return challengeRatings[cr].label
}

// Key returns the ASCII form used on the wire, e.g. "1/2"
func (cr ChallengeRating) Key() string {
	if !cr.IsValid() {
		return ""
	}
	return challengeRatings[cr].key
}

// String returns the key
func (cr ChallengeRating) String() string {
	if !cr.IsValid() {
		return "CR(" + strconv.Itoa(int(cr)) + ")"
	}
	return "CR " + cr.Key()
}

// MarshalText encodes the rating as its key
func (cr ChallengeRating) MarshalText() ([]byte, error) {
	if !cr.IsValid() {
		return nil, errors.InvalidArgumentf("invalid challenge rating: %d", int(cr))
	}
	return []byte(cr.Key()), nil
}

// UnmarshalText decodes anything ParseChallengeRating accepts
func (cr *ChallengeRating) UnmarshalText(text []byte) error {
	parsed, err := ParseChallengeRating(string(text))
	if err != nil {
		return err
	}
	*cr = parsed
	return nil
}

// ParseChallengeRating accepts a key ("1/8"), a label ("⅛") or a decimal ("0.125")
func ParseChallengeRating(raw string) (ChallengeRating, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(raw)), "CR"))
	for i, info := range challengeRatings {
		if trimmed == info.key || trimmed == info.label {
			return ChallengeRating(i), nil
		}
	}

	if value, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if cr, ok := ChallengeRatingFromFloat(value); ok {
			return cr, nil
		}
	}

	return CRZero, errors.InvalidArgumentf("invalid challenge rating: %q", raw)
}

// ChallengeRatingFromFloat maps the numeric rating used by the D&D 5e API
func ChallengeRatingFromFloat(value float64) (ChallengeRating, bool) {
	for i, info := range challengeRatings {
		if value == info.value {
			return ChallengeRating(i), true
		}
	}
	return CRZero, false
}
