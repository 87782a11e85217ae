package dnd5e_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

func TestChallengeRatingXPStrictlyIncreasing(t *testing.T) {
	all := dnd5e.ChallengeRatings()
	require.Len(t, all, 34)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].XP(), all[i].XP(), "%s should be worth less than %s", all[i-1], all[i])
	}
}

func TestChallengeRatingXP(t *testing.T) {
	assert.Equal(t, 10, dnd5e.CRZero.XP())
	assert.Equal(t, 25, dnd5e.CREighth.XP())
	assert.Equal(t, 200, dnd5e.CROne.XP())
	assert.Equal(t, 25000, dnd5e.CRTwenty.XP())
	assert.Equal(t, 155000, dnd5e.CRThirty.XP())
	assert.Equal(t, 0, dnd5e.ChallengeRating(99).XP())
}

func TestChallengeRatingLabels(t *testing.T) {
	assert.Equal(t, "½", dnd5e.CRHalf.Label())
	assert.Equal(t, "1/2", dnd5e.CRHalf.Key())
	assert.Equal(t, "CR 1/2", dnd5e.CRHalf.String())
	assert.Equal(t, "17", dnd5e.CRSeventeen.Label())
	assert.False(t, dnd5e.ChallengeRating(-1).IsValid())
}

func TestParseChallengeRating(t *testing.T) {
	testCases := []struct {
		raw      string
		expected dnd5e.ChallengeRating
	}{
		{raw: "0", expected: dnd5e.CRZero},
		{raw: "1/8", expected: dnd5e.CREighth},
		{raw: "⅛", expected: dnd5e.CREighth},
		{raw: "0.25", expected: dnd5e.CRQuarter},
		{raw: " cr 1/2 ", expected: dnd5e.CRHalf},
		{raw: "CR 5", expected: dnd5e.CRFive},
		{raw: "30", expected: dnd5e.CRThirty},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			cr, err := dnd5e.ParseChallengeRating(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cr)
		})
	}
}

func TestParseChallengeRatingInvalid(t *testing.T) {
	for _, raw := range []string{"", "31", "1/3", "dragon", "-1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := dnd5e.ParseChallengeRating(raw)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestChallengeRatingFromFloat(t *testing.T) {
	cr, ok := dnd5e.ChallengeRatingFromFloat(0.125)
	assert.True(t, ok)
	assert.Equal(t, dnd5e.CREighth, cr)

	cr, ok = dnd5e.ChallengeRatingFromFloat(17)
	assert.True(t, ok)
	assert.Equal(t, dnd5e.CRSeventeen, cr)

	_, ok = dnd5e.ChallengeRatingFromFloat(0.3)
	assert.False(t, ok)
}

func TestChallengeRatingJSON(t *testing.T) {
	row := dnd5e.MonsterRow{Quantity: 3, ChallengeRating: dnd5e.CRQuarter}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":3,"challenge_rating":"1/4"}`, string(data))

	var decoded dnd5e.MonsterRow
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, row, decoded)

	err = json.Unmarshal([]byte(`{"quantity":1,"challenge_rating":"1/3"}`), &decoded)
	assert.Error(t, err)
}
