package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

const delta = 1e-9

type PackTestSuite struct {
	suite.Suite
	cfg *grid.Config
}

func (s *PackTestSuite) SetupTest() {
	s.cfg = grid.DefaultConfig()
}

func TestPackTestSuite(t *testing.T) {
	suite.Run(t, new(PackTestSuite))
}

func (s *PackTestSuite) pack(monsters dnd5e.Monsters, low, moderate, high int) *grid.Grid {
	g, err := grid.Pack(monsters, dnd5e.Budgets{Low: low, Moderate: moderate, High: high}, s.cfg)
	s.Require().NoError(err)
	s.Require().NotNil(g)
	return g
}

func (s *PackTestSuite) TestSingleRatingFillsEachRow() {
	monsters := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 2, ChallengeRating: dnd5e.CROne})

	g := s.pack(monsters, 100, 300, 500)

	s.Require().Len(g.Rows, 2)
	for _, row := range g.Rows {
		s.Require().Len(row, 1)
		s.InDelta(1.0, row[0].Width, delta)
	}
	s.Equal(400, g.SpentXP)

	s.Equal(grid.Threshold{Row: 0, Fraction: 0.5, XP: 100, Met: true}, g.Low)
	s.Equal(grid.Threshold{Row: 1, Fraction: 0.5, XP: 300, Met: true}, g.Moderate)
	s.Equal(grid.Threshold{Row: 2, Fraction: 1.0, XP: 500, Met: false}, g.High)
}

func (s *PackTestSuite) TestEmptyMonstersApportionsFullGap() {
	g := s.pack(dnd5e.Monsters{}, 100, 300, 500)

	s.Empty(g.Rows)
	s.Equal(0, g.SpentXP)

	s.Equal(0, g.Low.Row)
	s.InDelta(0.2, g.Low.Fraction, delta)
	s.False(g.Low.Met)

	s.Equal(0, g.Moderate.Row)
	s.InDelta(0.6, g.Moderate.Fraction, delta)

	s.Equal(0, g.High.Row)
	s.InDelta(1.0, g.High.Fraction, delta)
}

func (s *PackTestSuite) TestMixedRatings() {
	monsters := dnd5e.NewMonsters(
		dnd5e.MonsterRow{Quantity: 3, ChallengeRating: dnd5e.CRHalf},
		dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CRTwo},
	)

	g := s.pack(monsters, 400, 600, 800)

	// CR 2 is widest, CR 1/2 sits on the curve at (1/2)^3 above the floor
	small := 0.25 + 0.125*0.75
	s.Require().Len(g.Rows, 3)
	s.Equal([]grid.Cell{{ChallengeRating: dnd5e.CRTwo, Width: 1}}, g.Rows[0])
	s.Require().Len(g.Rows[1], 2)
	s.InDelta(small, g.Rows[1][0].Width, delta)
	s.InDelta(small, g.Rows[1][1].Width, delta)
	s.Require().Len(g.Rows[2], 1)
	s.Equal(dnd5e.CRHalf, g.Rows[2][0].ChallengeRating)

	s.Equal(0, g.Low.Row)
	s.InDelta(8.0/9.0, g.Low.Fraction, delta)

	s.Equal(1, g.Moderate.Row)
	s.InDelta(small+small*0.5, g.Moderate.Fraction, delta)

	s.Equal(3, g.High.Row)
	s.InDelta(1.0, g.High.Fraction, delta)
	s.False(g.High.Met)
}

func (s *PackTestSuite) TestUnmetPrefixes() {
	monsters := dnd5e.NewMonsters(
		dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CRTwo},
		dnd5e.MonsterRow{Quantity: 3, ChallengeRating: dnd5e.CRHalf},
	)
	// 750 XP over three rows

	testCases := []struct {
		name                                 string
		low, moderate, high                  int
		wantLow, wantModerate, wantHigh      float64
		wantLowMet, wantModerateMet, highMet bool
	}{
		{
			name: "none met",
			low:  1000, moderate: 1250, high: 1750,
			wantLow: 0.25, wantModerate: 0.5, wantHigh: 1,
		},
		{
			name: "low met",
			low:  400, moderate: 1000, high: 1500,
			wantLow: 8.0 / 9.0, wantModerate: 1.0 / 3.0, wantHigh: 1,
			wantLowMet: true,
		},
		{
			name: "low and moderate met",
			low:  400, moderate: 600, high: 800,
			wantLow: 8.0 / 9.0, wantModerate: 0.515625, wantHigh: 1,
			wantLowMet: true, wantModerateMet: true,
		},
		{
			name: "all met",
			low:  400, moderate: 600, high: 700,
			wantLow: 8.0 / 9.0, wantModerate: 0.515625, wantHigh: 0.171875,
			wantLowMet: true, wantModerateMet: true, highMet: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g := s.pack(monsters, tc.low, tc.moderate, tc.high)

			s.Equal(tc.wantLowMet, g.Low.Met)
			s.Equal(tc.wantModerateMet, g.Moderate.Met)
			s.Equal(tc.highMet, g.High.Met)

			s.InDelta(tc.wantLow, g.Low.Fraction, delta)
			s.InDelta(tc.wantModerate, g.Moderate.Fraction, delta)
			s.InDelta(tc.wantHigh, g.High.Fraction, delta)

			for _, th := range []grid.Threshold{g.Low, g.Moderate, g.High} {
				if !th.Met {
					s.Equal(len(g.Rows), th.Row)
				}
			}
		})
	}
}

func (s *PackTestSuite) TestZeroBudgetsAreMetImmediately() {
	monsters := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CRFive})

	g := s.pack(monsters, 0, 0, 0)
	for _, th := range []grid.Threshold{g.Low, g.Moderate, g.High} {
		s.Equal(grid.Threshold{Row: 0, Fraction: 0, XP: 0, Met: true}, th)
	}

	s.Run("with no monsters", func() {
		g := s.pack(dnd5e.Monsters{}, 0, 300, 500)
		s.Equal(grid.Threshold{Row: 0, Fraction: 0, XP: 0, Met: true}, g.Low)
		s.InDelta(0.6, g.Moderate.Fraction, delta)
		s.InDelta(1.0, g.High.Fraction, delta)
	})
}

func (s *PackTestSuite) TestExactSpendLandsOnCellEdge() {
	monsters := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 2, ChallengeRating: dnd5e.CROne})

	g := s.pack(monsters, 200, 400, 400)

	s.Equal(grid.Threshold{Row: 0, Fraction: 1, XP: 200, Met: true}, g.Low)
	s.Equal(grid.Threshold{Row: 1, Fraction: 1, XP: 400, Met: true}, g.Moderate)
	s.Equal(grid.Threshold{Row: 1, Fraction: 1, XP: 400, Met: true}, g.High)
}

func (s *PackTestSuite) TestOneMonsterPerRow() {
	s.cfg.MaxPerRow = 1
	monsters := dnd5e.NewMonsters(
		dnd5e.MonsterRow{Quantity: 2, ChallengeRating: dnd5e.CRZero},
		dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CRThree},
	)

	g := s.pack(monsters, 10, 20, 30)

	s.Len(g.Rows, 3)
	for _, row := range g.Rows {
		s.Len(row, 1)
		s.InDelta(1.0, row[0].Width, delta)
	}
}

func (s *PackTestSuite) TestLowerRatingsShareRows() {
	monsters := dnd5e.NewMonsters(
		dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CRTen},
		dnd5e.MonsterRow{Quantity: 8, ChallengeRating: dnd5e.CRZero},
	)

	g := s.pack(monsters, 0, 0, 0)

	// with two ratings the lower one sits above the floor, so only two fit per row
	s.Require().Len(g.Rows, 5)
	s.Len(g.Rows[0], 1)
	for _, row := range g.Rows[1:] {
		s.Len(row, 2)
		s.Equal(dnd5e.CRZero, row[0].ChallengeRating)
	}
}

func (s *PackTestSuite) TestInvalidConfig() {
	budgets := dnd5e.Budgets{Low: 1, Moderate: 2, High: 3}

	_, err := grid.Pack(dnd5e.Monsters{}, budgets, &grid.Config{MaxPerRow: 0, WidthExponent: 3})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = grid.Pack(dnd5e.Monsters{}, budgets, &grid.Config{MaxPerRow: 4, WidthExponent: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *PackTestSuite) TestNilConfigUsesDefaults() {
	monsters := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.CROne})

	g, err := grid.Pack(monsters, dnd5e.Budgets{}, nil)
	s.Require().NoError(err)
	s.Len(g.Rows, 1)
}

func (s *PackTestSuite) TestInvalidInput() {
	_, err := grid.Pack(dnd5e.Monsters{}, dnd5e.Budgets{Low: 300, Moderate: 200, High: 500}, s.cfg)
	s.True(errors.IsInvalidArgument(err))

	_, err = grid.Pack(dnd5e.Monsters{}, dnd5e.Budgets{Low: -1, Moderate: 200, High: 500}, s.cfg)
	s.True(errors.IsInvalidArgument(err))

	bad := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 1, ChallengeRating: dnd5e.ChallengeRating(99)})
	_, err = grid.Pack(bad, dnd5e.Budgets{}, s.cfg)
	s.True(errors.IsInvalidArgument(err))
}

func (s *PackTestSuite) TestRejectsNonPositiveQuantities() {
	for _, quantity := range []int{0, -3} {
		monsters := dnd5e.NewMonsters(
			dnd5e.MonsterRow{Quantity: 2, ChallengeRating: dnd5e.CROne},
			dnd5e.MonsterRow{Quantity: quantity, ChallengeRating: dnd5e.CRHalf},
		)
		_, err := grid.Pack(monsters, dnd5e.Budgets{}, s.cfg)
		s.True(errors.IsInvalidArgument(err), "quantity %d", quantity)
	}
}

func (s *PackTestSuite) TestMonsterCountBound() {
	g, err := grid.Pack(dnd5e.NewMonsters(
		dnd5e.MonsterRow{Quantity: grid.MaxMonsters, ChallengeRating: dnd5e.CRZero},
	), dnd5e.Budgets{}, s.cfg)
	s.Require().NoError(err)
	s.Equal(grid.MaxMonsters*dnd5e.CRZero.XP(), g.SpentXP)

	testCases := []struct {
		name string
		rows []dnd5e.MonsterRow
	}{
		{
			name: "one huge row",
			rows: []dnd5e.MonsterRow{{Quantity: 20_000_000, ChallengeRating: dnd5e.CRZero}},
		},
		{
			name: "rows summing past the bound",
			rows: []dnd5e.MonsterRow{
				{Quantity: grid.MaxMonsters, ChallengeRating: dnd5e.CROne},
				{Quantity: 1, ChallengeRating: dnd5e.CRZero},
			},
		},
		{
			name: "quantity near max int",
			rows: []dnd5e.MonsterRow{
				{Quantity: 5, ChallengeRating: dnd5e.CROne},
				{Quantity: 1 << 60, ChallengeRating: dnd5e.CRThirty},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := grid.Pack(dnd5e.NewMonsters(tc.rows...), dnd5e.Budgets{}, s.cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(grid.MaxMonsters, errors.GetMeta(err)["max_monsters"])
		})
	}
}

func (s *PackTestSuite) TestPackingProperties() {
	rng := rand.New(rand.NewSource(42))
	ratings := dnd5e.ChallengeRatings()

	for i := 0; i < 200; i++ {
		var rows []dnd5e.MonsterRow
		for j := rng.Intn(6); j >= 0; j-- {
			rows = append(rows, dnd5e.MonsterRow{
				Quantity:        1 + rng.Intn(6),
				ChallengeRating: ratings[rng.Intn(12)],
			})
		}
		monsters := dnd5e.NewMonsters(rows...)

		low := rng.Intn(3000)
		moderate := low + rng.Intn(3000)
		high := moderate + rng.Intn(3000)
		s.cfg.MaxPerRow = 1 + rng.Intn(6)

		g := s.pack(monsters, low, moderate, high)

		count := 0
		for r, row := range g.Rows {
			s.NotEmpty(row)
			for _, cell := range row {
				s.Greater(cell.Width, 0.0)
				s.LessOrEqual(cell.Width, 1.0+delta)
			}
			s.LessOrEqual(g.RowWidth(r), 1.0+delta)
			if r+1 < len(g.Rows) {
				s.Greater(g.RowWidth(r)+g.Rows[r+1][0].Width, 1.0-delta, "row %d could fit the next monster", r)
			}
			count += len(row)
		}
		s.Equal(monsters.Count(), count)
		s.Equal(monsters.XP(), g.SpentXP)

		s.True(before(g.Low, g.Moderate), "low after moderate: %+v %+v", g.Low, g.Moderate)
		s.True(before(g.Moderate, g.High), "moderate after high: %+v %+v", g.Moderate, g.High)
		for _, th := range []grid.Threshold{g.Low, g.Moderate, g.High} {
			s.GreaterOrEqual(th.Fraction, 0.0)
			s.LessOrEqual(th.Fraction, 1.0)
			s.Equal(th.XP <= g.SpentXP, th.Met)
		}
	}
}

func before(a, b grid.Threshold) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Fraction <= b.Fraction+delta
}
