package postgres

import (
	"errors"

	"github.com/goodnatureofminers/staking-indexer/internal/metrics"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

func (s *RepositorySuite) TestNewLedgerRejectsUnknownTable() {
	_, err := NewLedger(s.testCtx, s.db, "nope_boxes", metrics.NewRepository("postgres"))
	s.Require().Error(err)
	s.True(errors.Is(err, model.ErrInvalidTableName))

	ledger, err := NewLedger(s.testCtx, s.db, "bo_xes;--", metrics.NewRepository("postgres"))
	s.Require().NoError(err)
	s.Equal("boxes", ledger.Table())

	ledger, err = NewLedger(s.testCtx, s.db, "Boxes", metrics.NewRepository("postgres"))
	s.Require().NoError(err)
	s.Equal("boxes", ledger.Table())
}

func (s *RepositorySuite) TestCandidateBoxesKeysetOrder() {
	s.seedBoxes(
		model.BoxRef{BoxID: "c", Height: 10},
		model.BoxRef{BoxID: "a", Height: 10},
		model.BoxRef{BoxID: "b", Height: 5},
		model.BoxRef{BoxID: "d", Height: 20},
		model.BoxRef{BoxID: "e", Height: 30},
	)

	first, err := s.ledger.CandidateBoxes(s.testCtx, model.CandidateQuery{MinHeight: 5, MaxHeight: 20, Limit: 2})
	s.Require().NoError(err)
	s.Equal([]model.BoxRef{{BoxID: "b", Height: 5}, {BoxID: "a", Height: 10}}, first)

	second, err := s.ledger.CandidateBoxes(s.testCtx, model.CandidateQuery{MinHeight: 5, MaxHeight: 20, After: &first[1], Limit: 2})
	s.Require().NoError(err)
	s.Equal([]model.BoxRef{{BoxID: "c", Height: 10}, {BoxID: "d", Height: 20}}, second)

	third, err := s.ledger.CandidateBoxes(s.testCtx, model.CandidateQuery{MinHeight: 5, MaxHeight: 20, After: &second[1], Limit: 2})
	s.Require().NoError(err)
	s.Empty(third)
}

func (s *RepositorySuite) TestBoxByIDIgnoresHeights() {
	s.seedBoxes(model.BoxRef{BoxID: "x", Height: 99})

	ref, found, err := s.ledger.BoxByID(s.testCtx, "x")
	s.Require().NoError(err)
	s.True(found)
	s.Equal(model.BoxRef{BoxID: "x", Height: 99}, ref)

	_, found, err = s.ledger.BoxByID(s.testCtx, "missing")
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestLiveBoxesMatchesPair() {
	s.seedBoxes(model.BoxRef{BoxID: "a", Height: 1}, model.BoxRef{BoxID: "b", Height: 2})

	live, err := s.ledger.LiveBoxes(s.testCtx, []model.BoxRef{
		{BoxID: "a", Height: 1},
		{BoxID: "b", Height: 3},
		{BoxID: "z", Height: 1},
	})
	s.Require().NoError(err)
	s.Equal([]model.BoxRef{{BoxID: "a", Height: 1}}, live)
}
