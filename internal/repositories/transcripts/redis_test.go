package transcripts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/pkg/clock"
	"github.com/mudforge/battle-api/internal/repositories/transcripts"
	"github.com/mudforge/battle-api/internal/testutils"
)

type TranscriptsTestSuite struct {
	suite.Suite
	repo    transcripts.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *TranscriptsTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	var err error
	s.repo, err = transcripts.NewRedisRepository(&transcripts.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func (s *TranscriptsTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *TranscriptsTestSuite) TestAppendAndGet() {
	_, err := s.repo.Append(s.ctx, &transcripts.AppendInput{
		BattleID: "battle_1",
		Text:     "Asha swings at the goblin and misses.",
	})
	s.Require().NoError(err)

	s.clock.T = s.clock.T.Add(time.Minute)
	_, err = s.repo.Append(s.ctx, &transcripts.AppendInput{
		BattleID: "battle_1",
		Text:     "The goblin is looking at Asha.",
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &transcripts.GetInput{BattleID: "battle_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Lines, 2)
	s.Equal("Asha swings at the goblin and misses.", out.Lines[0].Text)
	s.Equal("The goblin is looking at Asha.", out.Lines[1].Text)
	s.True(out.Lines[1].At.After(out.Lines[0].At))
}

func (s *TranscriptsTestSuite) TestGet_NotFound() {
	out, err := s.repo.Get(s.ctx, &transcripts.GetInput{BattleID: "missing"})

	s.Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *TranscriptsTestSuite) TestDelete() {
	_, err := s.repo.Append(s.ctx, &transcripts.AppendInput{
		BattleID: "battle_2",
		Text:     "A rat scurries in.",
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &transcripts.DeleteInput{BattleID: "battle_2"})
	s.Require().NoError(err)
	s.Equal(1, out.LinesDeleted)

	_, err = s.repo.Get(s.ctx, &transcripts.GetInput{BattleID: "battle_2"})
	s.True(errors.IsNotFound(err))
}

func (s *TranscriptsTestSuite) TestAppend_RequiresBattleID() {
	_, err := s.repo.Append(s.ctx, &transcripts.AppendInput{Text: "orphan line"})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestTranscriptsSuite(t *testing.T) {
	suite.Run(t, new(TranscriptsTestSuite))
}
