package monsters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/repositories/monsters"
	"github.com/mudforge/battle-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    monsters.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.repo, err = monsters.NewRedisRepository(&monsters.Config{Client: client})
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestPutAndGetTemplate() {
	tmpl := &monsters.Template{
		ID:        "goblin",
		Name:      "cave goblin",
		HitPoints: 5,
		Wound:     "1d4",
	}

	putOutput, err := s.repo.PutTemplate(s.ctx, &monsters.PutTemplateInput{Template: tmpl})
	s.Require().NoError(err)
	s.True(putOutput.Success)

	getOutput, err := s.repo.GetTemplate(s.ctx, &monsters.GetTemplateInput{TemplateID: "goblin"})
	s.Require().NoError(err)
	s.Equal(tmpl, getOutput.Template)
}

func (s *RedisRepositoryTestSuite) TestGetTemplate_NotFound() {
	output, err := s.repo.GetTemplate(s.ctx, &monsters.GetTemplateInput{TemplateID: "dragon"})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetTemplate_RequiresID() {
	output, err := s.repo.GetTemplate(s.ctx, &monsters.GetTemplateInput{})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteTemplate() {
	_, err := s.repo.PutTemplate(s.ctx, &monsters.PutTemplateInput{
		Template: &monsters.Template{ID: "rat", Name: "giant rat", HitPoints: 2, Wound: "1d2"},
	})
	s.Require().NoError(err)

	_, err = s.repo.DeleteTemplate(s.ctx, &monsters.DeleteTemplateInput{TemplateID: "rat"})
	s.Require().NoError(err)

	_, err = s.repo.GetTemplate(s.ctx, &monsters.GetTemplateInput{TemplateID: "rat"})
	s.True(errors.IsNotFound(err))

	// Deleting again reports not found
	_, err = s.repo.DeleteTemplate(s.ctx, &monsters.DeleteTemplateInput{TemplateID: "rat"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
