package service

import (
	"context"

	"github.com/news-discussion-api/internal/apperrors"
	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) TopicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topics").Logger(),
	}
}

// List returns all topics
func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	return topics, nil
}
