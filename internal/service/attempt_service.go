package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"
)

// SubmitInput 提交作答的请求体，answers 原样保存
type SubmitInput struct {
	Answers json.RawMessage `json:"answers" swaggertype:"object"`
	Score   *float64        `json:"score"`
}

type AttemptService struct {
	Quizzes   QuizStore
	Attempts  AttemptStore
	Cache     QuizCacheInvalidator
	Publisher EventPublisher
	// 便于测试固定时间
	Now func() time.Time
}

func NewAttemptService(quizzes QuizStore, attempts AttemptStore, cache QuizCacheInvalidator, publisher EventPublisher) *AttemptService {
	return &AttemptService{
		Quizzes:   quizzes,
		Attempts:  attempts,
		Cache:     cache,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (s *AttemptService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Start 为用户创建进行中的作答；测验不可见返回 ErrQuizNotFound，不满足条件返回 ErrAttemptNotAllowed
func (s *AttemptService) Start(ctx context.Context, userID, quizID string) (*model.QuizAttempt, error) {
	if !util.IsUUID(quizID) {
		return nil, util.ErrQuizNotFound
	}

	quiz, err := s.Quizzes.FindVisibleQuiz(ctx, quizID, userID)
	if err != nil {
		return nil, fmt.Errorf("find quiz: %w", err)
	}

	now := s.now()
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return nil, util.ErrAttemptNotAllowed
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return nil, util.ErrAttemptNotAllowed
	}

	attempts, err := s.Quizzes.FindAttempts(ctx, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("find attempts: %w", err)
	}
	if !EvaluateEligibility(quiz.MaxAttempts, attempts).CanTakeQuiz {
		return nil, util.ErrAttemptNotAllowed
	}

	attempt := &model.QuizAttempt{
		UserID:    userID,
		QuizID:    quizID,
		Status:    model.AttemptInProgress,
		StartedAt: now,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	// 管理端详情中的 _count.quizAttempts 已变化
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, quizID)
	}

	publishEvent(ctx, s.Publisher, QuizEvent{
		Type:      EventAttemptStarted,
		QuizID:    quizID,
		UserID:    userID,
		AttemptID: attempt.ID,
	})
	return attempt, nil
}

// Submit 提交用户自己的进行中作答
func (s *AttemptService) Submit(ctx context.Context, userID, attemptID string, in *SubmitInput) (*model.QuizAttempt, error) {
	if !util.IsUUID(attemptID) {
		return nil, util.ErrAttemptNotFound
	}

	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("find attempt: %w", err)
	}
	// 不暴露他人作答是否存在
	if attempt.UserID != userID {
		return nil, util.ErrAttemptNotFound
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, util.ErrAttemptAlreadySubmitted
	}

	now := s.now()
	attempt.Status = model.AttemptSubmitted
	attempt.SubmittedAt = &now
	if in != nil {
		attempt.Answers = in.Answers
		attempt.Score = in.Score
	}

	if err := s.Attempts.Submit(ctx, attempt); err != nil {
		return nil, fmt.Errorf("submit attempt: %w", err)
	}

	publishEvent(ctx, s.Publisher, QuizEvent{
		Type:      EventAttemptSubmitted,
		QuizID:    attempt.QuizID,
		UserID:    userID,
		AttemptID: attempt.ID,
	})
	return attempt, nil
}
