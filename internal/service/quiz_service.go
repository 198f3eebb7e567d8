package service

import (
	"context"
	"fmt"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/pkg/logger"
	"quiz_hub_backend/pkg/monitoring"
	"quiz_hub_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type QuizService struct {
	Store QuizStore
}

func NewQuizService(store QuizStore) *QuizService {
	return &QuizService{Store: store}
}

// ListForUser 返回用户可见的测验及其作答情况，只读
func (s *QuizService) ListForUser(ctx context.Context, userID string) ([]model.QuizView, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.ListForUser",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	quizzes, err := s.Store.FindQuizzesVisibleTo(ctx, userID)
	if err != nil {
		return nil, storeFailure(span, "find_visible_quizzes", err)
	}

	views := make([]model.QuizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		view, err := s.buildView(ctx, userID, quiz)
		if err != nil {
			return nil, storeFailure(span, "find_attempts", err)
		}
		views = append(views, view)
	}

	span.SetAttributes(attribute.Int("quiz.count", len(views)))
	monitoring.QuizzesListed.Observe(float64(len(views)))
	return views, nil
}

func (s *QuizService) buildView(ctx context.Context, userID string, quiz model.Quiz) (model.QuizView, error) {
	attempts, err := s.Store.FindAttempts(ctx, userID, quiz.ID)
	if err != nil {
		return model.QuizView{}, fmt.Errorf("find attempts of quiz %s: %w", quiz.ID, err)
	}
	latest, err := s.Store.FindLatestAttempt(ctx, userID, quiz.ID)
	if err != nil {
		return model.QuizView{}, fmt.Errorf("find latest attempt of quiz %s: %w", quiz.ID, err)
	}

	e := EvaluateEligibility(quiz.MaxAttempts, attempts)
	return model.QuizView{
		Quiz:             quiz,
		UserAttempt:      latest,
		UserAttemptCount: e.SubmittedCount,
		HasActiveAttempt: e.HasActiveAttempt,
		CanTakeQuiz:      e.CanTakeQuiz,
	}, nil
}

func storeFailure(span trace.Span, operation string, err error) error {
	monitoring.StoreFailures.WithLabelValues(operation).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, operation)
	logger.Log.Error("Quiz store operation failed", zap.String("operation", operation), zap.Error(err))
	return fmt.Errorf("%s: %w", operation, err)
}
