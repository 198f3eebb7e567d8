package service

import (
	"context"
	"time"

	"quiz_hub_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	EventQuizCreated      = "quiz.created"
	EventQuizUpdated      = "quiz.updated"
	EventQuizDeleted      = "quiz.deleted"
	EventQuizAssigned     = "quiz.assigned"
	EventAttemptStarted   = "attempt.started"
	EventAttemptSubmitted = "attempt.submitted"
)

type QuizEvent struct {
	Type       string    `json:"type"`
	QuizID     string    `json:"quizId"`
	UserID     string    `json:"userId,omitempty"`
	AttemptID  string    `json:"attemptId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher 由 messaging.RabbitMQClient 实现
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}) error
}

// publishEvent 消息发送失败只记录日志，不影响请求结果
func publishEvent(ctx context.Context, p EventPublisher, ev QuizEvent) {
	if p == nil {
		return
	}
	ev.OccurredAt = time.Now()
	if err := p.PublishJSON(ctx, ev.Type, ev); err != nil {
		logger.Log.Warn("Failed to publish quiz event",
			zap.String("type", ev.Type),
			zap.String("quizId", ev.QuizID),
			zap.Error(err),
		)
	}
}
