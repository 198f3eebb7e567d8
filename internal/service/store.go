package service

import (
	"context"
	"time"

	"quiz_hub_backend/internal/model"
)

// QuizStore 用户侧读取测验与作答记录
type QuizStore interface {
	FindQuizzesVisibleTo(ctx context.Context, userID string) ([]model.Quiz, error)
	FindVisibleQuiz(ctx context.Context, quizID, userID string) (*model.Quiz, error)
	FindAttempts(ctx context.Context, userID, quizID string) ([]model.QuizAttempt, error)
	FindLatestAttempt(ctx context.Context, userID, quizID string) (*model.QuizAttempt, error)
}

// AdminQuizStore 管理端测验读写
type AdminQuizStore interface {
	ListQuizzes(ctx context.Context, page, limit int) ([]model.Quiz, int64, error)
	GetQuiz(ctx context.Context, id string) (*model.Quiz, error)
	CreateQuiz(ctx context.Context, quiz *model.Quiz) error
	UpdateQuiz(ctx context.Context, quiz *model.Quiz, fields []string) error
	DeleteQuiz(ctx context.Context, id string) error
	ReplaceAssignments(ctx context.Context, quizID string, userIDs []string) ([]string, error)
	FindAssignedUserIDs(ctx context.Context, quizID string) ([]string, error)
}

type AttemptStore interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	FindByID(ctx context.Context, id string) (*model.QuizAttempt, error)
	Submit(ctx context.Context, attempt *model.QuizAttempt) error
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
