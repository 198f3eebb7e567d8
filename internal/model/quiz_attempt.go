package model

import (
	"encoding/json"
	"time"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "IN_PROGRESS"
	AttemptSubmitted  AttemptStatus = "SUBMITTED"
)

// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID      string          `gorm:"type:varchar(36);not null;index:idx_attempt_user_quiz,priority:1" json:"userId"`
	QuizID      string          `gorm:"type:varchar(36);not null;index:idx_attempt_user_quiz,priority:2;index" json:"quizId"`
	Status      AttemptStatus   `gorm:"size:20;not null;default:'IN_PROGRESS'" json:"status"`
	Score       *float64        `json:"score"`
	Answers     json.RawMessage `gorm:"type:json" json:"answers,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	SubmittedAt *time.Time      `json:"submittedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizView 用户视角下的测验：基础字段加上作答汇总，仅用于响应
type QuizView struct {
	Quiz
	UserAttempt      *QuizAttempt `json:"userAttempt"`
	UserAttemptCount int          `json:"userAttemptCount"`
	HasActiveAttempt bool         `json:"hasActiveAttempt"`
	CanTakeQuiz      bool         `json:"canTakeQuiz"`
}
