package model

import (
	"encoding/json"
	"time"
)

type QuizStatus string

const (
	QuizDraft  QuizStatus = "DRAFT"
	QuizActive QuizStatus = "ACTIVE"
	QuizClosed QuizStatus = "CLOSED"
)

func (s QuizStatus) Valid() bool {
	switch s {
	case QuizDraft, QuizActive, QuizClosed:
		return true
	}
	return false
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "EASY"
	DifficultyMedium DifficultyLevel = "MEDIUM"
	DifficultyHard   DifficultyLevel = "HARD"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuizCount 题目数与全部用户的作答次数，查询时填充，不落库
type QuizCount struct {
	QuizQuestions int64 `json:"quizQuestions"`
	QuizAttempts  int64 `json:"quizAttempts"`
}

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	TimeLimit       int             `gorm:"default:0" json:"timeLimit"` // Minutes
	Difficulty      DifficultyLevel `gorm:"size:20;not null;default:'MEDIUM'" json:"difficulty"`
	Status          QuizStatus      `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	NegativeMarking bool            `gorm:"default:false" json:"negativeMarking"`
	NegativePoints  float64         `gorm:"default:0.5" json:"negativePoints"`
	RandomOrder     bool            `gorm:"default:false" json:"randomOrder"`
	MaxAttempts     AttemptLimit    `json:"maxAttempts"`
	StartTime       *time.Time      `json:"startTime"`
	EndTime         *time.Time      `json:"endTime"`

	Count QuizCount `gorm:"-" json:"_count"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizUser 测验的指定用户；某测验没有任何记录时对所有用户开放
type QuizUser struct {
	QuizID    string    `gorm:"primaryKey;type:varchar(36)" json:"quizId"`
	UserID    string    `gorm:"primaryKey;type:varchar(36);index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (QuizUser) TableName() string {
	return "quiz_users"
}

type QuizQuestion struct {
	UUIDBase
	QuizID   string          `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Content  string          `gorm:"type:text;not null" json:"content"`
	Options  json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	Answer   string          `gorm:"type:text" json:"-"`
	Points   float64         `gorm:"default:1" json:"points"`
	Position int             `gorm:"default:0" json:"position"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
