package testutil

import (
	"testing"
	"time"

	"quiz_hub_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser 写入用户，密码为 password
func CreateUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &model.User{Name: email, Email: email, Password: string(hash), Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// CreateQuiz 写入测验，createdAt 用于固定排序
func CreateQuiz(t *testing.T, db *gorm.DB, title string, status model.QuizStatus, limit model.AttemptLimit, createdAt time.Time) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{
		Title:          title,
		Difficulty:     model.DifficultyMedium,
		Status:         status,
		NegativePoints: 0.5,
		MaxAttempts:    limit,
	}
	quiz.CreatedAt = createdAt
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("Failed to create quiz: %v", err)
	}
	return quiz
}

func AssignUsers(t *testing.T, db *gorm.DB, quizID string, userIDs ...string) {
	t.Helper()
	for _, id := range userIDs {
		if err := db.Create(&model.QuizUser{QuizID: quizID, UserID: id}).Error; err != nil {
			t.Fatalf("Failed to assign user: %v", err)
		}
	}
}

func CreateAttempt(t *testing.T, db *gorm.DB, userID, quizID string, status model.AttemptStatus, createdAt time.Time) *model.QuizAttempt {
	t.Helper()

	attempt := &model.QuizAttempt{
		UserID:    userID,
		QuizID:    quizID,
		Status:    status,
		StartedAt: createdAt,
	}
	attempt.CreatedAt = createdAt
	if status == model.AttemptSubmitted {
		submitted := createdAt.Add(time.Minute)
		attempt.SubmittedAt = &submitted
	}
	if err := db.Create(attempt).Error; err != nil {
		t.Fatalf("Failed to create attempt: %v", err)
	}
	return attempt
}

func CreateQuestion(t *testing.T, db *gorm.DB, quizID string, position int) *model.QuizQuestion {
	t.Helper()

	q := &model.QuizQuestion{QuizID: quizID, Content: "question", Points: 1, Position: position}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("Failed to create question: %v", err)
	}
	return q
}
