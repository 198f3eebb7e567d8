package repository

import (
	"context"
	"errors"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *QuizAttemptRepository) FindByID(ctx context.Context, id string) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Submit 仅当作答仍在进行中时写入，避免重复提交
func (r *QuizAttemptRepository) Submit(ctx context.Context, attempt *model.QuizAttempt) error {
	result := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("id = ? AND status = ?", attempt.ID, model.AttemptInProgress).
		Select("status", "score", "answers", "submitted_at").
		Updates(attempt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrAttemptAlreadySubmitted
	}
	return nil
}
