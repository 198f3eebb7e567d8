package repository

import (
	"context"
	"errors"
	"fmt"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// quizRow 带统计列的查询结果
type quizRow struct {
	model.Quiz
	QuestionCount int64
	AttemptCount  int64
}

const (
	questionCountSQL = "(SELECT COUNT(*) FROM quiz_questions qq WHERE qq.quiz_id = quizzes.id AND qq.deleted_at IS NULL) AS question_count"
	attemptCountSQL  = "(SELECT COUNT(*) FROM quiz_attempts qa WHERE qa.quiz_id = quizzes.id AND qa.deleted_at IS NULL) AS attempt_count"

	// 未指定用户 / 指定了该用户 / 该用户作答过
	visibleToUserSQL = "(NOT EXISTS (SELECT 1 FROM quiz_users qu WHERE qu.quiz_id = quizzes.id)" +
		" OR EXISTS (SELECT 1 FROM quiz_users qu WHERE qu.quiz_id = quizzes.id AND qu.user_id = ?)" +
		" OR EXISTS (SELECT 1 FROM quiz_attempts qa WHERE qa.quiz_id = quizzes.id AND qa.user_id = ? AND qa.deleted_at IS NULL))"
)

func (r *QuizRepository) withCounts(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&model.Quiz{}).
		Select("quizzes.*, " + questionCountSQL + ", " + attemptCountSQL)
}

func toQuizzes(rows []quizRow) []model.Quiz {
	quizzes := make([]model.Quiz, 0, len(rows))
	for _, row := range rows {
		q := row.Quiz
		q.Count = model.QuizCount{
			QuizQuestions: row.QuestionCount,
			QuizAttempts:  row.AttemptCount,
		}
		quizzes = append(quizzes, q)
	}
	return quizzes
}

// FindQuizzesVisibleTo 返回用户可见的进行中测验，按创建时间倒序
func (r *QuizRepository) FindQuizzesVisibleTo(ctx context.Context, userID string) ([]model.Quiz, error) {
	var rows []quizRow
	err := r.withCounts(ctx).
		Where("quizzes.status = ?", model.QuizActive).
		Where(visibleToUserSQL, userID, userID).
		Order("quizzes.created_at DESC").
		Order("quizzes.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toQuizzes(rows), nil
}

func (r *QuizRepository) FindVisibleQuiz(ctx context.Context, quizID, userID string) (*model.Quiz, error) {
	var rows []quizRow
	err := r.withCounts(ctx).
		Where("quizzes.id = ?", quizID).
		Where("quizzes.status = ?", model.QuizActive).
		Where(visibleToUserSQL, userID, userID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, util.ErrQuizNotFound
	}
	return &toQuizzes(rows)[0], nil
}

// FindAttempts 用户在某测验下的全部作答（任意状态），最新在前
func (r *QuizRepository) FindAttempts(ctx context.Context, userID, quizID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&attempts).Error
	return attempts, err
}

// FindLatestAttempt 没有作答记录时返回 nil, nil
func (r *QuizRepository) FindLatestAttempt(ctx context.Context, userID, quizID string) (*model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}

func (r *QuizRepository) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	var rows []quizRow
	err := r.withCounts(ctx).
		Where("quizzes.id = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, util.ErrQuizNotFound
	}
	return &toQuizzes(rows)[0], nil
}

func (r *QuizRepository) ListQuizzes(ctx context.Context, page, limit int) ([]model.Quiz, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Quiz{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []quizRow
	err := r.withCounts(ctx).
		Order("quizzes.created_at DESC").
		Order("quizzes.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return toQuizzes(rows), total, nil
}

func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	return r.DB.WithContext(ctx).Create(quiz).Error
}

// 管理端可编辑的列
var editableQuizFields = map[string]bool{
	"title": true, "description": true, "time_limit": true, "difficulty": true, "status": true,
	"negative_marking": true, "negative_points": true, "random_order": true,
	"max_attempts": true, "start_time": true, "end_time": true,
}

// UpdateQuiz 只写入 fields 中的列，零值同样写入
func (r *QuizRepository) UpdateQuiz(ctx context.Context, quiz *model.Quiz, fields []string) error {
	for _, f := range fields {
		if !editableQuizFields[f] {
			return fmt.Errorf("quiz field %q is not editable", f)
		}
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureQuizExists(tx, quiz.ID); err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&model.Quiz{}).
			Where("id = ?", quiz.ID).
			Select(fields).
			Updates(quiz).Error
	})
}

// DeleteQuiz 在同一事务中删除测验及其题目、指定用户和作答记录
func (r *QuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureQuizExists(tx, id); err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizUser{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Quiz{}).Error
	})
}

// ReplaceAssignments 覆盖测验的指定用户；空列表表示对所有用户开放
func (r *QuizRepository) ReplaceAssignments(ctx context.Context, quizID string, userIDs []string) ([]string, error) {
	seen := make(map[string]bool, len(userIDs))
	unique := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureQuizExists(tx, quizID); err != nil {
			return err
		}

		if len(unique) > 0 {
			var found int64
			if err := tx.Model(&model.User{}).Where("id IN ?", unique).Count(&found).Error; err != nil {
				return err
			}
			if found != int64(len(unique)) {
				return util.ErrUserNotFound
			}
		}

		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizUser{}).Error; err != nil {
			return err
		}
		if len(unique) == 0 {
			return nil
		}

		rows := make([]model.QuizUser, 0, len(unique))
		for _, userID := range unique {
			rows = append(rows, model.QuizUser{QuizID: quizID, UserID: userID})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return unique, nil
}

func (r *QuizRepository) FindAssignedUserIDs(ctx context.Context, quizID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&model.QuizUser{}).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func ensureQuizExists(tx *gorm.DB, id string) error {
	var quiz model.Quiz
	err := tx.Select("id").Where("id = ?", id).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	return err
}
