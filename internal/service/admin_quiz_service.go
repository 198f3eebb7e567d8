package service

import (
	"context"
	"fmt"
	"strings"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"
)

// QuizInput 管理端更新测验的请求体。title、description、timeLimit 未传时保持原值，
// 其余字段未传时回到默认值
type QuizInput struct {
	Title           *string               `json:"title"`
	Description     *string               `json:"description"`
	TimeLimit       *int                  `json:"timeLimit"`
	Difficulty      model.DifficultyLevel `json:"difficulty"`
	Status          model.QuizStatus      `json:"status"`
	NegativeMarking bool                  `json:"negativeMarking"`
	NegativePoints  float64               `json:"negativePoints"`
	RandomOrder     bool                  `json:"randomOrder"`
	MaxAttempts     model.AttemptLimit    `json:"maxAttempts" swaggertype:"integer"`
	StartTime       string                `json:"startTime"`
	EndTime         string                `json:"endTime"`
}

// CreateQuizInput 创建测验时 title 必填
type CreateQuizInput struct {
	Title string `json:"title" binding:"required"`
	QuizInput
}

const defaultNegativePoints = 0.5

// 每次更新都会写入的列，未传时取默认值
var defaultedQuizFields = []string{
	"difficulty", "status", "negative_marking", "negative_points",
	"random_order", "max_attempts", "start_time", "end_time",
}

func invalidQuiz(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", util.ErrInvalidQuiz, fmt.Sprintf(format, args...))
}

// apply 校验并补全默认值后写入 quiz，返回需要更新的列
func (in *QuizInput) apply(quiz *model.Quiz) ([]string, error) {
	fields := make([]string, 0, len(defaultedQuizFields)+3)

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidQuiz("title is required")
		}
		quiz.Title = title
		fields = append(fields, "title")
	}
	if in.Description != nil {
		quiz.Description = *in.Description
		fields = append(fields, "description")
	}
	if in.TimeLimit != nil {
		if *in.TimeLimit < 0 {
			return nil, invalidQuiz("timeLimit must not be negative")
		}
		quiz.TimeLimit = *in.TimeLimit
		fields = append(fields, "time_limit")
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, invalidQuiz("difficulty must be one of EASY, MEDIUM, HARD")
	}

	status := in.Status
	if status == "" {
		status = model.QuizActive
	}
	if !status.Valid() {
		return nil, invalidQuiz("status must be one of DRAFT, ACTIVE, CLOSED")
	}

	negativePoints := in.NegativePoints
	if negativePoints == 0 {
		negativePoints = defaultNegativePoints
	}
	if negativePoints < 0 {
		return nil, invalidQuiz("negativePoints must not be negative")
	}

	if n, ok := in.MaxAttempts.Max(); ok && n < 0 {
		return nil, invalidQuiz("maxAttempts must not be negative")
	}

	start, err := util.ParseOptionalTime(in.StartTime)
	if err != nil {
		return nil, invalidQuiz("startTime: %v", err)
	}
	end, err := util.ParseOptionalTime(in.EndTime)
	if err != nil {
		return nil, invalidQuiz("endTime: %v", err)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, invalidQuiz("startTime must be before endTime")
	}

	quiz.Difficulty = difficulty
	quiz.Status = status
	quiz.NegativeMarking = in.NegativeMarking
	quiz.NegativePoints = negativePoints
	quiz.RandomOrder = in.RandomOrder
	quiz.MaxAttempts = in.MaxAttempts
	quiz.StartTime = start
	quiz.EndTime = end
	return append(fields, defaultedQuizFields...), nil
}

type AdminQuizService struct {
	Store     AdminQuizStore
	Cache     *QuizCache
	Publisher EventPublisher
}

func NewAdminQuizService(store AdminQuizStore, cache *QuizCache, publisher EventPublisher) *AdminQuizService {
	return &AdminQuizService{
		Store:     store,
		Cache:     cache,
		Publisher: publisher,
	}
}

func (s *AdminQuizService) List(ctx context.Context, page, limit int) ([]model.Quiz, int64, error) {
	quizzes, total, err := s.Store.ListQuizzes(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	if quizzes == nil {
		quizzes = []model.Quiz{}
	}
	return quizzes, total, nil
}

func (s *AdminQuizService) Get(ctx context.Context, id string) (*model.Quiz, error) {
	if !util.IsUUID(id) {
		return nil, util.ErrQuizNotFound
	}
	if quiz, ok := s.Cache.Get(ctx, id); ok {
		return quiz, nil
	}

	quiz, err := s.Store.GetQuiz(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	s.Cache.Set(ctx, quiz)
	return quiz, nil
}

func (s *AdminQuizService) Create(ctx context.Context, in *CreateQuizInput) (*model.Quiz, error) {
	in.QuizInput.Title = &in.Title
	quiz := &model.Quiz{}
	if _, err := in.QuizInput.apply(quiz); err != nil {
		return nil, err
	}
	if err := s.Store.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	created, err := s.Store.GetQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("reload quiz: %w", err)
	}
	publishEvent(ctx, s.Publisher, QuizEvent{Type: EventQuizCreated, QuizID: created.ID})
	return created, nil
}

// Update 写入请求中的字段；title、description、timeLimit 未传时保持原值
func (s *AdminQuizService) Update(ctx context.Context, id string, in *QuizInput) (*model.Quiz, error) {
	if !util.IsUUID(id) {
		return nil, util.ErrQuizNotFound
	}

	quiz := &model.Quiz{}
	fields, err := in.apply(quiz)
	if err != nil {
		return nil, err
	}
	quiz.ID = id

	if err := s.Store.UpdateQuiz(ctx, quiz, fields); err != nil {
		return nil, fmt.Errorf("update quiz: %w", err)
	}
	s.Cache.Invalidate(ctx, id)

	updated, err := s.Store.GetQuiz(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload quiz: %w", err)
	}
	publishEvent(ctx, s.Publisher, QuizEvent{Type: EventQuizUpdated, QuizID: id})
	return updated, nil
}

func (s *AdminQuizService) Delete(ctx context.Context, id string) error {
	if !util.IsUUID(id) {
		return util.ErrQuizNotFound
	}
	if err := s.Store.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	s.Cache.Invalidate(ctx, id)
	publishEvent(ctx, s.Publisher, QuizEvent{Type: EventQuizDeleted, QuizID: id})
	return nil
}

// ReplaceUsers 覆盖测验的指定用户，返回去重后的用户ID
func (s *AdminQuizService) ReplaceUsers(ctx context.Context, id string, userIDs []string) ([]string, error) {
	if !util.IsUUID(id) {
		return nil, util.ErrQuizNotFound
	}
	ids, err := s.Store.ReplaceAssignments(ctx, id, userIDs)
	if err != nil {
		return nil, fmt.Errorf("replace quiz users: %w", err)
	}
	publishEvent(ctx, s.Publisher, QuizEvent{Type: EventQuizAssigned, QuizID: id})
	return ids, nil
}

func (s *AdminQuizService) Users(ctx context.Context, id string) ([]string, error) {
	if !util.IsUUID(id) {
		return nil, util.ErrQuizNotFound
	}
	if _, err := s.Store.GetQuiz(ctx, id); err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	ids, err := s.Store.FindAssignedUserIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find quiz users: %w", err)
	}
	return ids, nil
}
