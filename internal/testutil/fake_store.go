package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"

	"github.com/google/uuid"
)

// FakeStore 内存实现的测验存储，记录调用次数；Err 非空时所有操作失败，
// FailOn 非空时仅该操作失败
type FakeStore struct {
	Quizzes     []model.Quiz
	Assignments map[string][]string
	Attempts    []model.QuizAttempt

	Err    error
	FailOn string

	mu    sync.Mutex
	calls map[string]int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Assignments: make(map[string][]string)}
}

func (s *FakeStore) record(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[op]++
	if s.Err != nil && (s.FailOn == "" || s.FailOn == op) {
		return s.Err
	}
	return nil
}

// Calls 全部操作的调用次数
func (s *FakeStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *FakeStore) CallsTo(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// AddQuiz 追加测验，未设置 ID 时自动生成
func (s *FakeStore) AddQuiz(q model.Quiz) model.Quiz {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	s.Quizzes = append(s.Quizzes, q)
	return q
}

func (s *FakeStore) AddAttempt(a model.QuizAttempt) model.QuizAttempt {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.Attempts = append(s.Attempts, a)
	return a
}

func (s *FakeStore) visibleTo(q model.Quiz, userID string) bool {
	if q.Status != model.QuizActive {
		return false
	}
	assigned := s.Assignments[q.ID]
	if len(assigned) == 0 {
		return true
	}
	for _, id := range assigned {
		if id == userID {
			return true
		}
	}
	for _, a := range s.Attempts {
		if a.QuizID == q.ID && a.UserID == userID {
			return true
		}
	}
	return false
}

func (s *FakeStore) FindQuizzesVisibleTo(ctx context.Context, userID string) ([]model.Quiz, error) {
	if err := s.record("FindQuizzesVisibleTo"); err != nil {
		return nil, err
	}
	var out []model.Quiz
	for _, q := range s.Quizzes {
		if s.visibleTo(q, userID) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *FakeStore) FindVisibleQuiz(ctx context.Context, quizID, userID string) (*model.Quiz, error) {
	if err := s.record("FindVisibleQuiz"); err != nil {
		return nil, err
	}
	for _, q := range s.Quizzes {
		if q.ID == quizID && s.visibleTo(q, userID) {
			found := q
			return &found, nil
		}
	}
	return nil, util.ErrQuizNotFound
}

func (s *FakeStore) userAttempts(userID, quizID string) []model.QuizAttempt {
	var out []model.QuizAttempt
	for _, a := range s.Attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *FakeStore) FindAttempts(ctx context.Context, userID, quizID string) ([]model.QuizAttempt, error) {
	if err := s.record("FindAttempts"); err != nil {
		return nil, err
	}
	return s.userAttempts(userID, quizID), nil
}

func (s *FakeStore) FindLatestAttempt(ctx context.Context, userID, quizID string) (*model.QuizAttempt, error) {
	if err := s.record("FindLatestAttempt"); err != nil {
		return nil, err
	}
	attempts := s.userAttempts(userID, quizID)
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}

func (s *FakeStore) findQuiz(id string) int {
	for i, q := range s.Quizzes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (s *FakeStore) ListQuizzes(ctx context.Context, page, limit int) ([]model.Quiz, int64, error) {
	if err := s.record("ListQuizzes"); err != nil {
		return nil, 0, err
	}
	all := append([]model.Quiz(nil), s.Quizzes...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (s *FakeStore) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	if err := s.record("GetQuiz"); err != nil {
		return nil, err
	}
	i := s.findQuiz(id)
	if i < 0 {
		return nil, util.ErrQuizNotFound
	}
	found := s.Quizzes[i]
	return &found, nil
}

func (s *FakeStore) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	if err := s.record("CreateQuiz"); err != nil {
		return err
	}
	*quiz = s.AddQuiz(*quiz)
	return nil
}

// UpdateQuiz 与仓储一致，只写入 fields 中的列
func (s *FakeStore) UpdateQuiz(ctx context.Context, quiz *model.Quiz, fields []string) error {
	if err := s.record("UpdateQuiz"); err != nil {
		return err
	}
	i := s.findQuiz(quiz.ID)
	if i < 0 {
		return util.ErrQuizNotFound
	}
	q := &s.Quizzes[i]
	for _, f := range fields {
		switch f {
		case "title":
			q.Title = quiz.Title
		case "description":
			q.Description = quiz.Description
		case "time_limit":
			q.TimeLimit = quiz.TimeLimit
		case "difficulty":
			q.Difficulty = quiz.Difficulty
		case "status":
			q.Status = quiz.Status
		case "negative_marking":
			q.NegativeMarking = quiz.NegativeMarking
		case "negative_points":
			q.NegativePoints = quiz.NegativePoints
		case "random_order":
			q.RandomOrder = quiz.RandomOrder
		case "max_attempts":
			q.MaxAttempts = quiz.MaxAttempts
		case "start_time":
			q.StartTime = quiz.StartTime
		case "end_time":
			q.EndTime = quiz.EndTime
		}
	}
	q.UpdatedAt = time.Now()
	return nil
}

func (s *FakeStore) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.record("DeleteQuiz"); err != nil {
		return err
	}
	i := s.findQuiz(id)
	if i < 0 {
		return util.ErrQuizNotFound
	}
	s.Quizzes = append(s.Quizzes[:i], s.Quizzes[i+1:]...)
	delete(s.Assignments, id)

	kept := s.Attempts[:0]
	for _, a := range s.Attempts {
		if a.QuizID != id {
			kept = append(kept, a)
		}
	}
	s.Attempts = kept
	return nil
}

func (s *FakeStore) ReplaceAssignments(ctx context.Context, quizID string, userIDs []string) ([]string, error) {
	if err := s.record("ReplaceAssignments"); err != nil {
		return nil, err
	}
	if s.findQuiz(quizID) < 0 {
		return nil, util.ErrQuizNotFound
	}
	seen := make(map[string]bool)
	unique := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id != "" && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	s.Assignments[quizID] = unique
	return unique, nil
}

func (s *FakeStore) FindAssignedUserIDs(ctx context.Context, quizID string) ([]string, error) {
	if err := s.record("FindAssignedUserIDs"); err != nil {
		return nil, err
	}
	return append([]string{}, s.Assignments[quizID]...), nil
}

func (s *FakeStore) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	if err := s.record("CreateAttempt"); err != nil {
		return err
	}
	*attempt = s.AddAttempt(*attempt)
	return nil
}

func (s *FakeStore) FindByID(ctx context.Context, id string) (*model.QuizAttempt, error) {
	if err := s.record("FindAttemptByID"); err != nil {
		return nil, err
	}
	for _, a := range s.Attempts {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, util.ErrAttemptNotFound
}

func (s *FakeStore) Submit(ctx context.Context, attempt *model.QuizAttempt) error {
	if err := s.record("SubmitAttempt"); err != nil {
		return err
	}
	for i, a := range s.Attempts {
		if a.ID != attempt.ID {
			continue
		}
		if a.Status != model.AttemptInProgress {
			return util.ErrAttemptAlreadySubmitted
		}
		s.Attempts[i].Status = attempt.Status
		s.Attempts[i].Score = attempt.Score
		s.Attempts[i].Answers = attempt.Answers
		s.Attempts[i].SubmittedAt = attempt.SubmittedAt
		return nil
	}
	return util.ErrAttemptAlreadySubmitted
}
