package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/testutil"
	"quiz_hub_backend/internal/util"
)

func quizIDs(quizzes []model.Quiz) []string {
	ids := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestFindQuizzesVisibleTo(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	alice := testutil.CreateUser(t, db, "alice@example.com", model.RoleUser)
	bob := testutil.CreateUser(t, db, "bob@example.com", model.RoleUser)

	open := testutil.CreateQuiz(t, db, "open", model.QuizActive, model.Unlimited(), base)
	forAlice := testutil.CreateQuiz(t, db, "for alice", model.QuizActive, model.LimitOf(1), base.Add(time.Hour))
	attemptedByBob := testutil.CreateQuiz(t, db, "bob attempted", model.QuizActive, model.Unlimited(), base.Add(2*time.Hour))
	draft := testutil.CreateQuiz(t, db, "draft", model.QuizDraft, model.Unlimited(), base.Add(3*time.Hour))
	closed := testutil.CreateQuiz(t, db, "closed", model.QuizClosed, model.Unlimited(), base.Add(4*time.Hour))

	testutil.AssignUsers(t, db, forAlice.ID, alice.ID)
	testutil.AssignUsers(t, db, attemptedByBob.ID, alice.ID)
	testutil.CreateAttempt(t, db, bob.ID, attemptedByBob.ID, model.AttemptSubmitted, base)
	// 草稿上的作答不会让测验可见
	testutil.CreateAttempt(t, db, bob.ID, draft.ID, model.AttemptSubmitted, base)
	testutil.CreateQuestion(t, db, open.ID, 1)
	testutil.CreateQuestion(t, db, open.ID, 2)
	_ = closed

	tests := []struct {
		name   string
		userID string
		want   []string
	}{
		{"assigned user sees all active", alice.ID, []string{attemptedByBob.ID, forAlice.ID, open.ID}},
		{"outsider sees open and attempted", bob.ID, []string{attemptedByBob.ID, open.ID}},
		{"new user sees only open", "00000000-0000-0000-0000-000000000000", []string{open.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizzes, err := repo.FindQuizzesVisibleTo(ctx, tt.userID)
			if err != nil {
				t.Fatalf("FindQuizzesVisibleTo failed: %v", err)
			}
			got := quizIDs(quizzes)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Position %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}

	quizzes, _ := repo.FindQuizzesVisibleTo(ctx, alice.ID)
	last := quizzes[len(quizzes)-1]
	if last.Count.QuizQuestions != 2 {
		t.Errorf("Expected 2 questions on open quiz, got %d", last.Count.QuizQuestions)
	}
	if !last.MaxAttempts.IsUnlimited() {
		t.Errorf("Expected unlimited attempts, got %s", last.MaxAttempts)
	}
	if n, ok := quizzes[1].MaxAttempts.Max(); !ok || n != 1 {
		t.Errorf("Expected max attempts 1, got %s", quizzes[1].MaxAttempts)
	}
	if quizzes[0].Count.QuizAttempts != 1 {
		t.Errorf("Expected 1 attempt counted, got %d", quizzes[0].Count.QuizAttempts)
	}
}

func TestFindVisibleQuiz(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice@example.com", model.RoleUser)
	bob := testutil.CreateUser(t, db, "bob@example.com", model.RoleUser)
	restricted := testutil.CreateQuiz(t, db, "restricted", model.QuizActive, model.Unlimited(), time.Now())
	testutil.AssignUsers(t, db, restricted.ID, alice.ID)

	if _, err := repo.FindVisibleQuiz(ctx, restricted.ID, alice.ID); err != nil {
		t.Errorf("Expected assigned user to see quiz, got %v", err)
	}
	if _, err := repo.FindVisibleQuiz(ctx, restricted.ID, bob.ID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound for outsider, got %v", err)
	}
}

func TestFindAttemptsAndLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	user := testutil.CreateUser(t, db, "u@example.com", model.RoleUser)
	other := testutil.CreateUser(t, db, "o@example.com", model.RoleUser)
	quiz := testutil.CreateQuiz(t, db, "q", model.QuizActive, model.Unlimited(), base)

	latest, err := repo.FindLatestAttempt(ctx, user.ID, quiz.ID)
	if err != nil || latest != nil {
		t.Fatalf("Expected nil latest attempt, got %v, %v", latest, err)
	}

	testutil.CreateAttempt(t, db, user.ID, quiz.ID, model.AttemptSubmitted, base)
	newest := testutil.CreateAttempt(t, db, user.ID, quiz.ID, model.AttemptInProgress, base.Add(time.Hour))
	testutil.CreateAttempt(t, db, other.ID, quiz.ID, model.AttemptSubmitted, base.Add(2*time.Hour))

	attempts, err := repo.FindAttempts(ctx, user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("FindAttempts failed: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != newest.ID {
		t.Errorf("Expected newest attempt first")
	}

	latest, err = repo.FindLatestAttempt(ctx, user.ID, quiz.ID)
	if err != nil || latest == nil || latest.ID != newest.ID {
		t.Errorf("Expected latest attempt %s, got %v, %v", newest.ID, latest, err)
	}
}

func TestGetAndListQuizzes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		testutil.CreateQuiz(t, db, "q", model.QuizDraft, model.Unlimited(), base.Add(time.Duration(i)*time.Hour))
	}

	quizzes, total, err := repo.ListQuizzes(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListQuizzes failed: %v", err)
	}
	if total != 3 || len(quizzes) != 1 {
		t.Errorf("Expected total 3 and 1 item on page 2, got %d and %d", total, len(quizzes))
	}

	if _, err := repo.GetQuiz(ctx, "missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound, got %v", err)
	}
}

func TestUpdateQuiz(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	quiz := testutil.CreateQuiz(t, db, "before", model.QuizActive, model.LimitOf(3), time.Now())

	quiz.Title = "after"
	quiz.MaxAttempts = model.Unlimited()
	quiz.RandomOrder = false
	quiz.Status = model.QuizClosed
	if err := repo.UpdateQuiz(ctx, quiz, []string{"title", "max_attempts", "random_order", "status"}); err != nil {
		t.Fatalf("UpdateQuiz failed: %v", err)
	}

	got, err := repo.GetQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if got.Title != "after" || got.Status != model.QuizClosed {
		t.Errorf("Unexpected quiz after update: %+v", got)
	}
	if !got.MaxAttempts.IsUnlimited() {
		t.Errorf("Expected max attempts cleared to unlimited, got %s", got.MaxAttempts)
	}

	missing := &model.Quiz{Title: "x"}
	missing.ID = "00000000-0000-0000-0000-000000000000"
	if err := repo.UpdateQuiz(ctx, missing, []string{"title"}); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound, got %v", err)
	}
	if err := repo.UpdateQuiz(ctx, quiz, []string{"created_at"}); err == nil {
		t.Error("Expected error for non-editable column")
	}
}

func TestUpdateQuizKeepsUnselectedColumns(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	quiz := testutil.CreateQuiz(t, db, "keep", model.QuizActive, model.Unlimited(), time.Now())
	if err := db.Model(quiz).Updates(map[string]interface{}{"description": "desc", "time_limit": 30}).Error; err != nil {
		t.Fatalf("Failed to seed quiz: %v", err)
	}

	patch := &model.Quiz{Status: model.QuizClosed}
	patch.ID = quiz.ID
	if err := repo.UpdateQuiz(ctx, patch, []string{"status"}); err != nil {
		t.Fatalf("UpdateQuiz failed: %v", err)
	}

	got, err := repo.GetQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if got.Title != "keep" || got.Description != "desc" || got.TimeLimit != 30 {
		t.Errorf("Expected title, description and timeLimit unchanged, got %+v", got)
	}
	if got.Status != model.QuizClosed {
		t.Errorf("Expected CLOSED status, got %s", got.Status)
	}
}

func TestDeleteQuiz(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "u@example.com", model.RoleUser)
	quiz := testutil.CreateQuiz(t, db, "q", model.QuizActive, model.Unlimited(), time.Now())
	testutil.CreateQuestion(t, db, quiz.ID, 1)
	testutil.AssignUsers(t, db, quiz.ID, user.ID)
	testutil.CreateAttempt(t, db, user.ID, quiz.ID, model.AttemptSubmitted, time.Now())

	if err := repo.DeleteQuiz(ctx, quiz.ID); err != nil {
		t.Fatalf("DeleteQuiz failed: %v", err)
	}

	if _, err := repo.GetQuiz(ctx, quiz.ID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected quiz to be gone, got %v", err)
	}
	for _, m := range []interface{}{&model.QuizQuestion{}, &model.QuizUser{}, &model.QuizAttempt{}} {
		var count int64
		db.Model(m).Where("quiz_id = ?", quiz.ID).Count(&count)
		if count != 0 {
			t.Errorf("Expected dependent rows of %T to be deleted, got %d", m, count)
		}
	}

	if err := repo.DeleteQuiz(ctx, quiz.ID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound on second delete, got %v", err)
	}
}

func TestReplaceAssignments(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "a@example.com", model.RoleUser)
	b := testutil.CreateUser(t, db, "b@example.com", model.RoleUser)
	quiz := testutil.CreateQuiz(t, db, "q", model.QuizActive, model.Unlimited(), time.Now())

	ids, err := repo.ReplaceAssignments(ctx, quiz.ID, []string{a.ID, a.ID, b.ID, ""})
	if err != nil {
		t.Fatalf("ReplaceAssignments failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 unique users, got %v", ids)
	}

	stored, _ := repo.FindAssignedUserIDs(ctx, quiz.ID)
	if len(stored) != 2 {
		t.Errorf("Expected 2 stored assignments, got %v", stored)
	}

	if _, err := repo.ReplaceAssignments(ctx, quiz.ID, []string{"unknown"}); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	// 失败时保持原有指定
	stored, _ = repo.FindAssignedUserIDs(ctx, quiz.ID)
	if len(stored) != 2 {
		t.Errorf("Expected assignments unchanged after failure, got %v", stored)
	}

	if _, err := repo.ReplaceAssignments(ctx, quiz.ID, nil); err != nil {
		t.Fatalf("Clearing assignments failed: %v", err)
	}
	stored, _ = repo.FindAssignedUserIDs(ctx, quiz.ID)
	if len(stored) != 0 {
		t.Errorf("Expected no assignments, got %v", stored)
	}

	if _, err := repo.ReplaceAssignments(ctx, "missing", nil); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound, got %v", err)
	}
}
