package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/testutil"
	"quiz_hub_backend/internal/util"
)

type countingCache struct {
	invalidated []string
}

func (c *countingCache) Invalidate(ctx context.Context, id string) {
	c.invalidated = append(c.invalidated, id)
}

func TestStartAttempt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		quiz     model.Quiz
		assigned []string
		existing []model.AttemptStatus
		wantErr  error
	}{
		{"open quiz", model.Quiz{Status: model.QuizActive}, nil, nil, nil},
		{"draft quiz", model.Quiz{Status: model.QuizDraft}, nil, nil, util.ErrQuizNotFound},
		{"assigned to someone else", model.Quiz{Status: model.QuizActive}, []string{userB}, nil, util.ErrQuizNotFound},
		{"limit reached", model.Quiz{Status: model.QuizActive, MaxAttempts: model.LimitOf(1)}, nil, []model.AttemptStatus{model.AttemptSubmitted}, util.ErrAttemptNotAllowed},
		{"active attempt", model.Quiz{Status: model.QuizActive}, nil, []model.AttemptStatus{model.AttemptInProgress}, util.ErrAttemptNotAllowed},
		{"not started yet", model.Quiz{Status: model.QuizActive, StartTime: &future}, nil, nil, util.ErrAttemptNotAllowed},
		{"already ended", model.Quiz{Status: model.QuizActive, EndTime: &past}, nil, nil, util.ErrAttemptNotAllowed},
		{"within window", model.Quiz{Status: model.QuizActive, StartTime: &past, EndTime: &future}, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewFakeStore()
			quiz := store.AddQuiz(tt.quiz)
			if tt.assigned != nil {
				store.Assignments[quiz.ID] = tt.assigned
			}
			for _, st := range tt.existing {
				store.AddAttempt(model.QuizAttempt{UserID: userA, QuizID: quiz.ID, Status: st})
			}

			pub := &recordingPublisher{}
			cache := &countingCache{}
			svc := NewAttemptService(store, store, cache, pub)
			svc.Now = func() time.Time { return now }

			attempt, err := svc.Start(context.Background(), userA, quiz.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if store.CallsTo("CreateAttempt") != 0 {
					t.Error("Expected no attempt to be created")
				}
				if len(cache.invalidated) != 0 {
					t.Errorf("Expected no cache invalidation, got %v", cache.invalidated)
				}
				return
			}
			if err != nil {
				t.Fatalf("Start failed: %v", err)
			}
			if attempt.Status != model.AttemptInProgress || attempt.UserID != userA || !attempt.StartedAt.Equal(now) {
				t.Errorf("Unexpected attempt: %+v", attempt)
			}
			if len(cache.invalidated) != 1 || cache.invalidated[0] != quiz.ID {
				t.Errorf("Expected quiz detail cache invalidated once for %s, got %v", quiz.ID, cache.invalidated)
			}
			if types := pub.types(); len(types) != 1 || types[0] != EventAttemptStarted {
				t.Errorf("Expected attempt.started event, got %v", types)
			}
		})
	}
}

func TestSubmitAttempt(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{Status: model.QuizActive})
	mine := store.AddAttempt(model.QuizAttempt{UserID: userA, QuizID: quiz.ID, Status: model.AttemptInProgress})
	svc := NewAttemptService(store, store, nil, nil)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, userB, mine.ID, nil); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Errorf("Expected ErrAttemptNotFound for another user, got %v", err)
	}
	if _, err := svc.Submit(ctx, userA, "not-a-uuid", nil); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Errorf("Expected ErrAttemptNotFound for malformed id, got %v", err)
	}

	score := 7.0
	submitted, err := svc.Submit(ctx, userA, mine.ID, &SubmitInput{Answers: json.RawMessage(`{"1":"b"}`), Score: &score})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if submitted.Status != model.AttemptSubmitted || submitted.SubmittedAt == nil || *submitted.Score != 7 {
		t.Errorf("Unexpected submitted attempt: %+v", submitted)
	}

	if _, err := svc.Submit(ctx, userA, mine.ID, nil); !errors.Is(err, util.ErrAttemptAlreadySubmitted) {
		t.Errorf("Expected ErrAttemptAlreadySubmitted, got %v", err)
	}

	views, err := NewQuizService(store).ListForUser(ctx, userA)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if views[0].UserAttemptCount != 1 || views[0].HasActiveAttempt {
		t.Errorf("Expected submitted attempt to be counted, got %+v", views[0])
	}
}

func TestStartAttemptWithoutCache(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{Status: model.QuizActive})

	var cache *QuizCache
	svc := NewAttemptService(store, store, cache, nil)
	if _, err := svc.Start(context.Background(), userA, quiz.ID); err != nil {
		t.Fatalf("Start failed with disabled cache: %v", err)
	}
}
