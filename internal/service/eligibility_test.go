package service

import (
	"testing"

	"quiz_hub_backend/internal/model"
)

func attemptsWith(statuses ...model.AttemptStatus) []model.QuizAttempt {
	out := make([]model.QuizAttempt, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, model.QuizAttempt{Status: s})
	}
	return out
}

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name       string
		limit      model.AttemptLimit
		attempts   []model.QuizAttempt
		wantCount  int
		wantActive bool
		wantCan    bool
	}{
		{
			name:    "no attempts unlimited",
			limit:   model.Unlimited(),
			wantCan: true,
		},
		{
			name:       "limit two with one submitted and one active",
			limit:      model.LimitOf(2),
			attempts:   attemptsWith(model.AttemptSubmitted, model.AttemptInProgress),
			wantCount:  1,
			wantActive: true,
			wantCan:    false,
		},
		{
			name:      "unlimited with three submitted",
			limit:     model.Unlimited(),
			attempts:  attemptsWith(model.AttemptSubmitted, model.AttemptSubmitted, model.AttemptSubmitted),
			wantCount: 3,
			wantCan:   true,
		},
		{
			name:      "limit one with one submitted",
			limit:     model.LimitOf(1),
			attempts:  attemptsWith(model.AttemptSubmitted),
			wantCount: 1,
			wantCan:   false,
		},
		{
			name:       "unlimited with active attempt",
			limit:      model.Unlimited(),
			attempts:   attemptsWith(model.AttemptInProgress),
			wantActive: true,
			wantCan:    false,
		},
		{
			name:       "in progress does not count toward limit",
			limit:      model.LimitOf(1),
			attempts:   attemptsWith(model.AttemptInProgress),
			wantCount:  0,
			wantActive: true,
			wantCan:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EvaluateEligibility(tt.limit, tt.attempts)
			if e.SubmittedCount != tt.wantCount {
				t.Errorf("SubmittedCount = %d, want %d", e.SubmittedCount, tt.wantCount)
			}
			if e.HasActiveAttempt != tt.wantActive {
				t.Errorf("HasActiveAttempt = %v, want %v", e.HasActiveAttempt, tt.wantActive)
			}
			if e.CanTakeQuiz != tt.wantCan {
				t.Errorf("CanTakeQuiz = %v, want %v", e.CanTakeQuiz, tt.wantCan)
			}
		})
	}
}
