package service

import "quiz_hub_backend/internal/model"

// Eligibility 用户对某测验的作答汇总
type Eligibility struct {
	SubmittedCount   int
	HasActiveAttempt bool
	CanTakeQuiz      bool
}

// EvaluateEligibility 只统计已提交的作答；存在进行中的作答时不能再开始新的作答
func EvaluateEligibility(limit model.AttemptLimit, attempts []model.QuizAttempt) Eligibility {
	var e Eligibility
	for _, a := range attempts {
		switch a.Status {
		case model.AttemptSubmitted:
			e.SubmittedCount++
		case model.AttemptInProgress:
			e.HasActiveAttempt = true
		}
	}
	e.CanTakeQuiz = limit.Allows(e.SubmittedCount) && !e.HasActiveAttempt
	return e
}
