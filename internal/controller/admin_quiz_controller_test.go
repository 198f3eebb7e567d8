package controller

import (
	"net/http"
	"testing"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/testutil"
)

const missingID = "33333333-3333-3333-3333-333333333333"

func TestAdminRoutesRequireAdmin(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{Title: "q", Status: model.QuizActive})
	r := setupRouter(store)
	userToken := testutil.TokenFor(t, userID, model.RoleUser)

	requests := []struct {
		method, path string
		body         interface{}
	}{
		{"GET", "/api/admin/quiz", nil},
		{"GET", "/api/admin/quiz/" + quiz.ID, nil},
		{"PUT", "/api/admin/quiz/" + quiz.ID, map[string]interface{}{"title": "x"}},
		{"DELETE", "/api/admin/quiz/" + quiz.ID, nil},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			for _, token := range []string{"", userToken} {
				w := testutil.MakeRequest(t, r, req.method, req.path, req.body, token)
				testutil.AssertStatus(t, w, http.StatusUnauthorized)
			}
		})
	}

	if store.Calls() != 0 {
		t.Errorf("Expected zero store calls, got %d", store.Calls())
	}
}

func TestAdminGetQuiz(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{
		Title:  "q",
		Status: model.QuizDraft,
		Count:  model.QuizCount{QuizQuestions: 3, QuizAttempts: 1},
	})
	r := setupRouter(store)
	token := testutil.TokenFor(t, adminID, model.RoleAdmin)

	w := testutil.MakeRequest(t, r, "GET", "/api/admin/quiz/"+quiz.ID, nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var got map[string]interface{}
	testutil.AssertJSON(t, w, &got)
	if got["title"] != "q" {
		t.Errorf("Unexpected quiz: %v", got)
	}
	count := got["_count"].(map[string]interface{})
	if count["quizQuestions"] != float64(3) {
		t.Errorf("Unexpected _count: %v", count)
	}

	for _, id := range []string{missingID, "not-a-uuid"} {
		w = testutil.MakeRequest(t, r, "GET", "/api/admin/quiz/"+id, nil, token)
		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertMessage(t, w, "Quiz not found")
	}
}

func TestAdminUpdateQuiz(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{Title: "q", Status: model.QuizDraft, MaxAttempts: model.LimitOf(3), NegativePoints: 2})
	r := setupRouter(store)
	token := testutil.TokenFor(t, adminID, model.RoleAdmin)

	w := testutil.MakeRequest(t, r, "PUT", "/api/admin/quiz/"+quiz.ID, map[string]interface{}{
		"title":       "renamed",
		"timeLimit":   30,
		"maxAttempts": "",
		"startTime":   "",
		"endTime":     "2025-06-01T10:00",
	}, token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got map[string]interface{}
	testutil.AssertJSON(t, w, &got)
	if got["title"] != "renamed" || got["timeLimit"] != float64(30) {
		t.Errorf("Unexpected update: %v", got)
	}
	if got["difficulty"] != "MEDIUM" || got["status"] != "ACTIVE" {
		t.Errorf("Expected default difficulty and status, got %v / %v", got["difficulty"], got["status"])
	}
	if got["negativePoints"] != 0.5 || got["negativeMarking"] != false || got["randomOrder"] != false {
		t.Errorf("Expected marking defaults, got %v", got)
	}
	if v, ok := got["maxAttempts"]; !ok || v != nil {
		t.Errorf("Expected maxAttempts null, got %v", v)
	}
	if got["startTime"] != nil || got["endTime"] == nil {
		t.Errorf("Unexpected schedule: start=%v end=%v", got["startTime"], got["endTime"])
	}

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{"blank title", "/api/admin/quiz/" + quiz.ID, map[string]interface{}{"title": "  "}, http.StatusBadRequest},
		{"bad difficulty", "/api/admin/quiz/" + quiz.ID, map[string]interface{}{"title": "x", "difficulty": "EXTREME"}, http.StatusBadRequest},
		{"bad max attempts", "/api/admin/quiz/" + quiz.ID, map[string]interface{}{"title": "x", "maxAttempts": "many"}, http.StatusBadRequest},
		{"malformed json", "/api/admin/quiz/" + quiz.ID, "{", http.StatusBadRequest},
		{"missing quiz", "/api/admin/quiz/" + missingID, map[string]interface{}{"title": "x"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeRequest(t, r, "PUT", tt.path, tt.body, token)
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}

func TestAdminUpdateWithoutTitle(t *testing.T) {
	store := testutil.NewFakeStore()
	quiz := store.AddQuiz(model.Quiz{Title: "stored", Description: "desc", TimeLimit: 45, Status: model.QuizActive})
	r := setupRouter(store)
	token := testutil.TokenFor(t, adminID, model.RoleAdmin)

	w := testutil.MakeRequest(t, r, "PUT", "/api/admin/quiz/"+quiz.ID, map[string]interface{}{"status": "CLOSED"}, token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got model.Quiz
	testutil.AssertJSON(t, w, &got)
	if got.Title != "stored" || got.Description != "desc" || got.TimeLimit != 45 {
		t.Errorf("Expected title, description and timeLimit kept, got %+v", got)
	}
	if got.Status != model.QuizClosed {
		t.Errorf("Expected CLOSED status, got %s", got.Status)
	}

	// 创建时 title 仍然必填
	w = testutil.MakeRequest(t, r, "POST", "/api/admin/quiz", map[string]interface{}{"status": "ACTIVE"}, token)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if store.CallsTo("CreateQuiz") != 0 {
		t.Error("Expected CreateQuiz not to be called")
	}
}

func TestAdminCreateListDelete(t *testing.T) {
	store := testutil.NewFakeStore()
	r := setupRouter(store)
	token := testutil.TokenFor(t, adminID, model.RoleAdmin)

	w := testutil.MakeRequest(t, r, "POST", "/api/admin/quiz", map[string]interface{}{"title": "new", "maxAttempts": 2}, token)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created model.Quiz
	testutil.AssertJSON(t, w, &created)
	if n, ok := created.MaxAttempts.Max(); !ok || n != 2 {
		t.Errorf("Expected max attempts 2, got %s", created.MaxAttempts)
	}

	w = testutil.MakeRequest(t, r, "GET", "/api/admin/quiz?page=1&limit=10", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var page struct {
		List  []model.Quiz `json:"list"`
		Total int64        `json:"total"`
		Limit int          `json:"limit"`
	}
	testutil.AssertJSON(t, w, &page)
	if page.Total != 1 || len(page.List) != 1 || page.Limit != 10 {
		t.Errorf("Unexpected page: %+v", page)
	}

	w = testutil.MakeRequest(t, r, "PUT", "/api/admin/quiz/"+created.ID+"/users", map[string]interface{}{"userIds": []string{userID, userID}}, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = testutil.MakeRequest(t, r, "GET", "/api/admin/quiz/"+created.ID+"/users", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var users AssignUsersRequest
	testutil.AssertJSON(t, w, &users)
	if len(users.UserIDs) != 1 {
		t.Errorf("Expected 1 assigned user, got %v", users.UserIDs)
	}

	w = testutil.MakeRequest(t, r, "DELETE", "/api/admin/quiz/"+created.ID, nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertMessage(t, w, "Quiz deleted successfully")

	w = testutil.MakeRequest(t, r, "DELETE", "/api/admin/quiz/"+created.ID, nil, token)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertMessage(t, w, "Quiz not found")
}
