package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type stubRoundService struct {
	attach func(int64, types.QuestionRef) (*types.RoundQuestion, error)
}

func (s *stubRoundService) Create(context.Context, services.CreateRoundInput) (*services.RoundDetail, error) {
	return nil, nil
}

func (s *stubRoundService) Get(context.Context, int64) (*services.RoundDetail, error) {
	return nil, nil
}

func (s *stubRoundService) Questions(context.Context, int64) ([]*types.NormalizedQuestion, error) {
	return nil, nil
}

func (s *stubRoundService) Attach(_ context.Context, roundID int64, ref types.QuestionRef) (*types.RoundQuestion, error) {
	return s.attach(roundID, ref)
}

func (s *stubRoundService) Delete(context.Context, int64) error { return nil }

func attachRouter(t *testing.T, svc services.RoundService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rh := NewRoundHandler(testLogger(t), svc)
	r := gin.New()
	r.POST("/rounds/:round_id/questions", rh.AttachQuestion)
	return r
}

func postAttach(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rounds/7/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRoundHandlerAttachRejectsAmbiguousReference(t *testing.T) {
	r := attachRouter(t, &stubRoundService{
		attach: func(int64, types.QuestionRef) (*types.RoundQuestion, error) {
			t.Fatal("service should not be reached")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{}`,
		`{"question_id": 1, "user_question_id": 2}`,
	} {
		if w := postAttach(r, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestRoundHandlerAttachCatalogQuestion(t *testing.T) {
	r := attachRouter(t, &stubRoundService{
		attach: func(roundID int64, ref types.QuestionRef) (*types.RoundQuestion, error) {
			if roundID != 7 {
				t.Fatalf("expected round 7, got %d", roundID)
			}
			if ref.Source != types.QuestionSourceCatalog || ref.ID != 42 {
				t.Fatalf("unexpected ref %+v", ref)
			}
			id := ref.ID
			return &types.RoundQuestion{ID: 1, RoundID: roundID, QuestionNumber: 1, TriviaQuestionID: &id}, nil
		},
	})

	w := postAttach(r, `{"question_id": 42}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["triviaQuestionId"].(float64) != 42 || body["questionNumber"].(float64) != 1 {
		t.Fatalf("unexpected body %v", body)
	}
}
