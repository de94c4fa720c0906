package handlers

import (
	"time"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/services"
)

// Response bodies use camelCase keys; request bodies keep snake_case. The
// view types below own the response side of that contract.

type userView struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func newUserView(u *types.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		LastLogin: utcPtr(u.LastLogin),
	}
}

type categoryView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCategoryView(cat *types.Category) *categoryView {
	return &categoryView{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt.UTC()}
}

func newCategoryViews(cats []*types.Category) []*categoryView {
	out := make([]*categoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, newCategoryView(cat))
	}
	return out
}

type categoryCountView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	QuestionCount int64  `json:"questionCount"`
}

func newCategoryCountViews(counts []*types.CategoryQuestionCount) []*categoryCountView {
	out := make([]*categoryCountView, 0, len(counts))
	for _, cc := range counts {
		out = append(out, &categoryCountView{ID: cc.ID, Name: cc.Name, QuestionCount: cc.QuestionCount})
	}
	return out
}

type questionView struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Difficulty   string `json:"difficulty"`
	CategoryID   *int64 `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

func newQuestionView(q *types.CatalogQuestion) *questionView {
	v := &questionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: string(q.Difficulty),
		CategoryID: q.CategoryID,
	}
	if q.Category != nil {
		v.CategoryName = q.Category.Name
	}
	return v
}

func newQuestionViews(qs []*types.CatalogQuestion) []*questionView {
	out := make([]*questionView, 0, len(qs))
	for _, q := range qs {
		out = append(out, newQuestionView(q))
	}
	return out
}

type eventView struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Venue       string     `json:"venue,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newEventView(ev *types.Event) *eventView {
	return &eventView{
		ID:          ev.ID,
		Name:        ev.Name,
		Description: ev.Description,
		Venue:       ev.Venue,
		EventDate:   utcPtr(ev.EventDate),
		Status:      string(ev.Status),
		CreatedAt:   ev.CreatedAt.UTC(),
		UpdatedAt:   ev.UpdatedAt.UTC(),
	}
}

func newEventViews(evs []*types.Event) []*eventView {
	out := make([]*eventView, 0, len(evs))
	for _, ev := range evs {
		out = append(out, newEventView(ev))
	}
	return out
}

type eventDetailView struct {
	eventView
	Rounds []*roundDetailView `json:"rounds"`
}

func newEventDetailView(detail *services.EventDetail) *eventDetailView {
	v := &eventDetailView{
		eventView: *newEventView(detail.Event),
		Rounds:    make([]*roundDetailView, 0, len(detail.Rounds)),
	}
	for _, rd := range detail.Rounds {
		v.Rounds = append(v.Rounds, newRoundDetailView(rd))
	}
	return v
}

type roundDetailView struct {
	ID          int64                     `json:"id"`
	EventID     int64                     `json:"eventId"`
	RoundNumber int                       `json:"roundNumber"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	CategoryID  *int64                    `json:"categoryId,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Questions   []*normalizedQuestionView `json:"questions"`
}

func newRoundDetailView(rd *services.RoundDetail) *roundDetailView {
	return &roundDetailView{
		ID:          rd.Round.ID,
		EventID:     rd.Round.EventID,
		RoundNumber: rd.Round.RoundNumber,
		Name:        rd.Round.Name,
		Description: rd.Round.Description,
		CategoryID:  rd.Round.CategoryID,
		CreatedAt:   rd.Round.CreatedAt.UTC(),
		Questions:   newNormalizedQuestionViews(rd.Questions),
	}
}

type normalizedQuestionView struct {
	RoundQuestionID int64  `json:"roundQuestionId"`
	RoundID         int64  `json:"roundId"`
	QuestionNumber  int    `json:"questionNumber"`
	QuestionID      int64  `json:"questionId"`
	QuestionType    string `json:"questionType"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	Difficulty      string `json:"difficulty"`
	CategoryID      *int64 `json:"categoryId,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
}

func newNormalizedQuestionViews(qs []*types.NormalizedQuestion) []*normalizedQuestionView {
	out := make([]*normalizedQuestionView, 0, len(qs))
	for _, nq := range qs {
		out = append(out, &normalizedQuestionView{
			RoundQuestionID: nq.RoundQuestionID,
			RoundID:         nq.RoundID,
			QuestionNumber:  nq.QuestionNumber,
			QuestionID:      nq.QuestionID,
			QuestionType:    string(nq.QuestionType),
			Question:        nq.Question,
			Answer:          nq.Answer,
			Difficulty:      string(nq.Difficulty),
			CategoryID:      nq.CategoryID,
			CategoryName:    nq.CategoryName,
		})
	}
	return out
}

type roundQuestionView struct {
	ID               int64     `json:"id"`
	RoundID          int64     `json:"roundId"`
	QuestionNumber   int       `json:"questionNumber"`
	TriviaQuestionID *int64    `json:"triviaQuestionId,omitempty"`
	UserQuestionID   *int64    `json:"userQuestionId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func newRoundQuestionView(rq *types.RoundQuestion) *roundQuestionView {
	return &roundQuestionView{
		ID:               rq.ID,
		RoundID:          rq.RoundID,
		QuestionNumber:   rq.QuestionNumber,
		TriviaQuestionID: rq.TriviaQuestionID,
		UserQuestionID:   rq.UserQuestionID,
		CreatedAt:        rq.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
