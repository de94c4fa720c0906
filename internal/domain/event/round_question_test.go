package event

import (
	"testing"
)

func TestNewQuestionRef(t *testing.T) {
	catalogID := int64(7)
	userID := int64(9)

	ref, err := NewQuestionRef(&catalogID, nil)
	if err != nil {
		t.Fatalf("catalog ref: %v", err)
	}
	if ref.Source != QuestionSourceCatalog || ref.ID != 7 {
		t.Fatalf("catalog ref = %+v", ref)
	}

	ref, err = NewQuestionRef(nil, &userID)
	if err != nil {
		t.Fatalf("user ref: %v", err)
	}
	if ref.Source != QuestionSourceUser || ref.ID != 9 {
		t.Fatalf("user ref = %+v", ref)
	}

	if _, err := NewQuestionRef(&catalogID, &userID); err == nil {
		t.Fatalf("both references set should be rejected")
	}
	if _, err := NewQuestionRef(nil, nil); err == nil {
		t.Fatalf("no reference set should be rejected")
	}
}

func TestQuestionRefApply(t *testing.T) {
	var rq RoundQuestion
	rq.UserQuestionID = new(int64)

	if err := CatalogRef(3).Apply(&rq); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rq.TriviaQuestionID == nil || *rq.TriviaQuestionID != 3 {
		t.Fatalf("catalog id not applied: %+v", rq)
	}
	if rq.UserQuestionID != nil {
		t.Fatalf("Apply should clear the other reference")
	}

	if err := (QuestionRef{}).Apply(&rq); err == nil {
		t.Fatalf("zero-value ref should not apply")
	}
	if err := (QuestionRef{Source: QuestionSourceUser, ID: 0}).Apply(&rq); err == nil {
		t.Fatalf("non-positive id should not apply")
	}
}

func TestRefOfRoundTrip(t *testing.T) {
	var rq RoundQuestion
	if err := UserRef(11).Apply(&rq); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	ref, err := RefOf(&rq)
	if err != nil {
		t.Fatalf("RefOf: %v", err)
	}
	if ref != UserRef(11) {
		t.Fatalf("round trip = %+v", ref)
	}
	if _, err := RefOf(nil); err == nil {
		t.Fatalf("RefOf(nil) should fail")
	}
}
