package handlers

import (
	"net/http/httptest"
	"regexp"
	"slices"
	"testing"

	"github.com/danielhkuo/variety-study/models"
	"github.com/danielhkuo/variety-study/study"
	"github.com/danielhkuo/variety-study/testutil"
)

func TestAssignSession(t *testing.T) {
	sessions := study.NewSessionStore()
	handler := NewSessionHandler(sessions)

	req := testutil.MakeRequest("POST", "/session", nil, nil)
	w := httptest.NewRecorder()

	handler.Assign(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.AssignSessionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.SessionToken == "" {
		t.Error("Expected non-empty session_token")
	}
	if !regexp.MustCompile(`^p_\d{6}$`).MatchString(resp.ParticipantID) {
		t.Errorf("Unexpected participant_id format: %s", resp.ParticipantID)
	}
	if !slices.Contains(models.Conditions, resp.Condition) {
		t.Errorf("Unexpected condition: %s", resp.Condition)
	}
	if resp.Submitted {
		t.Error("New session must not be submitted")
	}
}

func TestAssignSession_Idempotent(t *testing.T) {
	sessions := study.NewSessionStore()
	handler := NewSessionHandler(sessions)

	// First contact
	req := testutil.MakeRequest("POST", "/session", nil, nil)
	w := httptest.NewRecorder()
	handler.Assign(w, req)
	testutil.AssertStatus(t, w, 201)

	var first models.AssignSessionResponse
	testutil.AssertJSON(t, w, &first)

	// Same token again, several times
	for i := 0; i < 3; i++ {
		req = testutil.MakeRequest("POST", "/session", nil, map[string]string{
			"X-Session-Token": first.SessionToken,
		})
		w = httptest.NewRecorder()
		handler.Assign(w, req)
		testutil.AssertStatus(t, w, 200)

		var again models.AssignSessionResponse
		testutil.AssertJSON(t, w, &again)

		if again.SessionToken != first.SessionToken {
			t.Error("Session token changed on re-assignment")
		}
		if again.ParticipantID != first.ParticipantID {
			t.Error("Participant ID changed on re-assignment")
		}
		if again.Condition != first.Condition {
			t.Error("Condition changed on re-assignment")
		}
	}
}

func TestAssignSession_StaleTokenGetsFreshSession(t *testing.T) {
	sessions := study.NewSessionStore()
	handler := NewSessionHandler(sessions)

	req := testutil.MakeRequest("POST", "/session", nil, map[string]string{
		"X-Session-Token": "token-from-a-previous-process",
	})
	w := httptest.NewRecorder()
	handler.Assign(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.AssignSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SessionToken == "token-from-a-previous-process" {
		t.Error("Stale token should have been replaced")
	}
}

func TestFlavors(t *testing.T) {
	handler := NewSessionHandler(study.NewSessionStore())

	req := testutil.MakeRequest("GET", "/flavors", nil, nil)
	w := httptest.NewRecorder()
	handler.Flavors(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.FlavorsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Flavors) != 6 {
		t.Errorf("Expected 6 flavors, got %d", len(resp.Flavors))
	}
	for _, c := range models.Conditions {
		if resp.Prompts[c] == "" {
			t.Errorf("Missing prompt for condition %s", c)
		}
	}
}
