package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-intake-sheets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockIntakeSvc struct{ mock.Mock }

func (m *mockIntakeSvc) Submit(ctx context.Context, email, rawText string) (int, error) {
	args := m.Called(ctx, email, rawText)
	return args.Int(0), args.Error(1)
}

func authedSession() *domain.Session {
	return &domain.Session{SessionID: "s1", LoggedIn: true, UserEmail: "a@b.com"}
}

func TestSubmitLinkedIn_RequiresLogin(t *testing.T) {
	h := NewIntakeHandler(&mockIntakeSvc{})
	rr := httptest.NewRecorder()
	h.SubmitLinkedIn(rr, sessionReq(http.MethodPost, "/submit_linkedin", &domain.Session{SessionID: "s1"}, []byte(`{"linkedin_urls":"linkedin.com/in/janedoe"}`)))

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, msgLoginRequired, env.Message)
}

func TestSubmitLinkedIn_EmptyInput(t *testing.T) {
	h := NewIntakeHandler(&mockIntakeSvc{})
	rr := httptest.NewRecorder()
	h.SubmitLinkedIn(rr, sessionReq(http.MethodPost, "/submit_linkedin", authedSession(), []byte(`{"linkedin_urls":"  "}`)))

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, msgLinksRequired, env.Message)
}

func TestSubmitLinkedIn_UsesSessionEmail(t *testing.T) {
	svc := &mockIntakeSvc{}
	svc.On("Submit", mock.Anything, "a@b.com", "linkedin.com/in/janedoe").Return(1, nil)
	h := NewIntakeHandler(svc)

	rr := httptest.NewRecorder()
	h.SubmitLinkedIn(rr, sessionReq(http.MethodPost, "/submit_linkedin", authedSession(), []byte(`{"linkedin_urls":"linkedin.com/in/janedoe"}`)))

	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "successfully submitted 1 LinkedIn link(s)", env.Message)
	svc.AssertExpectations(t)
}

func TestSubmitLinkedIn_NoValidLinks(t *testing.T) {
	svc := &mockIntakeSvc{}
	svc.On("Submit", mock.Anything, "a@b.com", "not-a-url").Return(0, domain.ErrNoValidLinks)
	h := NewIntakeHandler(svc)

	rr := httptest.NewRecorder()
	h.SubmitLinkedIn(rr, sessionReq(http.MethodPost, "/submit_linkedin", authedSession(), []byte(`{"linkedin_urls":"not-a-url"}`)))

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, msgNoValidLinks, env.Message)
}

func TestSubmitLinkedIn_LedgerUnavailable(t *testing.T) {
	svc := &mockIntakeSvc{}
	svc.On("Submit", mock.Anything, "a@b.com", "linkedin.com/in/janedoe").Return(0, domain.ErrLedgerUnavailable)
	h := NewIntakeHandler(svc)

	rr := httptest.NewRecorder()
	h.SubmitLinkedIn(rr, sessionReq(http.MethodPost, "/submit_linkedin", authedSession(), []byte(`{"linkedin_urls":"linkedin.com/in/janedoe"}`)))

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, msgLedgerFailed, env.Message)
}
