package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swayogurja/swayog-backend/internal/dependency"
	"github.com/swayogurja/swayog-backend/internal/entity"
	"github.com/swayogurja/swayog-backend/internal/mail"
)

type mockInquiries struct {
	added     []entity.InquiryInsert
	addErr    error
	inquiries []entity.Inquiry
	listErr   error
}

func (m *mockInquiries) AddInquiry(_ context.Context, insert entity.InquiryInsert) (entity.Inquiry, error) {
	if m.addErr != nil {
		return entity.Inquiry{}, m.addErr
	}
	m.added = append(m.added, insert)
	return entity.Inquiry{Id: 1, InquiryInsert: insert}, nil
}

func (m *mockInquiries) GetInquiryById(_ context.Context, id int) (entity.Inquiry, error) {
	for _, inq := range m.inquiries {
		if inq.Id == id {
			return inq, nil
		}
	}
	return entity.Inquiry{}, errors.New("inquiry not found")
}

func (m *mockInquiries) GetInquiriesByEmail(_ context.Context, email string) ([]entity.Inquiry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []entity.Inquiry
	for _, inq := range m.inquiries {
		if inq.Email == email {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (m *mockInquiries) GetInquiriesPaged(_ context.Context, _, _ int) ([]entity.Inquiry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.inquiries, nil
}

type mockRepo struct {
	inquiries *mockInquiries
	pingErr   error
}

func (m *mockRepo) Inquiries() dependency.Inquiries { return m.inquiries }
func (m *mockRepo) Ping(context.Context) error      { return m.pingErr }
func (m *mockRepo) Close()                          {}

type mockMailer struct {
	receiver    string
	inquirySent int
	contactSent []entity.ContactMessage
	sendErr     error
}

func (m *mockMailer) ReceiverEmail() (string, error) {
	if m.receiver == "" {
		return "", mail.ErrNotConfigured
	}
	return m.receiver, nil
}

func (m *mockMailer) SendNewInquiry(context.Context, *entity.Inquiry) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.inquirySent++
	return nil
}

func (m *mockMailer) SendContactMessage(_ context.Context, msg *entity.ContactMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.contactSent = append(m.contactSent, *msg)
	return nil
}

type mockAssistant struct {
	reply      string
	gotMessage string
	gotHistory []entity.ChatMessage
}

func (m *mockAssistant) Chat(_ context.Context, message string, history []entity.ChatMessage) string {
	m.gotMessage = message
	m.gotHistory = history
	return m.reply
}

type fixture struct {
	server    *Server
	repo      *mockRepo
	mailer    *mockMailer
	assistant *mockAssistant
	handler   http.Handler
}

func newFixture(c *Config) *fixture {
	repo := &mockRepo{inquiries: &mockInquiries{}}
	mailer := &mockMailer{receiver: "info@swayogurja.com"}
	assistant := &mockAssistant{reply: "hello from suryamitra"}
	s := New(c, repo, mailer, assistant)
	return &fixture{
		server:    s,
		repo:      repo,
		mailer:    mailer,
		assistant: assistant,
		handler:   s.router(),
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validInquiryBody() map[string]any {
	return map[string]any{
		"name":        "Asha Patil",
		"email":       "asha@example.com",
		"phone":       "9272099152",
		"projectType": "Residential",
		"message":     "Need a 3kW rooftop quote.",
	}
}

func validContactBody() map[string]any {
	return map[string]any{
		"firstName": "Ravi",
		"lastName":  "Kulkarni",
		"email":     "ravi@example.com",
		"subject":   "Maintenance visit",
		"message":   "Panels need cleaning.",
	}
}

func TestSubmitInquiry(t *testing.T) {
	f := newFixture(&Config{})

	rec := f.do(t, http.MethodPost, "/api/inquiries", validInquiryBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decode[entity.Inquiry](t, rec)
	assert.Equal(t, 1, got.Id)
	assert.Equal(t, "Asha Patil", got.Name)
	assert.Equal(t, entity.ProjectTypeResidential, got.ProjectType)
	assert.Equal(t, 1, f.mailer.inquirySent)
	require.Len(t, f.repo.inquiries.added, 1)
}

func TestSubmitInquiryValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		field   string
		message string
	}{
		{
			name:    "missing name reported first",
			mutate:  func(b map[string]any) { delete(b, "name"); delete(b, "email") },
			field:   "name",
			message: "Name is required",
		},
		{
			name:    "bad email",
			mutate:  func(b map[string]any) { b["email"] = "not-an-email" },
			field:   "email",
			message: "Invalid email address",
		},
		{
			name:    "short phone",
			mutate:  func(b map[string]any) { b["phone"] = "12345" },
			field:   "phone",
			message: "Phone number must be at least 10 digits",
		},
		{
			name:    "unknown project type",
			mutate:  func(b map[string]any) { b["projectType"] = "Agricultural" },
			field:   "projectType",
			message: "Project type must be one of Residential, Commercial or Industrial",
		},
		{
			name:    "terms explicitly false",
			mutate:  func(b map[string]any) { b["termsAccepted"] = false },
			field:   "termsAccepted",
			message: "You must accept the terms and conditions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&Config{})
			body := validInquiryBody()
			tt.mutate(body)

			rec := f.do(t, http.MethodPost, "/api/inquiries", body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			got := decode[map[string]string](t, rec)
			assert.Equal(t, tt.message, got["message"])
			assert.Equal(t, tt.field, got["field"])
			assert.Empty(t, f.repo.inquiries.added)
		})
	}
}

func TestSubmitInquiryStorageFailure(t *testing.T) {
	f := newFixture(&Config{})
	f.repo.inquiries.addErr = errors.New("connection reset by peer")

	rec := f.do(t, http.MethodPost, "/api/inquiries", validInquiryBody(), nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	got := decode[map[string]string](t, rec)
	assert.Equal(t, "Failed to submit inquiry. Please try again.", got["message"])
	// Internal detail never leaks.
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Zero(t, f.mailer.inquirySent)
}

func TestSubmitInquiryDegradesWithoutReceiver(t *testing.T) {
	f := newFixture(&Config{})
	f.mailer.receiver = ""

	rec := f.do(t, http.MethodPost, "/api/inquiries", validInquiryBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, f.mailer.inquirySent)
	assert.Len(t, f.repo.inquiries.added, 1)
}

func TestSubmitInquiryDegradesOnSendFailure(t *testing.T) {
	f := newFixture(&Config{})
	f.mailer.sendErr = errors.New("535 username and password not accepted")

	rec := f.do(t, http.MethodPost, "/api/inquiries", validInquiryBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decode[entity.Inquiry](t, rec)
	assert.Equal(t, 1, got.Id)
}

func TestSubmitInquiryMalformedBody(t *testing.T) {
	f := newFixture(&Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	f := newFixture(&Config{})

	rec := f.do(t, http.MethodPost, "/api/contact", validContactBody(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Message sent successfully", got["message"])
	require.Len(t, f.mailer.contactSent, 1)
	assert.Equal(t, "ravi@example.com", f.mailer.contactSent[0].Email)
}

func TestSubmitContactValidation(t *testing.T) {
	f := newFixture(&Config{})
	body := validContactBody()
	delete(body, "firstName")

	rec := f.do(t, http.MethodPost, "/api/contact", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "First name is required", got["message"])
}

func TestSubmitContactWithoutReceiver(t *testing.T) {
	f := newFixture(&Config{})
	f.mailer.receiver = ""

	rec := f.do(t, http.MethodPost, "/api/contact", validContactBody(), nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Email service is not configured. Please contact the administrator.", got["message"])
}

func TestSubmitContactSendFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		message string
	}{
		{
			name:    "authentication",
			sendErr: errors.New("535 5.7.8 authentication failed"),
			message: "Email authentication failed. Please contact the administrator.",
		},
		{
			name:    "connection",
			sendErr: errors.New("dial tcp: connection refused"),
			message: "Connection to email server failed. Please try again later.",
		},
		{
			name:    "generic",
			sendErr: errors.New("452 insufficient system storage"),
			message: "Failed to send email. Please try again later or contact us directly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&Config{})
			f.mailer.sendErr = tt.sendErr

			rec := f.do(t, http.MethodPost, "/api/contact", validContactBody(), nil)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			got := decode[map[string]any](t, rec)
			assert.Equal(t, false, got["success"])
			assert.Equal(t, tt.message, got["message"])
		})
	}
}

func TestChat(t *testing.T) {
	f := newFixture(&Config{})

	rec := f.do(t, http.MethodPost, "/api/chatbot", map[string]any{
		"message": "my bill is 2500",
		"history": []map[string]string{{"sender": "user", "text": "hi"}},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "hello from suryamitra", got["reply"])
	assert.Equal(t, "my bill is 2500", f.assistant.gotMessage)
	require.Len(t, f.assistant.gotHistory, 1)
	assert.Equal(t, "hi", f.assistant.gotHistory[0].Text)
}

func TestChatRejectsInvalidMessage(t *testing.T) {
	bodies := []map[string]any{
		{},
		{"message": 42},
		{"message": ""},
		{"message": nil},
	}

	for _, body := range bodies {
		f := newFixture(&Config{})
		rec := f.do(t, http.MethodPost, "/api/chatbot", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		got := decode[map[string]any](t, rec)
		assert.Equal(t, false, got["success"])
		assert.Equal(t, "Please send a valid message.", got["reply"])
		assert.Empty(t, f.assistant.gotMessage)
	}
}

type panicAssistant struct{}

func (panicAssistant) Chat(context.Context, string, []entity.ChatMessage) string {
	panic("provider client not initialized")
}

func TestChatInternalErrorKeepsEnvelope(t *testing.T) {
	s := New(&Config{}, &mockRepo{inquiries: &mockInquiries{}}, &mockMailer{receiver: "info@swayogurja.com"}, panicAssistant{})
	handler := s.router()

	body, err := json.Marshal(map[string]any{"message": "hi"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Something went wrong. Please try again.", got["reply"])
}

func TestOptionsPreflight(t *testing.T) {
	f := newFixture(&Config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/inquiries", nil)
	req.Header.Set("Origin", "https://swayogurja.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	f := newFixture(&Config{})

	rec := f.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", got["status"])

	f.repo.pingErr = errors.New("down")
	rec = f.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminInquiriesRequiresToken(t *testing.T) {
	f := newFixture(&Config{JWTSecret: "test-secret"})
	f.repo.inquiries.inquiries = []entity.Inquiry{
		{Id: 1, InquiryInsert: entity.InquiryInsert{Name: "Asha", Email: "asha@example.com"}},
	}

	rec := f.do(t, http.MethodGet, "/api/admin/inquiries", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, token, err := auth.Encode(map[string]any{"sub": "admin"})
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	rec = f.do(t, http.MethodGet, "/api/admin/inquiries", nil, header)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[inquiryListResponse](t, rec)
	require.Len(t, got.Inquiries, 1)
	assert.Equal(t, "Asha", got.Inquiries[0].Name)
}

func TestAdminRoutesAbsentWithoutSecret(t *testing.T) {
	f := newFixture(&Config{})

	rec := f.do(t, http.MethodGet, "/api/admin/inquiries", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
