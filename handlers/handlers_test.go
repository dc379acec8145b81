package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panditseva/models"
)

type stubSearchService struct {
	result models.SearchResult
	calls  int
}

func (s *stubSearchService) Search(_ context.Context, _ string, _ string) (models.SearchResult, error) {
	s.calls++
	return s.result, nil
}

type stubTranscriber struct {
	transcript string
	err        error
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return s.transcript, s.err
}

type stubConfirmationService struct {
	result models.ConfirmResult
}

func (s *stubConfirmationService) Confirm(_ context.Context, _ string, _ int, _ string) models.ConfirmResult {
	return s.result
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/booking/search", SearchHandler)
	r.POST("/api/booking/voice-search", VoiceSearchHandler)
	r.POST("/api/booking/confirm", ConfirmHandler)
	r.GET("/api/catalog/pujas", ListPujasHandler)
	r.GET("/api/catalog/pujas/:name/samagri", SamagriHandler)
	r.GET("/api/catalog/pujas/:name/guide", GuideHandler)
	return r
}

func TestSearchHandlerHappyPath(t *testing.T) {
	SearchService = &stubSearchService{result: models.SearchResult{
		Status:    models.SearchStatusOK,
		SessionID: "sess-1",
	}}
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/search",
		strings.NewReader(`{"text": "ganesh puja kolkata"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.SearchStatusOK, body.Status)
	assert.Equal(t, "sess-1", body.SessionID)
}

func TestSearchHandlerRejectsEmptyText(t *testing.T) {
	SearchService = &stubSearchService{}
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/search", strings.NewReader(`{"text": ""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerRejectsBadWindow(t *testing.T) {
	SearchService = &stubSearchService{}
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/search",
		strings.NewReader(`{"text": "puja", "time_window": "midnight"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmHandlerPassesRejectionThrough(t *testing.T) {
	ConfirmationService = &stubConfirmationService{result: models.ConfirmResult{
		Confirmed: false,
		Message:   "Select a Pandit ID first.",
	}}
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm",
		strings.NewReader(`{"session_id": "sess-1", "pandit_id": 0, "payment_method": "upi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.ConfirmResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Confirmed)
	assert.Equal(t, "Select a Pandit ID first.", body.Message)
}

func TestConfirmHandlerConfirms(t *testing.T) {
	ConfirmationService = &stubConfirmationService{result: models.ConfirmResult{
		Confirmed: true,
		Message:   "Booking confirmed!",
		Booking:   &models.BookingConfirmation{PaymentMethod: models.PaymentUPI},
	}}
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm",
		strings.NewReader(`{"session_id": "sess-1", "pandit_id": 3, "payment_method": "upi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.ConfirmResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Confirmed)
	require.NotNil(t, body.Booking)
	assert.Equal(t, models.PaymentUPI, body.Booking.PaymentMethod)
}

// wavUpload builds a multipart body carrying a minimal PCM/16k/mono WAV file.
func wavUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var wav bytes.Buffer
	wav.WriteString("RIFF")
	binary.Write(&wav, binary.LittleEndian, uint32(36+16))
	wav.WriteString("WAVE")
	wav.WriteString("fmt ")
	binary.Write(&wav, binary.LittleEndian, uint32(16))
	binary.Write(&wav, binary.LittleEndian, uint16(1))     // PCM
	binary.Write(&wav, binary.LittleEndian, uint16(1))     // mono
	binary.Write(&wav, binary.LittleEndian, uint32(16000)) // sample rate
	binary.Write(&wav, binary.LittleEndian, uint32(32000))
	binary.Write(&wav, binary.LittleEndian, uint16(2))
	binary.Write(&wav, binary.LittleEndian, uint16(16))
	wav.WriteString("data")
	binary.Write(&wav, binary.LittleEndian, uint32(16))
	wav.Write(make([]byte, 16))

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("audio", "request.wav")
	require.NoError(t, err)
	_, err = part.Write(wav.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func postVoice(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := wavUpload(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/voice-search", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)
	return w
}

func TestVoiceSearchHandlerRunsSearch(t *testing.T) {
	search := &stubSearchService{result: models.SearchResult{Status: models.SearchStatusOK}}
	SearchService = search
	Transcriber = &stubTranscriber{transcript: "ganesh puja kolkata"}
	router := testRouter()

	w := postVoice(t, router)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"transcript":"ganesh puja kolkata"`)
	assert.Equal(t, 1, search.calls)
}

func TestVoiceSearchHandlerShortTranscript(t *testing.T) {
	search := &stubSearchService{result: models.SearchResult{Status: models.SearchStatusOK}}
	SearchService = search
	Transcriber = &stubTranscriber{transcript: "hi"}
	router := testRouter()

	w := postVoice(t, router)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "", body["transcript"])
	assert.Equal(t, "Could not understand the audio. Please try again.", body["message"])
	assert.Equal(t, 0, search.calls, "an unusable transcript must not trigger a search")
}

func TestVoiceSearchHandlerTranscriberFailure(t *testing.T) {
	search := &stubSearchService{}
	SearchService = search
	Transcriber = &stubTranscriber{err: errors.New("api unreachable")}
	router := testRouter()

	w := postVoice(t, router)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Could not understand the audio")
	assert.Equal(t, 0, search.calls)
}

func TestCatalogHandlers(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/pujas", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ganesh Puja")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/pujas/Ganesh%20Puja/samagri", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Durva grass")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/pujas/Nope/guide", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
