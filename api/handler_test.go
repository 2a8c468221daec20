package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~mariusor/kairos/bot"
	"git.sr.ht/~mariusor/kairos/calendar"
)

func setup() (*gin.Engine, *calendar.Store) {
	store := calendar.NewStore()
	return New(bot.New(store), store, false), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	r, _ := setup()
	w := doJSON(t, r, http.MethodPost, "/chat", `{"text":"help"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"response"`)
	assert.Contains(t, w.Body.String(), "schedule")
}

func TestChatReachesTheCalendar(t *testing.T) {
	r, store := setup()
	w := doJSON(t, r, http.MethodPost, "/chat", `{"text":"schedule team meeting on 2025-11-15 at 3pm"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.Len())
}

func TestChatRejectsMissingText(t *testing.T) {
	r, _ := setup()

	w := doJSON(t, r, http.MethodPost, "/chat", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no text provided")

	w = doJSON(t, r, http.MethodPost, "/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRejectsBadJSON(t *testing.T) {
	r, _ := setup()
	w := doJSON(t, r, http.MethodPost, "/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no JSON data provided")
}

func TestHealth(t *testing.T) {
	r, _ := setup()
	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestHome(t *testing.T) {
	r, _ := setup()
	w := doJSON(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), Version)
	assert.Contains(t, w.Body.String(), "/chat")
}

func TestCalendarFeed(t *testing.T) {
	r, store := setup()
	_, _, err := store.Add("2025-11-15", "team meeting", "15:00", "1h")
	require.NoError(t, err)
	_, _, err = store.Add("2025-11-16", "quiet day hike", "", "")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/calendar.ics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")

	body := w.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	assert.Contains(t, body, "SUMMARY:team meeting")
	assert.Contains(t, body, "SUMMARY:quiet day hike")
}
