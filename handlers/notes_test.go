package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"legacy-notes/app"
	"legacy-notes/database"
	"legacy-notes/handlers"
	"legacy-notes/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary test database and returns app with all dependencies
func setupTestDB(t *testing.T) (*app.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "legacy-notes-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	db, err := database.New(filepath.Join(tmpDir, "notes_old.db"))
	require.NoError(t, err, "Failed to initialize test database")

	err = db.Migrate("General note")
	require.NoError(t, err, "Failed to run migrations")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := database.NewStore(db, logger)
	application := app.New(store, logger)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return application, cleanup
}

// setupTestApp creates a test Fiber app with every API route registered
func setupTestApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	api := fiberApp.Group("/api")
	api.Get("/notes", handlers.ListNotes(a))
	api.Post("/notes", handlers.CreateNote(a))
	api.Get("/notes/title-exists", handlers.NoteTitleExists(a))
	api.Get("/notes/by-path", handlers.GetNoteIDByPath(a))
	api.Get("/notes/:id", handlers.GetNote(a))
	api.Put("/notes/:id", handlers.UpdateNote(a))
	api.Delete("/notes/:id", handlers.DeleteNote(a))
	api.Get("/notes/:id/widgets", handlers.GetNoteWidgets(a))
	api.Get("/widgets", handlers.ListWidgets(a))
	api.Post("/widgets", handlers.CreateWidget(a))

	return fiberApp
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&decoded)
	require.NoError(t, err)

	return resp.StatusCode, decoded
}

func TestListNotes_SeededNote(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes", nil)
	assert.Equal(t, http.StatusOK, status)

	notes := body["notes"].([]interface{})
	require.Len(t, notes, 1)
	note := notes[0].(map[string]interface{})
	assert.Equal(t, float64(1), note["id"])
	assert.Equal(t, "General note", note["title"])
	assert.Equal(t, "", note["value"])
}

func TestCreateNote(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "Creates note",
			body:           models.CreateNoteRequest{Title: "shopping", Value: "milk"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				note := body["note"].(map[string]interface{})
				assert.Equal(t, float64(2), note["id"])
				assert.Equal(t, "shopping", note["title"])
				result := body["result"].(map[string]interface{})
				assert.Equal(t, "inserted", result["status"])
			},
		},
		{
			name:           "Duplicate title in other case",
			body:           models.CreateNoteRequest{Title: "Shopping"},
			expectedStatus: http.StatusConflict,
			expectedError:  "A note with this title already exists",
		},
		{
			name:           "Missing title",
			body:           models.CreateNoteRequest{Value: "orphan"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title is required",
		},
		{
			name:           "Relative path",
			body:           models.CreateNoteRequest{Title: "file", Path: "todo.txt"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "path must be an absolute file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}

	t.Run("Table unchanged after duplicate", func(t *testing.T) {
		notes, err := application.Store.ListNotes()
		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})
}

func TestGetNote(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "General note", body["note"].(map[string]interface{})["title"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/notes/99", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", body["error"])

	status, _ = doRequest(t, fiberApp, http.MethodGet, "/api/notes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateNote_RoundTrip(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	note := &models.Note{Title: "draft", Value: "v1"}
	_, err := application.Store.InsertNote(note)
	require.NoError(t, err)

	// a type in the body is ignored; updates always store a plain note
	status, _ := doRequest(t, fiberApp, http.MethodPut, "/api/notes/2", map[string]interface{}{
		"title": "draft",
		"value": "v2",
		"path":  "/sdcard/draft.txt",
		"type":  models.NoteTypeChecklist,
	})
	require.Equal(t, http.StatusOK, status)

	got, err := application.Store.GetNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Value)
	assert.Equal(t, "/sdcard/draft.txt", got.Path)
	assert.Equal(t, models.NoteTypePlain, got.Type)

	t.Run("Unknown note", func(t *testing.T) {
		status, _ := doRequest(t, fiberApp, http.MethodPut, "/api/notes/50", models.UpdateNoteRequest{Title: "x"})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Title collision", func(t *testing.T) {
		status, _ := doRequest(t, fiberApp, http.MethodPut, "/api/notes/2", models.UpdateNoteRequest{Title: "general NOTE"})
		assert.Equal(t, http.StatusConflict, status)
	})
}

func TestDeleteNote_RemovesWidgets(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	other := &models.Note{Title: "other"}
	_, err := application.Store.InsertNote(other)
	require.NoError(t, err)

	status, _ := doRequest(t, fiberApp, http.MethodPost, "/api/widgets", models.CreateWidgetRequest{WidgetID: 5, NoteID: 1})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/widgets", models.CreateWidgetRequest{WidgetID: 6, NoteID: other.ID})
	require.Equal(t, http.StatusCreated, status)

	status, body := doRequest(t, fiberApp, http.MethodDelete, "/api/notes/1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Note deleted successfully", body["message"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/widgets", nil)
	require.Equal(t, http.StatusOK, status)
	widgets := body["widgets"].([]interface{})
	require.Len(t, widgets, 1)
	assert.Equal(t, float64(6), widgets[0].(map[string]interface{})["widget_id"])

	status, _ = doRequest(t, fiberApp, http.MethodDelete, "/api/notes/1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNoteTitleExists(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	_, err := application.Store.InsertNote(&models.Note{Title: "shopping"})
	require.NoError(t, err)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/title-exists?title=Shopping", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["exists"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/notes/title-exists?title=groceries", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["exists"])

	status, _ = doRequest(t, fiberApp, http.MethodGet, "/api/notes/title-exists", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetNoteIDByPath(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	note := &models.Note{Title: "todo", Path: "/sdcard/notes/todo.txt"}
	_, err := application.Store.InsertNote(note)
	require.NoError(t, err)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/by-path?path="+url.QueryEscape(note.Path), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(note.ID), body["id"])

	status, _ = doRequest(t, fiberApp, http.MethodGet, "/api/notes/by-path?path="+url.QueryEscape("/sdcard/none.txt"), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
