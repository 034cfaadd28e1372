package validator

import (
	"strings"
	"testing"

	"legacy-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note request",
			req:       models.CreateNoteRequest{Title: "Shopping", Value: "milk"},
			wantError: false,
		},
		{
			name:      "Valid file-backed note",
			req:       models.CreateNoteRequest{Title: "Todo", Path: "/storage/emulated/0/todo.txt"},
			wantError: false,
		},
		{
			name:      "Missing title",
			req:       models.CreateNoteRequest{Title: "", Value: "milk"},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "Blank title",
			req:       models.CreateNoteRequest{Title: "   "},
			wantError: true,
			errorMsg:  "title must not be blank",
		},
		{
			name:      "Title with control characters",
			req:       models.CreateNoteRequest{Title: "line\nbreak"},
			wantError: true,
			errorMsg:  "control characters",
		},
		{
			name:      "Title too long",
			req:       models.CreateNoteRequest{Title: strings.Repeat("a", 256)},
			wantError: true,
			errorMsg:  "at most 255 characters",
		},
		{
			name:      "Relative path",
			req:       models.CreateNoteRequest{Title: "Todo", Path: "notes/todo.txt"},
			wantError: true,
			errorMsg:  "path must be an absolute file path",
		},
		{
			name:      "Empty value is valid",
			req:       models.CreateNoteRequest{Title: "Empty"},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.UpdateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "File-backed note",
			req:       models.UpdateNoteRequest{Title: "Shopping", Value: "milk", Path: "/sdcard/shopping.txt"},
			wantError: false,
		},
		{
			name:      "Blank title",
			req:       models.UpdateNoteRequest{Title: "   "},
			wantError: true,
			errorMsg:  "title must not be blank or contain control characters",
		},
		{
			name:      "Relative path",
			req:       models.UpdateNoteRequest{Title: "Shopping", Path: "notes/shopping.txt"},
			wantError: true,
			errorMsg:  "path must be an absolute file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreateWidget(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&models.CreateWidgetRequest{WidgetID: 3, NoteID: 1}))

	err := v.Validate(&models.CreateWidgetRequest{WidgetID: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note_id is required")

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "note_id", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "title is required", Tag: "required"},
		{Field: "path", Message: "path must be an absolute file path", Tag: "notepath"},
	}

	errMsg := errs.Error()
	assert.Contains(t, errMsg, "title is required")
	assert.Contains(t, errMsg, "path must be an absolute file path")
}
