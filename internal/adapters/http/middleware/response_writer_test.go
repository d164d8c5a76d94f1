package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		serve      func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
		committed  bool
	}{
		{
			name:       "untouched response defaults to 200",
			serve:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			serve:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) },
			wantStatus: http.StatusCreated,
			committed:  true,
		},
		{
			name: "later status is ignored",
			serve: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
			committed:  true,
		},
		{
			name: "body writes accumulate",
			serve: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"projects":`))
				_, _ = w.Write([]byte(`[]}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  15,
			committed:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			sr := record(rec)

			tt.serve(sr)

			assert.Equal(t, tt.wantStatus, sr.status)
			assert.Equal(t, tt.wantBytes, sr.bytes)
			assert.Equal(t, tt.committed, sr.committed)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestStatusRecorder_ReusesOuterRecorder(t *testing.T) {
	t.Parallel()
	outer := record(httptest.NewRecorder())

	inner := record(outer)
	inner.WriteHeader(http.StatusConflict)

	require.Same(t, outer, inner)
	assert.Equal(t, http.StatusConflict, outer.status)
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()

	rc := http.NewResponseController(record(rec))
	require.NoError(t, rc.Flush())
	assert.True(t, rec.Flushed)
}
