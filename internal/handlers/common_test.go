package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLooseString(t *testing.T) {
	tests := []struct {
		in      string
		want    looseString
		wantErr bool
	}{
		{in: `"4"`, want: "4"},
		{in: `4`, want: "4"},
		{in: `null`, want: ""},
		{in: `""`, want: ""},
		{in: `"hard"`, want: "hard"},
		{in: `2.5`, want: "2.5"},
		{in: `true`, wantErr: true},
		{in: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got struct {
				V looseString `json:"v"`
			}
			err := json.Unmarshal([]byte(`{"v":`+tt.in+`}`), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.V)
		})
	}
}

func TestLooseString_UintValue(t *testing.T) {
	id, err := looseString("").uintValue()
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = looseString("6").uintValue()
	require.NoError(t, err)
	assert.Equal(t, uint(6), id)

	_, err = looseString("-1").uintValue()
	assert.Error(t, err)
}

func TestAbortWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback int
		want     int
	}{
		{name: "invalid input", err: services.ErrMissingFields, fallback: http.StatusUnprocessableEntity, want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("lookup: %w", services.ErrQuestionNotFound), fallback: http.StatusUnprocessableEntity, want: http.StatusNotFound},
		{name: "unclassified", err: fmt.Errorf("sql: database is closed"), fallback: http.StatusUnprocessableEntity, want: http.StatusUnprocessableEntity},
		{name: "unclassified read", err: fmt.Errorf("sql: database is closed"), fallback: http.StatusInternalServerError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			abortWithError(c, tt.err, tt.fallback)

			assert.Equal(t, tt.want, w.Code)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.want, body.Error)
			assert.Equal(t, http.StatusText(tt.want), body.Message)
		})
	}
}

func TestPageParam(t *testing.T) {
	for query, want := range map[string]int{
		"":          1,
		"?page=3":   3,
		"?page=0":   0,
		"?page=-2":  -2,
		"?page=abc": 1,
		"?page=2.5": 1,
		"?other=1":  1,

		"?page=99999999999999999999":  math.MaxInt,
		"?page=-99999999999999999999": math.MinInt,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/questions"+query, nil)
		assert.Equal(t, want, pageParam(c), query)
	}
}
