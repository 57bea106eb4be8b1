package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

func TestUnwrap_Envelope(t *testing.T) {
	t.Parallel()

	p, err := Unwrap(200, []byte(`{"success":true,"message":"ok","data":[{"id":1},{"id":2}]}`))
	require.NoError(t, err)

	assert.True(t, p.Enveloped)
	assert.Equal(t, "ok", p.Message)
	assert.True(t, p.Data.IsArray())
	assert.Len(t, p.Data.Array(), 2)
}

func TestUnwrap_RawPayload(t *testing.T) {
	t.Parallel()

	p, err := Unwrap(200, []byte(`[{"id":7,"content":"hi"}]`))
	require.NoError(t, err)

	assert.False(t, p.Enveloped)
	msgs, err := decodeList[domain.Message](p)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, int64(7), msgs[0].ID)
}

func TestUnwrap_RawObjectWithSuccessButNoData(t *testing.T) {
	t.Parallel()

	p, err := Unwrap(200, []byte(`{"success":true,"message":"Reset link sent"}`))
	require.NoError(t, err)

	assert.True(t, p.Enveloped)
	assert.Equal(t, "Reset link sent", p.Message)
	assert.True(t, p.Data.IsObject(), "payload falls back to the whole body")
}

func TestUnwrap_RawObjectWithNonBoolSuccess(t *testing.T) {
	t.Parallel()

	p, err := Unwrap(200, []byte(`{"success":"yes","jwt":"abc"}`))
	require.NoError(t, err)

	assert.False(t, p.Enveloped)
	res, err := decode[domain.AuthResult](p)
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Token)
}

func TestUnwrap_DomainError(t *testing.T) {
	t.Parallel()

	_, err := Unwrap(200, []byte(`{"success":false,"message":"Email not verified"}`))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindDomain, apiErr.Kind)
	assert.Equal(t, "Email not verified", apiErr.Message)
}

func TestUnwrap_ServerErrorMessagePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		kind    domain.APIErrorKind
		message string
	}{
		{"message field", 400, `{"message":"Title is required","error":"Bad Request"}`, domain.KindServer, "Title is required"},
		{"error field", 404, `{"error":"Not Found"}`, domain.KindServer, "Not Found"},
		{"no body", 500, ``, domain.KindServer, ""},
		{"html body", 502, `<html>bad gateway</html>`, domain.KindServer, ""},
		{"unauthorized", 401, `{"message":"Invalid token"}`, domain.KindAuth, "Invalid token"},
		{"forbidden", 403, `{}`, domain.KindAuth, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Unwrap(tt.status, []byte(tt.body))

			var apiErr *domain.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestUnwrap_EmptyAndPlainText(t *testing.T) {
	t.Parallel()

	p, err := Unwrap(204, nil)
	require.NoError(t, err)
	assert.True(t, p.Empty())

	p, err = Unwrap(200, []byte("Project deleted successfully\n"))
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.Equal(t, "Project deleted successfully", p.Message)
}

func TestDecodeList_NonArrayIsEmpty(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"messages":[]}`, `null`, `"nope"`, ``} {
		p, err := Unwrap(200, []byte(body))
		require.NoError(t, err)

		got, err := decodeList[domain.Message](p)
		require.NoError(t, err)
		assert.NotNil(t, got, "body %q", body)
		assert.Empty(t, got, "body %q", body)
	}
}
