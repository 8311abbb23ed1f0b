package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError_Detail(t *testing.T) {
	err := newAPIError(401, []byte(`{"detail":"Authentication credentials were not provided."}`))
	assert.Equal(t, "Authentication credentials were not provided.", err.Detail)
	assert.True(t, err.IsUnauthorized())
	assert.Empty(t, err.Fields)
}

func TestNewAPIError_FieldErrors(t *testing.T) {
	body := []byte(`{"email":["Пользователь с таким email уже существует."],"username":["required","too short"]}`)
	err := newAPIError(400, body)

	assert.True(t, err.IsInvalid())
	require.Len(t, err.Fields, 2)
	assert.Len(t, err.FieldErrors("username"), 2)
	assert.Contains(t, err.FieldErrors("email")[0], "email")
	assert.Empty(t, err.Detail)

	// Message enumerates fields deterministically.
	assert.Contains(t, err.Error(), "email:")
	assert.Contains(t, err.Error(), "username:")
}

func TestNewAPIError_MessageAndErrorKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error":"Регистрация с таким ID не найдена."}`, "не найдена"},
		{"message key", `{"message":"Студент уже отмечен."}`, "уже отмечен"},
		{"non_field_errors", `{"non_field_errors":["все места заняты"]}`, "места"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(400, []byte(tt.body))
			assert.Contains(t, err.Detail, tt.want)
		})
	}
}

func TestNewAPIError_UnparseableBody(t *testing.T) {
	err := newAPIError(502, []byte("<html>Bad Gateway</html>"))
	assert.Equal(t, 502, err.StatusCode)
	assert.Contains(t, err.Error(), "Bad Gateway")
}

func TestNewAPIError_EmptyBody(t *testing.T) {
	err := newAPIError(404, nil)
	assert.True(t, err.IsNotFound())
	assert.Contains(t, err.Error(), "404")
}

func TestNewAPIError_SingleStringField(t *testing.T) {
	err := newAPIError(400, []byte(`{"title":"This field is required."}`))
	assert.Equal(t, []string{"This field is required."}, err.FieldErrors("title"))
}

func TestIsTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	te := &TransportError{cause: cause}

	assert.True(t, IsTransportError(te))
	assert.True(t, errors.Is(te, cause))
	assert.False(t, IsTransportError(errors.New("other")))
	assert.Contains(t, te.Error(), "connection refused")
}
