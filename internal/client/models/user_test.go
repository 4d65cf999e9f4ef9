package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalJSON_IDForms(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
	}{
		{name: "string id", input: `{"id":"abc-1","name":"Ana","email":"a@b.co"}`, wantID: "abc-1"},
		{name: "numeric id", input: `{"id":1755012345678,"name":"Ana","email":"a@b.co"}`, wantID: "1755012345678"},
		{name: "missing id", input: `{"name":"Ana","email":"a@b.co"}`, wantID: ""},
		{name: "null id", input: `{"id":null,"name":"Ana","email":"a@b.co"}`, wantID: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var u User
			require.NoError(t, json.Unmarshal([]byte(tc.input), &u))
			assert.Equal(t, tc.wantID, u.ID)
			assert.Equal(t, "Ana", u.Name)
		})
	}
}

func TestUser_HasPhone(t *testing.T) {
	assert.True(t, User{Phone: "555-0101"}.HasPhone())
	assert.False(t, User{}.HasPhone())
	assert.False(t, User{Phone: "   "}.HasPhone())
}

func TestFields_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		wantErr string
	}{
		{name: "valid", fields: Fields{Name: "Ana", Email: "ana@example.com"}},
		{name: "valid with phone", fields: Fields{Name: "Ana", Email: "ana@example.com", Phone: "555"}},
		{name: "missing name", fields: Fields{Email: "ana@example.com"}, wantErr: "name is required"},
		{name: "blank name", fields: Fields{Name: "  ", Email: "ana@example.com"}, wantErr: "name is required"},
		{name: "missing email", fields: Fields{Name: "Ana"}, wantErr: "email is required"},
		{name: "malformed email", fields: Fields{Name: "Ana", Email: "not-an-email"}, wantErr: "email format is invalid"},
		{name: "email without tld", fields: Fields{Name: "Ana", Email: "ana@host"}, wantErr: "email format is invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fields.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
