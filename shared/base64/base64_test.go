package base64_test

import (
	"hostly/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{name: "jpeg", input: "data:image/jpeg;base64,/9j/4AAQ", expected: "image/jpeg"},
		{name: "empty string", input: "", expected: ""},
		{name: "no base64 marker", input: "data:image/png,iVBORw0KGgo=", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantData    string
		wantType    string
		wantErr     bool
		wantInvalid bool
	}{
		{
			name:     "valid text payload",
			input:    "data:text/plain;base64,SGVsbG8gV29ybGQ=",
			wantData: "Hello World",
			wantType: "text/plain",
		},
		{
			name:        "missing data prefix",
			input:       "image/png;base64,SGVsbG8=",
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:    "broken payload",
			input:   "data:image/png;base64,%%%",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, contentType, err := base64.Decode(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantInvalid {
					assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantData, string(data))
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}
