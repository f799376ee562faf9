package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrInvalidDataURI = errors.New("invalid base64 data uri")

// GetContentType returns the media type of a data URI such as "data:image/png;base64,...".
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the payload bytes and media type of a data URI.
func Decode(file string) ([]byte, string, error) {
	contentType := GetContentType(file)
	if contentType == "" || !strings.HasPrefix(file, dataPrefix) {
		return nil, "", ErrInvalidDataURI
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, contentType, nil
}
