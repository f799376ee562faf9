package validator

import (
	"encoding/json"
	"fmt"
	"hostly/shared/base64"
	"hostly/shared/failure"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMB = 1024 * 1024

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"mimetypes":   isAllowedMimetype,
		"maxfilesize": isWithinFileSize,
		"timezone":    isTimezone,
	}

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// isAllowedMimetype checks the media type of a base64 data URI against a space separated list.
func isAllowedMimetype(field val.FieldLevel) bool {
	contentType := base64.GetContentType(field.Field().String())

	return contentType != "" && slices.Contains(strings.Fields(field.Param()), contentType)
}

// isWithinFileSize bounds the decoded size of a base64 payload, in megabytes.
func isWithinFileSize(field val.FieldLevel) bool {
	limitMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	payload := field.Field().String()
	if _, data, found := strings.Cut(payload, ","); found {
		payload = data
	}

	return float64(len(payload)*3/4) <= limitMB*bytesPerMB
}

func isTimezone(field val.FieldLevel) bool {
	name := field.Field().String()
	if name == "" {
		return true
	}

	_, err := time.LoadLocation(name)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Validate decodes a JSON body from r into data and validates it. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
	}

	return ValidateStruct(data)
}

// ValidateStruct runs the struct tags of data and returns a bad request on failure.
func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}
