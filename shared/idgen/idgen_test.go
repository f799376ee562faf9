package idgen_test

import (
	"hostly/shared/idgen"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	at := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	millis := strconv.FormatInt(at.UnixMilli(), 10)

	id := idgen.RecordID(at)

	assert.True(t, strings.HasPrefix(id, millis))
	assert.Len(t, id, len(millis)+4)
	assert.Regexp(t, regexp.MustCompile(`^\d+$`), id)
}

func TestInvoiceID(t *testing.T) {
	id := idgen.InvoiceID(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^202503\d{6}$`), id)
}

func TestAlias(t *testing.T) {
	alias := idgen.Alias()

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), alias)
	assert.NotEqual(t, alias, idgen.Alias())
}
