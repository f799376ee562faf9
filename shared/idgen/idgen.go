// Package idgen builds record identifiers that sort roughly by creation time without a central sequence.
package idgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	recordSuffixSpace  = 10_000
	invoiceSuffixSpace = 1_000_000
	aliasLength        = 8
)

// RecordID returns {epochMillis}{4 random digits}.
func RecordID(at time.Time) string {
	return fmt.Sprintf("%d%04d", at.UnixMilli(), rand.IntN(recordSuffixSpace)) //nolint:gosec
}

// InvoiceID returns {year}{month}{6 random digits} for the UTC month of at.
func InvoiceID(at time.Time) string {
	u := at.UTC()

	return fmt.Sprintf("%04d%02d%06d", u.Year(), int(u.Month()), rand.IntN(invoiceSuffixSpace)) //nolint:gosec
}

// Alias is the human facing ticket number.
func Alias() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:aliasLength])
}

// UUID returns a random v4 uuid string.
func UUID() string {
	return uuid.NewString()
}
