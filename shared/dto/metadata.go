package dto

import (
	"hostly/shared/constant"
	"hostly/shared/model"
	"hostly/shared/timezone"
)

// Metadata is the audit block of a response, rendered in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(audit model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(audit.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(audit.ModifiedAt, constant.DateFormat),
		CreatedBy:  audit.CreatedBy,
		ModifiedBy: audit.ModifiedBy,
	}
}
