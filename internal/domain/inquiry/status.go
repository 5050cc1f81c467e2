package inquiry

import (
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/models"
)

type Status string

const (
	StatusNew        Status = models.InquiryNew
	StatusInProgress Status = models.InquiryInProgress
	StatusResolved   Status = models.InquiryResolved
	StatusArchived   Status = models.InquiryArchived
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusArchived:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusNew
}

// CanRespond rejects responses to archived inquiries.
func CanRespond(current Status) error {
	if current == StatusArchived {
		return httperr.ErrBusiness("inquiry_archived")
	}
	return nil
}
