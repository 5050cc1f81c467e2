package inquiry

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/construction-site/internal/models"
)

// Changes is the set of mutations applied to a stored inquiry. Note is
// appended to admin_notes, never replacing earlier notes.
type Changes struct {
	Status      *Status
	RespondedAt *time.Time
	Note        string
}

func (c Changes) Empty() bool {
	return c.Status == nil && c.RespondedAt == nil && c.Note == ""
}

// FormatNote renders one admin note entry.
func FormatNote(now time.Time, text string) string {
	return fmt.Sprintf("[%s] %s", now.UTC().Format(time.RFC3339), strings.TrimSpace(text))
}

// NoteSeparator sits between consecutive admin note entries.
const NoteSeparator = "\n\n"

// Respond records a manual response. New inquiries move to in progress.
func Respond(inq *models.ContactInquiry, message string, now time.Time) (Changes, error) {
	if err := CanRespond(Status(inq.Status)); err != nil {
		return Changes{}, err
	}

	ch := Changes{
		RespondedAt: &now,
		Note:        FormatNote(now, "Response sent: "+strings.TrimSpace(message)),
	}
	if Status(inq.Status) == StatusNew {
		next := StatusInProgress
		ch.Status = &next
	}
	return ch, nil
}
