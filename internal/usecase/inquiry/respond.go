package inquiry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	domain "github.com/BruksfildServices01/construction-site/internal/domain/inquiry"
	"github.com/BruksfildServices01/construction-site/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RespondInput struct {
	AdminID   uint
	InquiryID uint
	Subject   string
	Message   string
}

// ======================================================
// USE CASE
// ======================================================

// Respond records a manual reply to a contact inquiry. No mail is sent: the
// reply is logged and appended to the inquiry notes.
type Respond struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewRespond(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Respond {
	return &Respond{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Respond) Execute(
	ctx context.Context,
	in RespondInput,
) (*models.ContactInquiry, error) {

	inq, err := uc.repo.Get(ctx, in.InquiryID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	changes, err := domain.Respond(inq, in.Message, now)
	if err != nil {
		return nil, err
	}

	uc.log.Info("inquiry response recorded",
		zap.Uint("inquiry_id", inq.ID),
		zap.String("to", inq.Email),
		zap.String("subject", in.Subject),
		zap.Uint("admin_id", in.AdminID),
	)

	updated, err := uc.repo.Update(ctx, inq.ID, changes)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &in.AdminID,
		Action:   "inquiry_responded",
		Entity:   "contact_inquiry",
		EntityID: &updated.ID,
		Metadata: map[string]any{"subject": in.Subject},
	})

	return updated, nil
}
