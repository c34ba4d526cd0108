package careers

import (
	"fmt"
	"mime/multipart"

	"github.com/meeraai/site-backend/internal/mailer"
	"github.com/meeraai/site-backend/pkg/logger"
	"github.com/meeraai/site-backend/pkg/metrics"
)

// Pipeline processes one job application: validate the upload, persist it
// to the transient store, notify the operator, confirm to the applicant,
// and remove the file. The two sends are sequential with no compensation;
// if the operator send succeeds and the applicant send fails, the partial
// state stands. The file is removed on every exit path.
type Pipeline struct {
	store        *Store
	mail         mailer.Mailer
	contactEmail string
}

func NewPipeline(store *Store, mail mailer.Mailer, contactEmail string) *Pipeline {
	return &Pipeline{store: store, mail: mail, contactEmail: contactEmail}
}

func (p *Pipeline) Process(app JobApplication, resume *multipart.FileHeader) error {
	if err := p.store.Validate(resume); err != nil {
		metrics.ApplicationFailures.WithLabelValues("validation").Inc()
		return err
	}

	path, err := p.store.Save(resume)
	if err != nil {
		metrics.ApplicationFailures.WithLabelValues("internal").Inc()
		return err
	}
	defer func() {
		// best-effort cleanup: a delete failure is logged, not escalated
		if err := p.store.Remove(path); err != nil {
			logger.Errorf("failed to delete uploaded resume %s: %v", path, err)
		}
	}()

	if err := p.mail.Send(operatorMessage(app, p.contactEmail, path)); err != nil {
		metrics.MailSendFailures.Inc()
		metrics.ApplicationFailures.WithLabelValues("mail").Inc()
		return fmt.Errorf("notify operator: %w", err)
	}

	if err := p.mail.Send(applicantMessage(app)); err != nil {
		metrics.MailSendFailures.Inc()
		metrics.ApplicationFailures.WithLabelValues("mail").Inc()
		return fmt.Errorf("notify applicant: %w", err)
	}

	metrics.ApplicationsReceived.Inc()
	return nil
}
