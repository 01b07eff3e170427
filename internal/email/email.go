package email

import (
	"context"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"gopkg.in/gomail.v2"
)

type EmailPurpose string
type EmailBodyType string

const (
	KeyEmailSender         = "SENDER_EMAIL"
	KeyEmailSenderPassword = "SENDER_EMAIL_PASSWORD"
	KeyEmailSMTPServer     = "smtp.gmail.com"
	KeyEmailSMTPPort       = 587

	KeyEmailBodyPlain EmailBodyType = "text/plain"

	PurposeImportSummary EmailPurpose = "import_summary"

	defaultEmailChannelCapacity = 100
)

type EmailRequest struct {
	To       []string
	Subject  string
	Body     string
	BodyType EmailBodyType
	Purpose  EmailPurpose
}

type emailJob struct {
	EmailRequest
	from string
}

var emailChan = make(chan emailJob, defaultEmailChannelCapacity)

// StartEmailWorkers launches the background senders. Notifications are
// best-effort, a failed send is only logged.
func StartEmailWorkers(count int) {
	for i := 0; i < count; i++ {
		go worker(i)
	}
	log.Infof("started %d email worker(s)", count)
}

func worker(id int) {
	logger := log.WithField("email_worker", id)
	for job := range emailChan {
		message := gomail.NewMessage()
		message.SetHeader("From", job.from)
		message.SetHeader("To", job.To...)
		message.SetHeader("Subject", job.Subject)
		message.SetBody(string(job.BodyType), job.Body)

		dialer := gomail.NewDialer(
			KeyEmailSMTPServer,
			KeyEmailSMTPPort,
			job.from,
			os.Getenv(KeyEmailSenderPassword),
		)
		if err := dialer.DialAndSend(message); err != nil {
			logger.Errorf("cannot send %v mail to %v: %v", job.Purpose, job.To, err)
			continue
		}
		logger.Infof("sent %v mail to %v", job.Purpose, job.To)
	}
}

// NewMail queues one mail for the workers. It never blocks past the
// caller's context.
func NewMail(
	ctx context.Context,
	subject string,
	body string,
	bodyType EmailBodyType,
	purpose EmailPurpose,
	to ...string,
) error {
	fromMail := os.Getenv(KeyEmailSender)
	if fromMail == "" {
		log.Error("sender email is not configured")
		return raffle_errors.ErrEmailServiceStopped
	}
	job := emailJob{
		from: fromMail,
		EmailRequest: EmailRequest{
			To:       to,
			Subject:  subject,
			Body:     body,
			BodyType: bodyType,
			Purpose:  purpose,
		},
	}
	// when all the workers are dead, it shouldn't block indefinetely
	select {
	case <-ctx.Done():
		log.Errorf("email job cancelled: %v", ctx.Err())
		return errors.Join(raffle_errors.ErrEmailServiceStopped, ctx.Err())
	case emailChan <- job:
		return nil
	}
}
