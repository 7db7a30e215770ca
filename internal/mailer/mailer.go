// Package mailer sends owner notifications for new submissions. Sending is
// fire-and-forget: failures are logged and never reach the request.
package mailer

import (
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	mail "gopkg.in/mail.v2"

	"github.com/PaulBabatuyi/portfolio/internal/data"
)

type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	NotifyEmail string
}

// Mailer delivers notifications in the background.
type Mailer struct {
	from       string
	to         string
	send       func(...*mail.Message) error
	maxElapsed time.Duration
	logger     lager.Logger
	wg         sync.WaitGroup
}

// New returns a Mailer. It is disabled (every notification is dropped)
// when no SMTP host or recipient is configured.
func New(conf Config, logger lager.Logger) *Mailer {
	logger = logger.Session("mailer")
	m := &Mailer{
		from:       conf.From,
		to:         conf.NotifyEmail,
		maxElapsed: time.Minute,
		logger:     logger,
	}
	if conf.Host == "" || conf.NotifyEmail == "" {
		logger.Info("disabled-no-smtp")
		return m
	}

	dialer := mail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password)
	dialer.Timeout = 10 * time.Second
	m.send = dialer.DialAndSend
	return m
}

// Enabled reports whether notifications are actually sent.
func (m *Mailer) Enabled() bool { return m.send != nil }

// NotifyNewMessage tells the owner about a contact form message.
func (m *Mailer) NotifyNewMessage(msg *data.Message) {
	subject := "New contact message"
	if msg.Subject != "" {
		subject += ": " + msg.Subject
	}
	body := fmt.Sprintf("From: %s <%s>\nIP: %s\n\n%s\n", msg.Name, msg.Email, msg.ClientIP, msg.Body)
	m.dispatch("message", subject, body, msg.Email)
}

// NotifyNewTestimonial tells the owner a testimonial awaits approval.
func (m *Mailer) NotifyNewTestimonial(t *data.Testimonial) {
	subject := "New testimonial from " + t.Name
	body := fmt.Sprintf("%s, %s at %s (rating %d/5)\n\n%s\n\nApprove it from the admin dashboard.\n",
		t.Name, t.Role, t.Company, t.Rating, t.Content)
	m.dispatch("testimonial", subject, body, "")
}

// Wait blocks until every in-flight notification finished or gave up.
func (m *Mailer) Wait() {
	m.wg.Wait()
}

func (m *Mailer) dispatch(kind, subject, body, replyTo string) {
	if m.send == nil {
		return
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetBody("text/plain", body)

	logger := m.logger.Session("notify", lager.Data{"kind": kind})
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		policy := backoff.NewExponentialBackOff()
		policy.MaxElapsedTime = m.maxElapsed
		err := backoff.RetryNotify(func() error {
			return m.send(msg)
		}, policy, func(err error, next time.Duration) {
			logger.Info("retrying", lager.Data{"error": err.Error(), "in": next.String()})
		})
		if err != nil {
			logger.Error("failed", err)
			return
		}
		logger.Debug("sent")
	}()
}
