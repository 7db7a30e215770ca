package data

import (
	"net/mail"
	"net/url"
	"unicode/utf8"

	"github.com/PaulBabatuyi/portfolio/internal/normalize"
)

// NewMessage normalizes and validates a contact form submission.
func NewMessage(name, email, subject, body, clientIP string) (*Message, error) {
	m := &Message{
		Name:     normalize.Line(name),
		Email:    normalize.Email(email),
		Subject:  normalize.Line(subject),
		Body:     normalize.Text(body),
		ClientIP: clientIP,
	}

	c := check{}
	lengthBetween(c, "name", m.Name, 1, 100)
	if _, err := mail.ParseAddress(m.Email); err != nil || m.Email == "" {
		c.add("email", "must be a valid email address")
	}
	lengthBetween(c, "subject", m.Subject, 0, 200)
	lengthBetween(c, "body", m.Body, 10, 5000)
	return m, c.err()
}

// NewTestimonial normalizes and validates a testimonial submission. The
// result is always pending approval.
func NewTestimonial(name, role, company, content string, rating int, clientIP string) (*Testimonial, error) {
	t := &Testimonial{
		Name:     normalize.Line(name),
		Role:     normalize.Line(role),
		Company:  normalize.Line(company),
		Content:  normalize.Text(content),
		Rating:   rating,
		ClientIP: clientIP,
	}

	c := check{}
	lengthBetween(c, "name", t.Name, 1, 100)
	lengthBetween(c, "role", t.Role, 0, 100)
	lengthBetween(c, "company", t.Company, 0, 100)
	lengthBetween(c, "content", t.Content, 10, 2000)
	if t.Rating < 1 || t.Rating > 5 {
		c.add("rating", "must be between 1 and 5")
	}
	return t, c.err()
}

func (p *Project) Validate() error {
	c := check{}
	localizedRequired(c, "title", p.Title)
	optionalURL(c, "repoUrl", p.RepoURL)
	optionalURL(c, "liveUrl", p.LiveURL)
	optionalURL(c, "imageUrl", p.ImageURL)
	return c.err()
}

func (s *Skill) Validate() error {
	c := check{}
	lengthBetween(c, "name", s.Name, 1, 100)
	if s.Level < 0 || s.Level > 5 {
		c.add("level", "must be between 0 and 5")
	}
	return c.err()
}

func (e *Experience) Validate() error {
	c := check{}
	lengthBetween(c, "company", e.Company, 1, 200)
	localizedRequired(c, "role", e.Role)
	if e.StartDate.IsZero() {
		c.add("startDate", "is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		c.add("endDate", "must not be before startDate")
	}
	return c.err()
}

func (e *Education) Validate() error {
	c := check{}
	lengthBetween(c, "institution", e.Institution, 1, 200)
	localizedRequired(c, "degree", e.Degree)
	if e.EndDate != nil && !e.StartDate.IsZero() && e.EndDate.Before(e.StartDate) {
		c.add("endDate", "must not be before startDate")
	}
	return c.err()
}

func (h *Hobby) Validate() error {
	c := check{}
	localizedRequired(c, "name", h.Name)
	return c.err()
}

func (ci *ContactInfo) Validate() error {
	c := check{}
	if ci.Email != "" {
		if _, err := mail.ParseAddress(ci.Email); err != nil {
			c.add("email", "must be a valid email address")
		}
	}
	optionalURL(c, "linkedin", ci.LinkedIn)
	optionalURL(c, "github", ci.GitHub)
	optionalURL(c, "website", ci.Website)
	return c.err()
}

func lengthBetween(c check, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min && min == 1:
		c.add(field, "is required")
	case n < min:
		c.add(field, "is too short")
	case n > max:
		c.add(field, "is too long")
	}
}

func localizedRequired(c check, field string, l Localized) {
	if l.EN == "" || l.FR == "" {
		c.add(field, "needs both en and fr")
	}
}

func optionalURL(c check, field, raw string) {
	if raw == "" {
		return
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.add(field, "must be an http(s) URL")
	}
}
