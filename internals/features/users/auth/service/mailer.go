package service

import "log"

// Mailer is the outbound mail seam; the transport itself is an external
// collaborator.
type Mailer interface {
	SendPasswordReset(email, token string) error
}

// ConsoleMailer logs the reset token instead of sending mail. Default
// outside production.
type ConsoleMailer struct{}

func (ConsoleMailer) SendPasswordReset(email, token string) error {
	log.Printf("[MAIL] password reset for %s token=%s", email, token)
	return nil
}
