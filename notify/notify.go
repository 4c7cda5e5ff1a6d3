// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/danielhkuo/placings/cliparse"
	"github.com/danielhkuo/placings/models"
)

// Invitation tells a judge where to fill in their stage form
type Invitation struct {
	JudgeName string
	Email     string
	Stage     *models.Stage
	URL       string
}

// Subject names the judge and their assigned stage
func (inv Invitation) Subject() string {
	name := inv.JudgeName
	if name == "" {
		name = "Judge"
	}
	stage := "not assigned"
	if inv.Stage != nil {
		stage = inv.Stage.DisplayName()
	}
	return name + " - Stage: " + stage
}

func (inv Invitation) Body() string {
	return fmt.Sprintf("Hello, %s.\nFollow the link and fill in the stage form:\n%s\n", inv.JudgeName, inv.URL)
}

// dialer is satisfied by *gomail.Dialer
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier mails invitations, opening one connection per message
type SMTPNotifier struct {
	from   string
	dialer dialer
}

// NewSMTPNotifier uses implicit TLS on port 465 and STARTTLS otherwise
func NewSMTPNotifier(cfg cliparse.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (n *SMTPNotifier) Invite(ctx context.Context, inv Invitation) error {
	if inv.Email == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", inv.Email)
	m.SetHeader("Subject", inv.Subject())
	m.SetBody("text/plain", inv.Body())

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invitation to %s: %w", inv.Email, err)
	}

	slog.Info("invitation sent", "email", inv.Email)
	return nil
}

// LogNotifier only logs invitations; used when SMTP is not configured
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Invite(ctx context.Context, inv Invitation) error {
	slog.Info("invitation not mailed (SMTP disabled)",
		"judge", inv.JudgeName,
		"email", inv.Email,
		"url", inv.URL,
	)
	return nil
}
