// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers judge invitations.

SMTPNotifier sends a plain-text email per judge with gomail:

	n := notify.NewSMTPNotifier(cfg.SMTP)
	err := n.Invite(ctx, notify.Invitation{
		JudgeName: "Ann Lee",
		Email:     "ann@example.com",
		Stage:     &stage,
		URL:       "http://localhost:3318/s/abc",
	})

Judges without an email are skipped. LogNotifier is the fallback when
SMTP is not configured.

Delivery is best effort: callers log and swallow Invite errors.
*/
package notify
