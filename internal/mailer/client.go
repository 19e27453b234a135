package mailer

import (
	"fmt"

	"github.com/resend/resend-go/v2"
)

type Client struct {
	client *resend.Client
	from   string
}

func NewClient(apiKey, from string) *Client {
	return &Client{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one HTML email. Each call is an independent failure domain;
// the caller decides whether a failure matters.
func (c *Client) Send(to []string, subject, html string) error {
	_, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
