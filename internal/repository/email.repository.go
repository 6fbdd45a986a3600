package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailRepository is a thin wrapper around AWS SES - it only sends
// pre-rendered content. Report rendering lives in EmailService.
type EmailRepository interface {
	SendEmail(to string, subject string, body string, html bool) error
}

type emailRepositoryHandler struct {
	sesClient *sesv2.Client
	fromEmail string
}

// NewEmailRepository fails loudly when the sender is misconfigured - a
// broken notification path should be caught at startup, not at send time.
func NewEmailRepository(region, fromEmail string) (EmailRepository, error) {
	if region == "" || fromEmail == "" {
		return nil, fmt.Errorf("email repository misconfigured: region=%q fromEmail=%q", region, fromEmail)
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &emailRepositoryHandler{
		sesClient: sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

func (h *emailRepositoryHandler) SendEmail(to string, subject string, body string, html bool) error {
	content := &types.Body{}
	if html {
		content.Html = &types.Content{
			Data:    aws.String(body),
			Charset: aws.String("UTF-8"),
		}
	} else {
		content.Text = &types.Content{
			Data:    aws.String(body),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(h.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: content,
			},
		},
	}

	_, err := h.sesClient.SendEmail(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	return nil
}
