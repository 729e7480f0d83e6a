// Package ses sends notify messages through Amazon SES.
package ses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsses "github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/goliatone/go-brief/pkg/notify"
)

const charset = "UTF-8"

// API is the subset of the SES client the mailer uses.
type API interface {
	SendEmail(ctx context.Context, params *awsses.SendEmailInput, optFns ...func(*awsses.Options)) (*awsses.SendEmailOutput, error)
}

// Mailer implements notify.Mailer over SES.
type Mailer struct {
	client API
}

var _ notify.Mailer = (*Mailer)(nil)

// New wraps an existing client.
func New(client API) *Mailer {
	return &Mailer{client: client}
}

// NewMailer builds a client from cfg with static credentials. It matches
// notify.MailerFactory.
func NewMailer(ctx context.Context, cfg notify.Config) (notify.Mailer, error) {
	if !cfg.Configured() {
		return nil, errors.New("ses: credentials are required")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			cfg.SessionToken,
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("ses: load aws config: %w", err)
	}
	client := awsses.NewFromConfig(awsCfg, func(o *awsses.Options) {
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return New(client), nil
}

// Send delivers msg and wraps failures in a classified notify.ProviderError.
func (m *Mailer) Send(ctx context.Context, msg notify.Message) error {
	if m == nil || m.client == nil {
		return errors.New("ses: client is nil")
	}
	_, err := m.client.SendEmail(ctx, buildInput(msg))
	if err != nil {
		return classify(err)
	}
	return nil
}

func buildInput(msg notify.Message) *awsses.SendEmailInput {
	body := &types.Body{}
	if msg.Text != "" {
		body.Text = content(msg.Text)
	}
	if msg.HTML != "" {
		body.Html = content(msg.HTML)
	}
	input := &awsses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: append([]string(nil), msg.To...),
		},
		Message: &types.Message{
			Subject: content(msg.Subject),
			Body:    body,
		},
	}
	if len(msg.ReplyTo) > 0 {
		input.ReplyToAddresses = append([]string(nil), msg.ReplyTo...)
	}
	return input
}

func content(data string) *types.Content {
	return &types.Content{
		Data:    aws.String(data),
		Charset: aws.String(charset),
	}
}
