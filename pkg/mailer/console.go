package mailer

import (
	"context"
	"strings"

	"plasmodocking/pkg/logger"

	"go.uber.org/zap"
)

// Console writes messages to the log instead of delivering them. It is used
// in development and whenever no provider is configured.
type Console struct{}

// Send logs msg at info level.
func (Console) Send(ctx context.Context, msg Message) (SendRes, error) {
	body := msg.Text
	if body == "" {
		body = msg.HTML
	}

	logger.Info(ctx, "email (console)",
		zap.String("from", msg.From),
		zap.String("to", strings.Join(msg.To, ", ")),
		zap.String("subject", msg.Subject),
		zap.String("body", body),
	)

	return SendRes{}, nil
}

var _ Mailer = Console{}
