package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
)

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) Send(ctx context.Context, email dto.OutboundEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockEmailSender) FromAddress() string {
	args := m.Called()
	return args.String(0)
}
