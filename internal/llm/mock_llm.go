package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Answer(ctx context.Context, question string, options []string) (string, error) {
	args := m.Called(ctx, question, options)
	return args.String(0), args.Error(1)
}
