package mocks

import (
	"context"

	"catalog-sync/core/upstream"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of upstream.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchPage(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
	args := m.Called(ctx, limit, offset)
	if page, ok := args.Get(0).(*upstream.ListPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchDetail(ctx context.Context, url string) (*upstream.Detail, error) {
	args := m.Called(ctx, url)
	if detail, ok := args.Get(0).(*upstream.Detail); ok {
		return detail, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}
