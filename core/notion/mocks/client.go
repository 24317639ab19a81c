package mocks

import (
	"context"

	"application-sync/core/notion"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of notion.Client
type Client struct {
	mock.Mock
}

func (m *Client) QueryDatabase(ctx context.Context, databaseID string, req notion.QueryRequest) ([]notion.Page, error) {
	args := m.Called(ctx, databaseID, req)
	if pages, ok := args.Get(0).([]notion.Page); ok {
		return pages, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreatePage(ctx context.Context, databaseID string, props notion.Properties) (*notion.Page, error) {
	args := m.Called(ctx, databaseID, props)
	if page, ok := args.Get(0).(*notion.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdatePage(ctx context.Context, pageID string, props notion.Properties) (*notion.Page, error) {
	args := m.Called(ctx, pageID, props)
	if page, ok := args.Get(0).(*notion.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}
