package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"docvault/internal/model"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, transactionID string, r io.Reader, size int64, originalFilename, contentType string, req model.DocumentRequest) (*model.DocumentRecord, error) {
	args := m.Called(ctx, transactionID, r, size, originalFilename, contentType, req)
	rec, _ := args.Get(0).(*model.DocumentRecord)
	return rec, args.Error(1)
}

func (m *MockDocumentService) ListMetadata(ctx context.Context, transactionID string) ([]model.DocumentRecord, error) {
	args := m.Called(ctx, transactionID)
	records, _ := args.Get(0).([]model.DocumentRecord)
	return records, args.Error(1)
}

func (m *MockDocumentService) Fetch(ctx context.Context, transactionID, documentID string) ([]byte, error) {
	args := m.Called(ctx, transactionID, documentID)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockDocumentService) ListWithContent(ctx context.Context, transactionID string) ([]model.DocumentEntry, error) {
	args := m.Called(ctx, transactionID)
	entries, _ := args.Get(0).([]model.DocumentEntry)
	return entries, args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, transactionID, documentID string) model.DeletionResult {
	args := m.Called(ctx, transactionID, documentID)
	return args.Get(0).(model.DeletionResult)
}
