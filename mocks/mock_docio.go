package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mumcuarda/debit/internal/domain"
)

// MockDocumentReader is a mock implementation of port.DocumentReader.
type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) Read(data []byte) (*domain.SlipDocument, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlipDocument), args.Error(1)
}

// MockTemplateRenderer is a mock implementation of port.TemplateRenderer.
type MockTemplateRenderer struct {
	mock.Mock
}

func (m *MockTemplateRenderer) Render(templatePath string, ctx domain.RenderContext) ([]byte, error) {
	args := m.Called(templatePath, ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
