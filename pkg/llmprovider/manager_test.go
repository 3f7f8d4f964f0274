package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestComplete_SuccessWithPrimaryProvider(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Text:         "Hello from primary provider",
		ProviderName: "primary",
		ModelName:    "primary-model",
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	// Execute
	req := &Request{User: "Hello"}
	resp, err := manager.Complete(context.Background(), req)

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}

	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}

	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestComplete_FallbackToSecondaryProvider(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Text:         "Hello from secondary provider",
		ProviderName: "secondary",
		ModelName:    "secondary-model",
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}

	secondary := &mockProvider{
		name:       "secondary",
		model:      "secondary-model",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	// Execute
	req := &Request{User: "Hello"}
	resp, err := manager.Complete(context.Background(), req)

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}

	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}

	// Secondary should be called once
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}

	// Primary failure should have been logged
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestComplete_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	_, err := manager.Complete(context.Background(), &Request{User: "Hello"})
	if err == nil {
		t.Fatal("Expected error when all providers fail")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
}

func TestComplete_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2"}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	_, err := manager.Complete(context.Background(), &Request{User: "Hello"})
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled")
	}

	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.callCount)
	}
}

func TestComplete_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.Complete(context.Background(), &Request{User: "Hello"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}
