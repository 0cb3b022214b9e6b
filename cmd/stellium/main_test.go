package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.stellium.dev/stellium/internal/app"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newMockedComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mockLoader,
		mocks.NewMockPositionProvider(ctrl),
		mocks.NewMockChartRenderer(ctrl),
		mockLogger,
		mocks.NewMockTracer(ctrl),
		mocks.NewMockWatcher(ctrl),
	)

	return &app.Components{
		App:    application,
		Logger: mockLogger,
	}, mockLoader
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _ := newMockedComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockLoader := newMockedComponents(ctrl)

	mockLogger, ok := components.Logger.(*mocks.MockLogger)
	if !ok {
		t.Fatal("expected mock logger")
	}
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Config load failure surfaces as a command error.
	mockLoader.EXPECT().Load(".").Return(domain.ChartConfig{}, errors.New("load failed"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(
		context.Background(),
		[]string{"chart", "--lat", "47.38", "--lon", "8.54", "--time", "2024-03-20T03:06:00Z"},
		stderr,
		provider,
	)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockLoader := newMockedComponents(ctrl)

	mockLogger, ok := components.Logger.(*mocks.MockLogger)
	if !ok {
		t.Fatal("expected mock logger")
	}
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	// We need a loader that blocks until the context is done.
	blockCh := make(chan struct{})
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (domain.ChartConfig, error) {
		select {
		case <-blockCh:
			return domain.ChartConfig{}, context.Canceled
		case <-time.After(5 * time.Second):
			return domain.ChartConfig{}, errors.New("timeout in mock")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(
			ctx,
			[]string{"chart", "--lat", "47.38", "--lon", "8.54", "--time", "2024-03-20T03:06:00Z"},
			io.Discard,
			func(context.Context) (*app.Components, func(), error) {
				return components, func() {}, nil
			},
		)
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
