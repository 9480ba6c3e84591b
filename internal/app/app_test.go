package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/l2drycleaners/cleanpress/internal/config"
	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	testhelpers "github.com/l2drycleaners/cleanpress/internal/test"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestSeedAdmin(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("skipped without credentials", func(t *testing.T) {
		recorder := &testhelpers.LifecycleRecorder{}
		seedAdmin(seedParams{
			Lifecycle: recorder,
			Facade:    &CleanersFacade{},
			Config:    &config.Config{},
			Logger:    logger,
		})
		if len(recorder.Hooks) != 0 {
			t.Fatalf("expected no hook without credentials, got %d", len(recorder.Hooks))
		}
	})

	t.Run("creates admin on start", func(t *testing.T) {
		users := testhelpers.NewUserRepositoryStub()
		authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
		facade := NewCleanersFacade(authUC, nil, nil, &testhelpers.FactoryStub{UserRepo: users})

		recorder := &testhelpers.LifecycleRecorder{}
		seedAdmin(seedParams{
			Lifecycle: recorder,
			Facade:    facade,
			Config: &config.Config{
				AdminName:     "Admin1",
				AdminEmail:    "admin1@l2drycleaners.com",
				AdminPassword: "123456",
			},
			Logger: logger,
		})
		if len(recorder.Hooks) != 1 {
			t.Fatalf("expected one hook, got %d", len(recorder.Hooks))
		}
		if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
			t.Fatalf("on start failed: %v", err)
		}

		admin, err := users.GetByEmail(context.Background(), "admin1@l2drycleaners.com")
		if err != nil {
			t.Fatalf("admin not stored: %v", err)
		}
		if admin.Role != model.RoleAdmin {
			t.Fatalf("expected admin role, got %s", admin.Role)
		}

		// A second start must not fail on the existing account.
		if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
			t.Fatalf("expected idempotent seeding, got %v", err)
		}
	})
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	hook := fx.Hook{}
	recorder.Append(hook)
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected hook to be appended")
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
