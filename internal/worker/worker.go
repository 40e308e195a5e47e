package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/sethvargo/go-retry"
)

// SessionWorker - фоновый воркер очистки истёкших сессий
type SessionWorker struct {
	Sessions      storage.SessionsStorage
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	PurgeInterval time.Duration
}

// NewSessionWorker - конструктор воркера очистки сессий
func NewSessionWorker(sessions storage.SessionsStorage, interval time.Duration) *SessionWorker {
	return &SessionWorker{
		Sessions:      sessions,
		QuitChan:      make(chan struct{}),
		PurgeInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *SessionWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SessionWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SessionWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SessionWorker signal stop")
			return
		case <-ticker.C:
			w.PurgeSessions(ctx)
		}
	}
}

// PurgeSessions - удаление истёкших сессий с повтором при временных сбоях БД
func (w *SessionWorker) PurgeSessions(ctx context.Context) {
	var deleted int64
	backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		deleted, err = w.Sessions.DeleteExpiredSessions(ctx, time.Now())
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	if err != nil {
		logger.Error("Error purge expired sessions", err)
		return
	}
	if deleted > 0 {
		logger.Info("Purged expired sessions", "count", deleted)
	}
}
