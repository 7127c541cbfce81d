// Package shutdown предоставляет корректное завершение приложения:
// ожидание отмены контекста и выполнение хуков в пределах таймаута.
package shutdown

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Hook освобождает один ресурс.
type Hook func(context.Context) error

// ErrTimeout возвращается, если хуки не уложились в таймаут.
var ErrTimeout = errors.New("shutdown timeout exceeded")

// Wait блокируется до отмены ctx (обычно signal.NotifyContext по SIGINT/SIGTERM),
// затем параллельно выполняет хуки и возвращает объединенную ошибку.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	<-ctx.Done()

	hookCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		mu.Lock()
		errs = append(errs, ErrTimeout)
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
