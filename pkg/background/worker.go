package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"dispatch/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Task периодическая задача. Задачи не должны менять состояние домена,
// только читать его (метрики, отчеты).
type Task interface {
	// Interval между запусками, <= 0 означает только запуск на старте.
	Interval() time.Duration
	Do(context.Context) error
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// Start выполняет каждую задачу один раз синхронно и запускает периодическое выполнение в фоне.
// Ошибка или паника на первом запуске возвращается сразу, фон в этом случае не стартует.
// Фоновые циклы завершаются с отменой ctx, дождаться их можно через Wait.
func Start(ctx context.Context, log handlerLogger, tasks ...Task) (*Worker, error) {
	worker := &Worker{
		log:   log.With(logger.NewField("component", "background")),
		tasks: tasks,
	}

	warmUp, warmUpCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmUp.Go(func() error {
			worker.log.Info("initializing task", logger.NewField("task", task.Info()))
			return worker.runOnce(warmUpCtx, task)
		})
	}
	if err := warmUp.Wait(); err != nil {
		return nil, fmt.Errorf("init background tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока все фоновые циклы не завершатся.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	interval := task.Interval()
	if interval <= 0 {
		w.log.Warn("non-positive interval, periodic execution disabled",
			logger.NewField("task", task.Info()),
			logger.NewField("interval", interval),
		)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// runOnce превращает панику задачи в ошибку.
func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %q panic: %v", task.Info(), r)
		}
	}()

	return task.Do(ctx)
}
