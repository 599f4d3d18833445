// Package scheduler recarga periódicamente las colecciones del catálogo.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Loader carga productos y promociones. Lo implementa store.CollectionStore.
type Loader interface {
	LoadAll(ctx context.Context) store.LoadReport
}

// Refresher ejecuta LoadAll según una expresión cron ("@every 5m", "*/10 * * * *").
type Refresher struct {
	cron    *cron.Cron
	loader  Loader
	metrics *metrics.Metrics
	log     *logger.Logger
	timeout time.Duration
}

// New valida la expresión y registra el job. No arranca hasta Start.
// timeout acota cada ejecución; 0 usa 30s.
func New(spec string, loader Loader, m *metrics.Metrics, log *logger.Logger, timeout time.Duration) (*Refresher, error) {
	if spec == "" {
		return nil, errors.New("scheduler: expresión cron vacía")
	}
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	r := &Refresher{
		loader:  loader,
		metrics: m,
		log:     log.Named("scheduler"),
		timeout: timeout,
	}
	cl := cronLogger{log: r.log}
	r.cron = cron.New(cron.WithLogger(cl), cron.WithChain(
		cron.Recover(cl),
		cron.SkipIfStillRunning(cl),
	))
	if _, err := r.cron.AddFunc(spec, r.RunOnce); err != nil {
		return nil, fmt.Errorf("scheduler: expresión %q: %w", spec, err)
	}
	return r, nil
}

// Start arranca el planificador en su propia goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
	r.log.Info().Msg("recarga periódica activa")
}

// Stop detiene el planificador y espera a que termine la ejecución en curso
// o a que venza ctx.
func (r *Refresher) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		r.log.Warn().Msg("recarga en curso abandonada al apagar")
	}
}

// RunOnce ejecuta una recarga. Las fallas parciales ya quedaron registradas por
// el store; aquí solo se cuentan.
func (r *Refresher) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	failed := r.loader.LoadAll(ctx).Failed()
	r.metrics.RefreshRun(len(failed) == 0)

	ev := r.log.Debug()
	if len(failed) > 0 {
		ev = r.log.Warn().Strs("failed", failed)
	}
	ev.Dur("elapsed", time.Since(start)).Msg("recarga de colecciones")
}

// cronLogger adapta el logger de la aplicación a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
