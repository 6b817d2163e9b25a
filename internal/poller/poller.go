package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/wynn-data-service/internal/logging"
	"github.com/preston-bernstein/wynn-data-service/internal/metrics"
	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/internal/snapshots"
	"github.com/preston-bernstein/wynn-data-service/internal/timeutil"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

const (
	defaultInterval = time.Minute
	// readyFailureLimit is the number of consecutive failed cycles after which the service reports not ready.
	readyFailureLimit = 3

	EndpointOnline      = "online"
	EndpointNews        = "news"
	EndpointTerritories = "territories"
)

// SnapshotWriter persists territory and online-player snapshots to disk.
type SnapshotWriter interface {
	WriteTerritories(date string, territories []wynncraft.Territory) error
	WriteOnline(date string, online wynncraft.OnlinePlayers) error
}

// Store receives the data of every successful fetch.
type Store interface {
	SetOnline(online wynncraft.OnlinePlayers, at time.Time)
	SetNews(items []wynncraft.NewsItem, at time.Time)
	SetTerritories(territories []wynncraft.Territory, at time.Time)
}

// Poller refreshes the cached feeds on an interval and writes today's snapshots to disk.
type Poller struct {
	gateway  *providers.Gateway
	store    Store
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	cycleMu  sync.Mutex
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Poller with sane defaults. writer may be nil to disable snapshots.
func New(gateway *providers.Gateway, store Store, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		gateway:  gateway,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		_ = p.RefreshNow(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_ = p.RefreshNow(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs one poll cycle synchronously. Cycles never overlap.
func (p *Poller) RefreshNow(ctx context.Context) error {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := p.now()
	p.recordAttempt(start)

	var (
		g           errgroup.Group
		online      *wynncraft.OnlinePlayers
		territories []wynncraft.Territory
	)
	g.Go(func() error {
		data, err := providers.Fetch(ctx, p.gateway, EndpointOnline, func(ctx context.Context, u providers.Upstream) (*wynncraft.OnlinePlayers, error) {
			return u.GetOnlinePlayerData(ctx, wynncraft.ByUsername)
		})
		if err != nil {
			return p.endpointFailed(EndpointOnline, err)
		}
		online = data
		p.store.SetOnline(*data, p.now())
		return nil
	})
	g.Go(func() error {
		items, err := providers.Fetch(ctx, p.gateway, EndpointNews, func(ctx context.Context, u providers.Upstream) ([]wynncraft.NewsItem, error) {
			return u.GetLatestNews(ctx)
		})
		if err != nil {
			return p.endpointFailed(EndpointNews, err)
		}
		p.store.SetNews(items, p.now())
		return nil
	})
	g.Go(func() error {
		data, err := providers.Fetch(ctx, p.gateway, EndpointTerritories, func(ctx context.Context, u providers.Upstream) ([]wynncraft.Territory, error) {
			return u.GetTerritories(ctx)
		})
		if err != nil {
			return p.endpointFailed(EndpointTerritories, err)
		}
		territories = data
		p.store.SetTerritories(data, p.now())
		return nil
	})
	err := g.Wait()

	p.writeSnapshots(timeutil.UTCDate(start), online, territories)

	elapsed := p.now().Sub(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	if err != nil {
		p.recordFailure(err, start)
		return err
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed feeds",
		logging.FieldCount, len(territories),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}

func (p *Poller) endpointFailed(endpoint string, err error) error {
	logging.Error(p.logger, "poller fetch failed", err, logging.FieldEndpoint, endpoint)
	return err
}

func (p *Poller) writeSnapshots(date string, online *wynncraft.OnlinePlayers, territories []wynncraft.Territory) {
	if p.writer == nil {
		return
	}
	if territories != nil {
		err := p.writer.WriteTerritories(date, territories)
		p.metrics.RecordSnapshotWrite(string(snapshots.KindTerritories), err)
		if err != nil {
			logging.Error(p.logger, "poller snapshot write failed", err, logging.FieldKind, snapshots.KindTerritories, logging.FieldDate, date)
		}
	}
	if online != nil {
		err := p.writer.WriteOnline(date, *online)
		p.metrics.RecordSnapshotWrite(string(snapshots.KindOnline), err)
		if err != nil {
			logging.Error(p.logger, "poller snapshot write failed", err, logging.FieldKind, snapshots.KindOnline, logging.FieldDate, date)
		}
	}
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
