package dataset

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"yubin/internal/domain"
	"yubin/internal/eventbus"
)

// Options configures a Loader
type Options struct {
	Timeout    time.Duration // per load; 0 means no timeout
	HTTPClient *http.Client
	S3         S3Opener
}

// Loader fetches, decompresses and decodes the address dataset
type Loader struct {
	bus     eventbus.EventBus
	timeout time.Duration

	mu         sync.Mutex
	openers    map[string]Opener
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a loader with file, http(s) and s3 openers registered.
// With a bus, LoadRequestedEvent starts a background load.
func NewLoader(bus eventbus.EventBus, opts Options) *Loader {
	httpOpener := HTTPOpener{Client: opts.HTTPClient}
	l := &Loader{
		bus:     bus,
		timeout: opts.Timeout,
		openers: map[string]Opener{
			"file":  FileOpener{},
			"http":  httpOpener,
			"https": httpOpener,
			"s3":    opts.S3,
		},
	}

	if bus != nil {
		bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.LoadRequestedEvent); ok {
				if err := l.StartLoad(context.Background(), event.Source); err != nil {
					log.Printf("Load request for %s ignored: %v", event.Source, err)
				}
			}
		})
	}

	return l
}

// RegisterOpener sets the opener used for scheme
func (l *Loader) RegisterOpener(scheme string, opener Opener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.openers[scheme] = opener
}

func (l *Loader) opener(scheme string) (Opener, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.openers[scheme]
	return o, ok
}

// Load fetches source and returns its records, publishing load events
func (l *Loader) Load(ctx context.Context, source string) ([]domain.Record, error) {
	l.publish(eventbus.LoadStartedEvent{Source: source})
	start := time.Now()

	records, err := l.load(ctx, source)
	if err != nil {
		log.Printf("Loading %s failed: %v", source, err)
		l.publish(eventbus.LoadFailedEvent{Source: source, Err: err})
		return nil, err
	}

	log.Printf("Loaded %d records from %s in %s", len(records), source, time.Since(start).Round(time.Millisecond))
	l.publish(eventbus.LoadCompletedEvent{Source: source, Records: records})
	return records, nil
}

func (l *Loader) load(ctx context.Context, source string) ([]domain.Record, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	scheme := Scheme(source)
	opener, ok := l.opener(scheme)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", source, ErrUnsupportedSource, scheme)
	}

	raw, err := opener.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	r, err := Decompress(raw)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Decode(r)
}

// StartLoad loads source in the background; the outcome arrives as an event
func (l *Loader) StartLoad(ctx context.Context, source string) error {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	l.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			cancel()
			l.mu.Lock()
			l.isLoading = false
			l.cancelFunc = nil
			l.mu.Unlock()
		}()

		_, _ = l.Load(loadCtx, source)
	}()

	return nil
}

// Stop cancels a background load and waits for it to finish
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}

func (l *Loader) publish(e eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}
