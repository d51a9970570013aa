package observable

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/openddlab/donorpipe/events"
)

// Observer is the interface that all observers must implement
type Observer interface {
	Notify(context.Context, events.Event) error
}

// Base provides a base implementation of the Observable interface.
// It is embedded in sources and extractors that report progress.
type Base struct {
	observerLock sync.RWMutex
	// Observers is a list of all observers that are currently connected
	Observers []Observer
}

func (p *Base) AddObserver(o Observer) {
	slog.Debug("AddObserver")
	p.observerLock.Lock()
	p.Observers = append(p.Observers, o)
	p.observerLock.Unlock()
}

func (p *Base) NotifyObservers(ctx context.Context, e events.Event) error {
	p.observerLock.RLock()
	defer p.observerLock.RUnlock()

	var notifyErrors []error
	for _, observer := range p.Observers {
		if err := observer.Notify(ctx, e); err != nil {
			notifyErrors = append(notifyErrors, err)
		}
	}

	return errors.Join(notifyErrors...)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(context.Context, events.Event) error

func (f ObserverFunc) Notify(ctx context.Context, e events.Event) error {
	return f(ctx, e)
}
