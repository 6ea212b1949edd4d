package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Makepad-fr/crudpanel/internal/api"
	"github.com/Makepad-fr/crudpanel/internal/model"
)

// ErrBusy is returned when a request is already in flight.
var ErrBusy = errors.New("a request is already in flight")

// Sender is the subset of *api.Client the controller needs.
type Sender interface {
	Do(ctx context.Context, r model.Request) (*model.Envelope, error)
	Ping(ctx context.Context) (*model.Greeting, error)
}

// Controls are the user inputs that must be locked while a request runs.
type Controls interface {
	SetEnabled(enabled bool)
}

type noControls struct{}

func (noControls) SetEnabled(bool) {}

// Controller serialises user actions: Idle -> InFlight -> Idle.
type Controller struct {
	sender   Sender
	controls Controls
	log      *slog.Logger

	mu    sync.Mutex
	state model.State
}

func New(sender Sender, controls Controls, log *slog.Logger) *Controller {
	if controls == nil {
		controls = noControls{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{sender: sender, controls: controls, log: log}
}

func (c *Controller) State() model.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin claims the controller. False means another request holds it.
func (c *Controller) Begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == model.InFlight {
		return false
	}
	c.state = model.InFlight
	return true
}

// End releases the controller. Safe to call when already idle.
func (c *Controller) End() {
	c.mu.Lock()
	c.state = model.Idle
	c.mu.Unlock()
}

// Dispatch sends one request for m. Controls are disabled for the whole
// request and re-enabled once on every exit path.
func (c *Controller) Dispatch(ctx context.Context, m model.Method) (*model.Envelope, error) {
	if !c.Begin() {
		c.log.Warn("dispatch.rejected_busy", "method", m)
		return nil, ErrBusy
	}
	c.controls.SetEnabled(false)
	defer func() {
		// Idle first: anything reacting to the re-enable may dispatch again.
		c.End()
		c.controls.SetEnabled(true)
	}()

	env, err := c.sender.Do(ctx, model.NewRequest(m))
	if err != nil {
		c.log.Error("dispatch.failed", "method", m, "error", err)
		return nil, err
	}
	c.log.Info("dispatch.ok", "method", m, "operation", env.Operation)
	return env, nil
}

// Liveness is the outcome of the startup check. Up and Down are both false
// when the root answered with a non-2xx status: the server is reachable,
// it just has nothing to say at the root.
type Liveness struct {
	Up       bool
	Down     bool
	Status   int
	Greeting string
	Err      error
}

// CheckLiveness pings the server root once. No retry, no polling.
// Only a transport failure counts as the server being down.
func (c *Controller) CheckLiveness(ctx context.Context) Liveness {
	g, err := c.sender.Ping(ctx)
	if err != nil {
		if api.IsTransport(err) {
			c.log.Warn("liveness.down", "error", err)
			return Liveness{Down: true, Err: err}
		}
		status := api.StatusCode(err)
		c.log.Warn("liveness.unexpected_response", "status", status, "error", err)
		return Liveness{Status: status, Err: err}
	}
	c.log.Info("liveness.ok", "greeting", g.Message)
	return Liveness{Up: true, Greeting: g.Message}
}
