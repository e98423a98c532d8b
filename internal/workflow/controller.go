// Package workflow implements the client-side orchestration core: the
// permission state machine that gates everything else, and the association
// sync engine that mediates refresh, add, and modify operations against the
// command gateway. State lives in one structured snapshot rather than
// independent mutable cells, so readers never observe a partial update.
package workflow

import (
	"sync"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/gateway"
	"github.com/Binkle/DefaultApplication/internal/picker"
)

// PermissionState is the disk-access permission gate. A controller starts
// in PermissionChecking and only ever moves via an explicit check.
type PermissionState int

const (
	PermissionChecking PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionChecking:
		return "checking"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the controller state. Feedback and
// Err are mutually exclusive at the start of any user-initiated action; at
// most one of them is ever set by a completed step.
type Snapshot struct {
	Permission   PermissionState
	Associations []assoc.Association
	Loading      bool
	PendingInput string
	Feedback     string
	Err          string
}

// Controller owns the authoritative in-memory association list and the
// permission state. It does not serialize concurrent mutating operations;
// callers are expected to trigger one user action at a time, using Loading
// to disable further triggers while one is in flight.
type Controller struct {
	gw      gateway.Gateway
	pk      picker.Picker
	appsDir string

	mu           sync.Mutex
	permission   PermissionState
	associations []assoc.Association
	loading      bool
	pending      string
	feedback     string
	errMsg       string
}

// Option configures a Controller.
type Option func(*Controller)

// WithApplicationsDir sets the directory the application chooser opens in.
func WithApplicationsDir(dir string) Option {
	return func(c *Controller) {
		if dir != "" {
			c.appsDir = dir
		}
	}
}

// New returns a controller in the PermissionChecking state with an empty
// association list.
func New(gw gateway.Gateway, pk picker.Picker, opts ...Option) *Controller {
	c := &Controller{
		gw:         gw,
		pk:         pk,
		appsDir:    picker.DefaultApplicationsDir,
		permission: PermissionChecking,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state. The association slice is
// cloned; callers can hold it across later mutations.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := make([]assoc.Association, len(c.associations))
	copy(list, c.associations)
	return Snapshot{
		Permission:   c.permission,
		Associations: list,
		Loading:      c.loading,
		PendingInput: c.pending,
		Feedback:     c.feedback,
		Err:          c.errMsg,
	}
}

// SetPendingInput records the in-progress text for a not-yet-submitted
// extension. AddExtension clears it on success and retains it on failure.
func (c *Controller) SetPendingInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = text
}

func (c *Controller) setLoading(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = on
}

// clearSlots empties both message slots; every workflow step does this
// before acting.
func (c *Controller) clearSlots() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feedback = ""
	c.errMsg = ""
}

// fail records an error; never alongside feedback.
func (c *Controller) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feedback = ""
	c.errMsg = msg
}

// succeed records feedback; never alongside an error.
func (c *Controller) succeed(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feedback = msg
	c.errMsg = ""
}

// replaceAssociations installs an already-ordered list atomically.
func (c *Controller) replaceAssociations(list []assoc.Association) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.associations = list
}
