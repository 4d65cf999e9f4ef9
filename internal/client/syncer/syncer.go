// Package syncer is the dual-source consistency core: every read and write
// intent goes to the remote backend first and degrades to the local mirror
// when, and only when, the backend is unreachable. Each operation reports
// where its data actually came from via a Status tag.
package syncer

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdesk/internal/client/mirror"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/remote"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Status describes which source backed the result of an operation.
type Status string

const (
	// StatusSynced: the remote backend answered and is authoritative.
	StatusSynced Status = "synced"
	// StatusDegraded: the backend was unreachable; the result reflects the
	// local mirror, mutations were applied locally and not queued for replay.
	StatusDegraded Status = "degraded"
	// StatusUnavailable: the backend was unreachable and the mirror holds
	// nothing usable. Distinct from a legitimately empty synced collection.
	StatusUnavailable Status = "unavailable"
	// StatusRejected: the backend answered and refused the request. The
	// snapshot is left unchanged; Message carries the server's reason.
	StatusRejected Status = "rejected"
)

// Result is what every operation returns: the current collection snapshot,
// the status tag, and the rejection message when Status is StatusRejected.
type Result struct {
	Users   []models.User
	Status  Status
	Message string
}

// Controller orchestrates the remote client, the local mirror, and the
// session marker. All stores are injected; the controller owns the in-memory
// collection snapshot and serializes operations so that no second operation
// begins applying its result before the prior one committed or failed.
type Controller struct {
	mu      sync.Mutex
	remote  remote.Client
	mirror  mirror.Repository
	session session.Repository
	logger  logging.Logger

	users  []models.User
	loaded bool
}

func NewController(rc remote.Client, mr mirror.Repository, sr session.Repository, logger logging.Logger) *Controller {
	return &Controller{
		remote:  rc,
		mirror:  mr,
		session: sr,
		logger:  logger.With("component", "syncer"),
	}
}

// List refreshes the snapshot from the backend, writing it through to the
// mirror. When the backend is unreachable it serves the mirrored snapshot
// (StatusDegraded), or StatusUnavailable when the mirror is empty.
func (c *Controller) List(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	users, err := c.remote.List(ctx)
	if err == nil {
		if users == nil {
			users = []models.User{}
		}
		c.commit(ctx, users)
		return Result{Users: c.snapshot(), Status: StatusSynced}
	}

	if !errors.Is(err, remote.ErrUnavailable) {
		return c.rejected(ctx, err)
	}

	cached, lerr := c.mirror.Load(ctx)
	if lerr != nil {
		c.logger.Error(ctx, "mirror load failed", "error", lerr)
		return Result{Status: StatusUnavailable}
	}
	c.users = cached
	c.loaded = true

	if len(cached) == 0 {
		return Result{Status: StatusUnavailable}
	}
	c.logger.Warn(ctx, "backend unreachable, serving mirrored snapshot", "users", len(cached))
	return Result{Users: c.snapshot(), Status: StatusDegraded}
}

// Create validates fields, then creates the record remotely, merging the
// returned authoritative record into the snapshot. When the backend is
// unreachable the record is accepted locally under a placeholder id; it is
// never queued for replay. The active-user marker is refreshed on every
// accepted create.
//
// The returned error is non-nil only for client-side validation failures
// (models.ErrValidation); those are raised before any network call.
func (c *Controller) Create(ctx context.Context, fields models.Fields) (Result, error) {
	if err := fields.Validate(); err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	created, err := c.remote.Create(ctx, fields)
	if err == nil {
		c.ensureLoaded(ctx)
		c.commit(ctx, mergeUser(c.users, *created))
		c.markActive(ctx, created.Name)
		return Result{Users: c.snapshot(), Status: StatusSynced}, nil
	}

	if !errors.Is(err, remote.ErrUnavailable) {
		return c.rejected(ctx, err), nil
	}

	c.ensureLoaded(ctx)
	local := models.User{
		ID:    "local-" + uuid.NewString(),
		Name:  fields.Name,
		Email: fields.Email,
		Phone: fields.Phone,
	}
	status := c.commitDegraded(ctx, append(c.snapshot(), local))
	c.markActive(ctx, local.Name)
	return Result{Users: c.snapshot(), Status: status}, nil
}

// Update is a full-record replace of the user with the given id. Degraded
// updates of an id the mirror does not know leave the snapshot unchanged.
func (c *Controller) Update(ctx context.Context, id string, fields models.Fields) (Result, error) {
	if err := fields.Validate(); err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := c.remote.Update(ctx, id, fields)
	if err == nil {
		c.ensureLoaded(ctx)
		c.commit(ctx, mergeUser(c.users, *updated))
		return Result{Users: c.snapshot(), Status: StatusSynced}, nil
	}

	if !errors.Is(err, remote.ErrUnavailable) {
		return c.rejected(ctx, err), nil
	}

	c.ensureLoaded(ctx)
	next := c.snapshot()
	for i := range next {
		if next[i].ID == id {
			next[i] = models.User{ID: id, Name: fields.Name, Email: fields.Email, Phone: fields.Phone}
			break
		}
	}
	status := c.commitDegraded(ctx, next)
	return Result{Users: c.snapshot(), Status: status}, nil
}

// Delete removes the user with the given id. Deletes are idempotent on the
// degraded path: removing an id the snapshot no longer holds is not an error.
func (c *Controller) Delete(ctx context.Context, id string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.remote.Delete(ctx, id)
	if err == nil {
		c.ensureLoaded(ctx)
		c.commit(ctx, removeUser(c.users, id))
		return Result{Users: c.snapshot(), Status: StatusSynced}
	}

	if !errors.Is(err, remote.ErrUnavailable) {
		return c.rejected(ctx, err)
	}

	c.ensureLoaded(ctx)
	status := c.commitDegraded(ctx, removeUser(c.users, id))
	return Result{Users: c.snapshot(), Status: status}
}

// ActiveUser returns the session marker, sharing the controller's
// serialization so the store is never read mid-commit.
func (c *Controller) ActiveUser(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.GetActive(ctx)
}

// commit replaces the snapshot and writes it through to the mirror. The
// remote store already accepted the operation, so a mirror failure here
// only costs offline coverage; it is logged and does not change the status.
func (c *Controller) commit(ctx context.Context, users []models.User) {
	c.users = users
	c.loaded = true
	if err := c.mirror.Save(ctx, users); err != nil {
		c.logger.Warn(ctx, "mirror write-through failed", "error", err)
	}
}

// commitDegraded replaces the snapshot during fallback. Here the mirror is
// the only durable home of the mutation, so a save failure downgrades the
// status to StatusUnavailable.
func (c *Controller) commitDegraded(ctx context.Context, users []models.User) Status {
	c.users = users
	c.loaded = true
	if err := c.mirror.Save(ctx, users); err != nil {
		c.logger.Error(ctx, "mirror save failed during fallback", "error", err)
		return StatusUnavailable
	}
	return StatusDegraded
}

// ensureLoaded seeds the in-memory snapshot from the mirror the first time a
// mutation runs before any successful list.
func (c *Controller) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	cached, err := c.mirror.Load(ctx)
	if err != nil {
		c.logger.Error(ctx, "mirror load failed", "error", err)
		cached = nil
	}
	c.users = cached
	c.loaded = true
}

func (c *Controller) rejected(ctx context.Context, err error) Result {
	msg := err.Error()
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	c.logger.Info(ctx, "request rejected by backend", "reason", msg)
	return Result{Users: c.snapshot(), Status: StatusRejected, Message: msg}
}

func (c *Controller) markActive(ctx context.Context, name string) {
	if err := c.session.SetActive(ctx, name); err != nil {
		c.logger.Warn(ctx, "failed to persist active user marker", "error", err)
	}
}

// snapshot returns a copy so callers cannot mutate the controller's state.
func (c *Controller) snapshot() []models.User {
	return slices.Clone(c.users)
}

func mergeUser(users []models.User, u models.User) []models.User {
	next := slices.Clone(users)
	for i := range next {
		if next[i].ID == u.ID {
			next[i] = u
			return next
		}
	}
	return append(next, u)
}

func removeUser(users []models.User, id string) []models.User {
	next := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			next = append(next, u)
		}
	}
	return next
}
