// Package view implements the dashboard list pattern shared by every
// entity: fetch once, filter by search text, paginate by tens, gate the
// action buttons on the capability object, and merge form results back
// without refetching.
package view

import (
	"context"
	"log"
	"strings"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/permission"
)

const PageSize = 10

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// DeletePolicy is declared per entity instead of re-implemented per view.
type DeletePolicy int

const (
	// DeletePessimistic calls the API first and removes locally only on
	// success.
	DeletePessimistic DeletePolicy = iota
	// DeleteOptimistic removes locally right away and rolls back when the
	// API call fails. Reserved for low-risk, high-frequency deletes.
	DeleteOptimistic
)

// FailurePolicy says what a failed collection fetch does.
type FailurePolicy int

const (
	// FailNotify surfaces the error to the user.
	FailNotify FailurePolicy = iota
	// FailLog records it in the log and leaves the list empty.
	FailLog
)

// Binding describes one entity's list behavior.
type Binding[T any] struct {
	Module       string // permission module name
	Label        string // plural display name for messages
	Path         string // collection endpoint
	DeletePath   func(id string) string
	ID           func(T) string
	SearchText   func(T) string // concatenated searchable fields
	DeletePolicy DeletePolicy
	FetchFailure FailurePolicy
}

// List owns one entity collection and every piece of view state derived
// from it. A single instance is the only writer of its records.
type List[T any] struct {
	binding  Binding[T]
	client   *api.Client
	perms    *permission.Evaluator
	notifier notify.Notifier

	state   State
	records []T
	search  string
	page    int

	editing       *T
	creating      bool
	pendingDelete string
}

func NewList[T any](client *api.Client, perms *permission.Evaluator, notifier notify.Notifier, binding Binding[T]) *List[T] {
	return &List[T]{
		binding:  binding,
		client:   client,
		perms:    perms,
		notifier: notifier,
		page:     1,
	}
}

func (l *List[T]) State() State { return l.state }

// Fetch loads the full collection once. Failure behavior follows the
// binding's declared policy and always leaves the list empty.
func (l *List[T]) Fetch(ctx context.Context) {
	l.state = StateLoading
	records, err := api.FetchList[T](ctx, l.client, l.binding.Path)
	if err != nil {
		l.records = nil
		l.state = StateFailed
		message := api.Message(err, "Failed to load "+l.binding.Label+".")
		switch l.binding.FetchFailure {
		case FailNotify:
			l.notifier.Error(message)
		case FailLog:
			log.Printf("fetch %s: %s", l.binding.Label, message)
		}
		return
	}
	l.records = records
	l.page = 1
	l.state = StateReady
}

func (l *List[T]) Records() []T { return l.records }

// SetSearch updates the filter and snaps back to page 1.
func (l *List[T]) SetSearch(query string) {
	l.search = query
	l.page = 1
}

func (l *List[T]) Search() string { return l.search }

// Filtered returns records whose searchable text contains the query,
// case-insensitively.
func (l *List[T]) Filtered() []T {
	if l.search == "" {
		return l.records
	}
	query := strings.ToLower(l.search)
	var out []T
	for _, record := range l.records {
		if strings.Contains(strings.ToLower(l.binding.SearchText(record)), query) {
			out = append(out, record)
		}
	}
	return out
}

// PageCount is max(1, ceil(filtered/PageSize)).
func (l *List[T]) PageCount() int {
	n := len(l.Filtered())
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page is the current page, clamped after the filtered set shrinks.
func (l *List[T]) Page() int {
	if max := l.PageCount(); l.page > max {
		return max
	}
	return l.page
}

// Visible is the current page of the filtered records.
func (l *List[T]) Visible() []T {
	filtered := l.Filtered()
	start := (l.Page() - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (l *List[T]) CanPrev() bool { return l.Page() > 1 }
func (l *List[T]) CanNext() bool { return l.Page() < l.PageCount() }

func (l *List[T]) Prev() {
	if l.CanPrev() {
		l.page = l.Page() - 1
	}
}

func (l *List[T]) Next() {
	if l.CanNext() {
		l.page = l.Page() + 1
	}
}

// Action gating. The evaluator answers false while loading, so buttons
// stay hidden until the permission set arrives.

func (l *List[T]) CanCreate() bool {
	return l.perms.Has(permission.Key(l.binding.Module, "create"))
}

func (l *List[T]) CanUpdate() bool {
	return l.perms.Has(permission.Key(l.binding.Module, "update"))
}

func (l *List[T]) CanDelete() bool {
	return l.perms.Has(permission.Key(l.binding.Module, "delete"))
}

// Form sub-state.

func (l *List[T]) StartCreate() {
	l.creating = true
	l.editing = nil
}

func (l *List[T]) StartEdit(record T) {
	l.creating = false
	l.editing = &record
}

func (l *List[T]) CloseForm() {
	l.creating = false
	l.editing = nil
}

func (l *List[T]) Creating() bool { return l.creating }
func (l *List[T]) Editing() *T    { return l.editing }

// Delete confirmation sub-state.

func (l *List[T]) ConfirmDelete(id string) { l.pendingDelete = id }
func (l *List[T]) CancelDelete()           { l.pendingDelete = "" }
func (l *List[T]) PendingDelete() string   { return l.pendingDelete }

// Delete removes a record under the binding's declared policy.
func (l *List[T]) Delete(ctx context.Context, id string) {
	l.pendingDelete = ""
	switch l.binding.DeletePolicy {
	case DeleteOptimistic:
		l.deleteOptimistic(ctx, id)
	default:
		l.deletePessimistic(ctx, id)
	}
}

func (l *List[T]) deleteOptimistic(ctx context.Context, id string) {
	snapshot := l.records
	removed := l.removeLocal(id)
	if !removed {
		return
	}
	l.notifier.Success(l.binding.Label + " deleted successfully!")

	if err := l.client.Delete(ctx, l.binding.DeletePath(id)); err != nil {
		l.records = snapshot
		l.notifier.Error(api.Message(err, "Failed to delete. Changes were rolled back."))
	}
}

func (l *List[T]) deletePessimistic(ctx context.Context, id string) {
	if err := l.client.Delete(ctx, l.binding.DeletePath(id)); err != nil {
		l.notifier.Error(api.Message(err, "Failed to delete "+l.binding.Label+"."))
		return
	}
	l.removeLocal(id)
	l.notifier.Success(l.binding.Label + " deleted successfully!")
}

func (l *List[T]) removeLocal(id string) bool {
	for i, record := range l.records {
		if l.binding.ID(record) == id {
			l.records = append(append([]T(nil), l.records[:i]...), l.records[i+1:]...)
			return true
		}
	}
	return false
}

// ApplySave merges a saved record: in-place replacement when the id is
// already present, prepend otherwise. The collection is never refetched
// after a mutation.
func (l *List[T]) ApplySave(record T) {
	id := l.binding.ID(record)
	for i, existing := range l.records {
		if l.binding.ID(existing) == id {
			l.records[i] = record
			l.CloseForm()
			return
		}
	}
	l.records = append([]T{record}, l.records...)
	l.CloseForm()
}
