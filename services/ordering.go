package services

import (
	"fmt"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
)

// Direction of a single-step reorder.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// OrderedStore is the slice of repository behavior the reordering engine
// needs. Project and certificate repos both satisfy it.
type OrderedStore interface {
	OrderedRefs() ([]models.OrderedRef, error)
	UpdateSortOrder(id string, sortOrder int) error
	RenumberAll(refs []models.OrderedRef) error
}

// Reorderer maintains the persisted display order of one collection.
type Reorderer struct {
	store OrderedStore
}

func NewReorderer(store OrderedStore) Reorderer {
	return Reorderer{store}
}

// MoveStep moves one item a single position up or down.
//
// Duplicate sort orders (typically left behind by bulk imports) are first
// renumbered to each item's current display index so a step move is always
// meaningful. Moving past either end of the list is a successful no-op. The
// move itself swaps the two neighbours' sort orders; no other row is touched,
// so a step never perturbs what a concurrent editor is looking at.
func (r Reorderer) MoveStep(id string, direction Direction) error {
	if direction != DirectionUp && direction != DirectionDown {
		return errs.NewBadRequestError(fmt.Sprintf("invalid direction %q", direction))
	}

	refs, err := r.store.OrderedRefs()
	if err != nil {
		return err
	}

	if hasDuplicateOrders(refs) {
		for i := range refs {
			refs[i].SortOrder = i
		}
		if err := r.store.RenumberAll(refs); err != nil {
			return err
		}
	}

	index := -1
	for i, ref := range refs {
		if ref.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return errs.NewNotFoundError("item not found")
	}

	target := index - 1
	if direction == DirectionDown {
		target = index + 1
	}
	if target < 0 || target >= len(refs) {
		// boundary move, nothing to do
		return nil
	}

	if err := r.store.UpdateSortOrder(refs[index].ID, refs[target].SortOrder); err != nil {
		return err
	}
	return r.store.UpdateSortOrder(refs[target].ID, refs[index].SortOrder)
}

// SetOrder persists a caller-supplied full ordering (drag and drop). Every id
// gets its position index as sort order, written in one transaction.
func (r Reorderer) SetOrder(orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return errs.NewBadRequestError("ordered id list is empty")
	}

	refs := make([]models.OrderedRef, len(orderedIDs))
	for i, id := range orderedIDs {
		refs[i] = models.OrderedRef{ID: id, SortOrder: i}
	}
	return r.store.RenumberAll(refs)
}

func hasDuplicateOrders(refs []models.OrderedRef) bool {
	seen := make(map[int]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.SortOrder]; ok {
			return true
		}
		seen[ref.SortOrder] = struct{}{}
	}
	return false
}
