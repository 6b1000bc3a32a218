package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
)

type fakeOrderedStore struct {
	refs       []models.OrderedRef
	updates    []models.OrderedRef
	renumbered [][]models.OrderedRef
}

func (f *fakeOrderedStore) OrderedRefs() ([]models.OrderedRef, error) {
	out := make([]models.OrderedRef, len(f.refs))
	copy(out, f.refs)
	return out, nil
}

func (f *fakeOrderedStore) UpdateSortOrder(id string, sortOrder int) error {
	f.updates = append(f.updates, models.OrderedRef{ID: id, SortOrder: sortOrder})
	f.apply(models.OrderedRef{ID: id, SortOrder: sortOrder})
	return nil
}

func (f *fakeOrderedStore) RenumberAll(refs []models.OrderedRef) error {
	snapshot := make([]models.OrderedRef, len(refs))
	copy(snapshot, refs)
	f.renumbered = append(f.renumbered, snapshot)
	for _, ref := range refs {
		f.apply(ref)
	}
	return nil
}

func (f *fakeOrderedStore) apply(ref models.OrderedRef) {
	for i := range f.refs {
		if f.refs[i].ID == ref.ID {
			f.refs[i].SortOrder = ref.SortOrder
		}
	}
}

// displayOrder returns the ids sorted by their persisted sort order.
func (f *fakeOrderedStore) displayOrder() []string {
	sorted := make([]models.OrderedRef, len(f.refs))
	copy(sorted, f.refs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })
	ids := make([]string, len(sorted))
	for i, ref := range sorted {
		ids[i] = ref.ID
	}
	return ids
}

func newFakeStore(ids []string, orders []int) *fakeOrderedStore {
	refs := make([]models.OrderedRef, len(ids))
	for i := range ids {
		refs[i] = models.OrderedRef{ID: ids[i], SortOrder: orders[i]}
	}
	return &fakeOrderedStore{refs: refs}
}

func TestMoveStepSwapsNeighbours(t *testing.T) {
	store := newFakeStore([]string{"a", "b", "c"}, []int{0, 1, 2})
	reorderer := NewReorderer(store)

	require.NoError(t, reorderer.MoveStep("b", DirectionUp))

	assert.Equal(t, []string{"b", "a", "c"}, store.displayOrder())
	// a pure swap of the two neighbours, c untouched
	assert.Equal(t, []models.OrderedRef{{ID: "b", SortOrder: 0}, {ID: "a", SortOrder: 1}}, store.updates)
	assert.Empty(t, store.renumbered)
}

func TestMoveStepBoundaryIsNoOp(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		direction Direction
	}{
		{"first item up", "a", DirectionUp},
		{"last item down", "c", DirectionDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore([]string{"a", "b", "c"}, []int{0, 1, 2})
			reorderer := NewReorderer(store)

			require.NoError(t, reorderer.MoveStep(tc.id, tc.direction))

			assert.Empty(t, store.updates)
			assert.Equal(t, []string{"a", "b", "c"}, store.displayOrder())
		})
	}
}

func TestMoveStepRenumbersDuplicatesFirst(t *testing.T) {
	store := newFakeStore([]string{"a", "b", "c"}, []int{0, 0, 0})
	reorderer := NewReorderer(store)

	require.NoError(t, reorderer.MoveStep("b", DirectionUp))

	require.Len(t, store.renumbered, 1)
	assert.Equal(t, []models.OrderedRef{
		{ID: "a", SortOrder: 0},
		{ID: "b", SortOrder: 1},
		{ID: "c", SortOrder: 2},
	}, store.renumbered[0])

	// the requested swap still applies after normalization
	assert.Equal(t, []string{"b", "a", "c"}, store.displayOrder())
}

func TestMoveStepUnknownItem(t *testing.T) {
	store := newFakeStore([]string{"a"}, []int{0})
	reorderer := NewReorderer(store)

	err := reorderer.MoveStep("nope", DirectionUp)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Empty(t, store.updates)
}

func TestMoveStepInvalidDirection(t *testing.T) {
	store := newFakeStore([]string{"a"}, []int{0})
	reorderer := NewReorderer(store)

	assert.Error(t, reorderer.MoveStep("a", Direction("sideways")))
}

func TestSetOrderRoundTrip(t *testing.T) {
	store := newFakeStore([]string{"id1", "id2", "id3"}, []int{0, 1, 2})
	reorderer := NewReorderer(store)

	require.NoError(t, reorderer.SetOrder([]string{"id3", "id1", "id2"}))

	require.Len(t, store.renumbered, 1)
	assert.Equal(t, []models.OrderedRef{
		{ID: "id3", SortOrder: 0},
		{ID: "id1", SortOrder: 1},
		{ID: "id2", SortOrder: 2},
	}, store.renumbered[0])
	assert.Equal(t, []string{"id3", "id1", "id2"}, store.displayOrder())
}

func TestSetOrderEmptyList(t *testing.T) {
	reorderer := NewReorderer(newFakeStore(nil, nil))

	assert.Error(t, reorderer.SetOrder(nil))
}
