package history

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-adoption/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	entries []Entry
	failing bool
}

func (r *testRepo) Create(_ context.Context, e Entry) error {
	if r.failing {
		return errors.New("db down")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *testRepo) ListByPet(_ context.Context, petID string, filter ListFilter) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.PetID != petID {
			continue
		}
		if len(filter.Types) > 0 {
			match := false
			for _, t := range filter.Types {
				match = match || t == e.Type
			}
			if !match {
				continue
			}
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func TestRecordAndList(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	ctx := context.Background()
	require.NoError(t, svc.Record(ctx, RecordInput{PetID: "p1", Type: TypePetCreated, ActorUserID: "a"}))
	require.NoError(t, svc.Record(ctx, RecordInput{PetID: "p1", Type: TypeVisitScheduled, ActorUserID: "b"}))
	require.NoError(t, svc.Record(ctx, RecordInput{PetID: "p1", Type: TypeVisitScheduled, ActorUserID: "c"}))
	require.NoError(t, svc.Record(ctx, RecordInput{PetID: "p2", Type: TypePetCreated, ActorUserID: "a"}))

	items, err := svc.ListByPet(ctx, "p1", ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	// el adoptante anterior sigue en el historial
	assert.Equal(t, "c", items[0].ActorUserID)
	assert.Equal(t, "b", items[1].ActorUserID)

	items, err = svc.ListByPet(ctx, "p1", ListFilter{Types: []EntryType{TypePetCreated}, Limit: 500})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestRecord_RejectsInvalidAndWrapsRepoErrors(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil)

	err := svc.Record(context.Background(), RecordInput{PetID: "p1", Type: "BATH", ActorUserID: "a"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	repo.failing = true
	err = svc.Record(context.Background(), RecordInput{PetID: "p1", Type: TypePetCreated, ActorUserID: "a"})
	assert.ErrorIs(t, err, apperr.ErrInternal)
}
