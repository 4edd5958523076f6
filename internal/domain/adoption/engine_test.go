package adoption

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption/internal/domain/history"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStore struct {
	byID map[string]pets.Pet
}

func (s *testStore) GetByID(_ context.Context, id string) (pets.Pet, error) {
	p, ok := s.byID[id]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (s *testStore) Update(_ context.Context, p pets.Pet) error {
	if _, ok := s.byID[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	s.byID[p.ID] = p
	return nil
}

type testContacts map[string][2]string

func (c testContacts) OwnerContact(_ context.Context, userID string) (string, string, error) {
	v, ok := c[userID]
	if !ok {
		return "", "", errors.New("no such user")
	}
	return v[0], v[1], nil
}

type testHistory struct {
	recorded []history.RecordInput
}

func (h *testHistory) Record(_ context.Context, in history.RecordInput) error {
	h.recorded = append(h.recorded, in)
	return nil
}

type testObserver struct {
	seen []string
}

func (o *testObserver) ObserveTransition(name string) { o.seen = append(o.seen, name) }

type fixture struct {
	engine *Engine
	store  *testStore
	hist   *testHistory
	obs    *testObserver
	pet    pets.Pet
}

func newFixture() fixture {
	p := pets.Pet{
		ID:          uuid.NewString(),
		Name:        "Rex",
		Images:      []string{"rex.jpg"},
		OwnerUserID: "owner",
		Available:   true,
	}
	f := fixture{
		store: &testStore{byID: map[string]pets.Pet{p.ID: p}},
		hist:  &testHistory{},
		obs:   &testObserver{},
		pet:   p,
	}
	f.engine = NewEngine(f.store, testContacts{"owner": {"Ana", "+5511987654321"}}, Options{
		History:  f.hist,
		Observer: f.obs,
	})
	f.engine.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func (f fixture) current(t *testing.T) pets.Pet {
	t.Helper()
	p, err := f.store.GetByID(context.Background(), f.pet.ID)
	require.NoError(t, err)
	return p
}

func TestSchedule_OwnerCannotSchedule(t *testing.T) {
	f := newFixture()

	_, err := f.engine.Schedule(context.Background(), f.pet.ID, "owner")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Equal(t, "Você não pode agendar uma visita com o seu próprio pet!", apperr.MessageOf(err))
	assert.Empty(t, f.current(t).AdopterUserID)
}

func TestSchedule_SetsAdopterAndReturnsOwnerContact(t *testing.T) {
	f := newFixture()
	assert.Equal(t, StateAvailable, StateOf(f.current(t)))

	conf, err := f.engine.Schedule(context.Background(), f.pet.ID, "bob")
	require.NoError(t, err)

	assert.Equal(t, "A visita foi agendada com sucesso, entre em contato com Ana pelo telefone +5511987654321", conf.Message())
	assert.Empty(t, conf.PreviousAdopterUserID)

	p := f.current(t)
	assert.Equal(t, "bob", p.AdopterUserID)
	assert.Equal(t, StateReserved, StateOf(p))
	assert.Equal(t, []string{"scheduled"}, f.obs.seen)
	require.Len(t, f.hist.recorded, 1)
	assert.Equal(t, history.TypeVisitScheduled, f.hist.recorded[0].Type)
}

func TestSchedule_SameCallerTwiceConflicts(t *testing.T) {
	f := newFixture()

	_, err := f.engine.Schedule(context.Background(), f.pet.ID, "bob")
	require.NoError(t, err)

	_, err = f.engine.Schedule(context.Background(), f.pet.ID, "bob")
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "Você já agendou uma visita para esse Pet!", apperr.MessageOf(err))
}

func TestSchedule_DifferentCallerOverwritesAdopter(t *testing.T) {
	f := newFixture()

	_, err := f.engine.Schedule(context.Background(), f.pet.ID, "bob")
	require.NoError(t, err)

	conf, err := f.engine.Schedule(context.Background(), f.pet.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, "bob", conf.PreviousAdopterUserID)
	assert.Equal(t, "carol", f.current(t).AdopterUserID)

	// el adoptante anterior queda en el historial
	require.Len(t, f.hist.recorded, 2)
	assert.Equal(t, "bob", f.hist.recorded[0].ActorUserID)
	assert.Contains(t, f.hist.recorded[1].Notes, "bob")
}

func TestSchedule_ConcludedPetIsNotBlocked(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.engine.Conclude(context.Background(), f.pet.ID, "owner"))

	_, err := f.engine.Schedule(context.Background(), f.pet.ID, "bob")
	require.NoError(t, err)

	p := f.current(t)
	assert.False(t, p.Available)
	assert.Equal(t, StateConcluded, StateOf(p))
}

func TestSchedule_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.engine.Schedule(ctx, uuid.NewString(), "bob")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.engine.Schedule(ctx, "not-a-uuid", "bob")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.engine.Schedule(ctx, f.pet.ID, " ")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	// dueño sin contacto resoluble
	f.engine.contacts = testContacts{}
	_, err = f.engine.Schedule(ctx, f.pet.ID, "bob")
	assert.ErrorIs(t, err, apperr.ErrInternal)
	assert.Empty(t, f.current(t).AdopterUserID)
}

func TestConclude(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.engine.Conclude(ctx, f.pet.ID, "bob")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.True(t, f.current(t).Available)

	_, err = f.engine.Schedule(ctx, f.pet.ID, "bob")
	require.NoError(t, err)
	err = f.engine.Conclude(ctx, f.pet.ID, "bob")
	assert.ErrorIs(t, err, apperr.ErrForbidden, "el adoptante tampoco concluye")

	// idempotente
	require.NoError(t, f.engine.Conclude(ctx, f.pet.ID, "owner"))
	require.NoError(t, f.engine.Conclude(ctx, f.pet.ID, "owner"))
	assert.False(t, f.current(t).Available)
	assert.Equal(t, "bob", f.current(t).AdopterUserID)

	err = f.engine.Conclude(ctx, uuid.NewString(), "owner")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateAvailable, StateOf(pets.Pet{Available: true}))
	assert.Equal(t, StateReserved, StateOf(pets.Pet{Available: true, AdopterUserID: "b"}))
	assert.Equal(t, StateConcluded, StateOf(pets.Pet{Available: false, AdopterUserID: "b"}))
	assert.Equal(t, StateConcluded, StateOf(pets.Pet{Available: false}))
}
