package repository

import (
	"context"
	"testing"

	"ligabet/domain/events"
	"ligabet/domain/interfaces"
	"ligabet/infrastructure"
	"ligabet/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(testDB *testutil.TestDatabase) interfaces.UnitOfWorkFactory {
	return NewUnitOfWorkFactory(testDB.DB, func() interfaces.TransactionalEventPublisher {
		return infrastructure.NewNoopEventPublisher()
	})
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := newTestFactory(testDB)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	_, err := uow.UserRepository().Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	user, err := NewUserRepository(testDB.DB).GetByDiscordID(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alpha", user.Username)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := newTestFactory(testDB)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	_, err := uow.UserRepository().Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback())

	user, err := NewUserRepository(testDB.DB).GetByDiscordID(ctx, 111)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUnitOfWork_RollbackAfterCommitIsNoop(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := newTestFactory(testDB)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.UserRepository().Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	assert.NoError(t, uow.Rollback())
}

func TestUnitOfWork_BeginTwiceFails(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := newTestFactory(testDB)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assert.Error(t, uow.Begin(ctx))
}

func TestUnitOfWork_RepositoriesPanicBeforeBegin(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := newTestFactory(testDB)

	uow := factory.Create()
	assert.Panics(t, func() { uow.UserRepository() })
	assert.Panics(t, func() { uow.BetRepository() })
}

// recordingPublisher buffers like the real transactional publisher but
// records what Flush and Discard see
type recordingPublisher struct {
	pending   []events.Event
	flushed   []events.Event
	discarded int
}

func (p *recordingPublisher) Publish(event events.Event) error {
	p.pending = append(p.pending, event)
	return nil
}

func (p *recordingPublisher) Flush(ctx context.Context) {
	p.flushed = append(p.flushed, p.pending...)
	p.pending = nil
}

func (p *recordingPublisher) Discard() {
	p.discarded += len(p.pending)
	p.pending = nil
}

func TestUnitOfWork_EventsFollowTransaction(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	publisher := &recordingPublisher{}
	factory := NewUnitOfWorkFactory(testDB.DB, func() interfaces.TransactionalEventPublisher {
		return publisher
	})

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.EventBus().Publish(events.UserCreatedEvent{DiscordID: 111, Username: "alpha", InitialBalance: 1000}))
	require.NoError(t, uow.Commit())

	require.Len(t, publisher.flushed, 1)
	assert.Equal(t, events.EventTypeUserCreated, publisher.flushed[0].Type())

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.EventBus().Publish(events.UserCreatedEvent{DiscordID: 222, Username: "beta", InitialBalance: 1000}))
	require.NoError(t, uow.Rollback())

	assert.Equal(t, 1, publisher.discarded)
	assert.Len(t, publisher.flushed, 1)
}
