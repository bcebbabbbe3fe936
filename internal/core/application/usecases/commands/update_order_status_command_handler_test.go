package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/clock"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var expectedTransitions = map[order.Status][]order.Status{
	order.Created:         {order.OrderAccepted, order.Cancelled},
	order.OrderAccepted:   {order.InProgress, order.Cancelled},
	order.InProgress:      {order.WaitingDelivery, order.Cancelled},
	order.WaitingDelivery: {order.Delivering, order.Cancelled},
	order.Delivering:      {order.Completed, order.Cancelled},
}

// versionedOrderRepository holds a single order and applies the same
// conditional write as the database adapter. Every read returns a fresh copy.
type versionedOrderRepository struct {
	mu sync.Mutex

	id            kernel.UUID
	restaurantID  kernel.UUID
	status        order.Status
	lastUpdatedAt time.Time
	version       kernel.UUID
	managers      []string

	// beforeUpdate runs inside Update ahead of the version check.
	beforeUpdate func(r *versionedOrderRepository)

	reads   int
	updates int
}

func newVersionedOrderRepository(status order.Status, managers ...string) *versionedOrderRepository {
	return &versionedOrderRepository{
		id:            kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		status:        status,
		lastUpdatedAt: now.Add(-time.Hour),
		version:       kernel.NewUUID(),
		managers:      managers,
	}
}

// concurrentWrite simulates another writer committing between our read and
// our write.
func (r *versionedOrderRepository) concurrentWrite(status order.Status) {
	r.status = status
	r.version = kernel.NewUUID()
}

func (r *versionedOrderRepository) Add(context.Context, *order.Order) error {
	return errors.New("not supported")
}

func (r *versionedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, _, err := r.GetWithManagers(ctx, id)
	return o, err
}

func (r *versionedOrderRepository) GetWithManagers(_ context.Context, id kernel.UUID) (*order.Order, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reads++
	if !id.IsEqual(r.id) {
		return nil, nil, errs.NewObjectNotFoundError("order", id.String())
	}
	o, err := order.RestoreOrder(
		r.id, r.restaurantID, "pho", r.status, now.Add(-2*time.Hour), "alice", r.lastUpdatedAt, r.version,
	)
	return o, append([]string(nil), r.managers...), err
}

func (r *versionedOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.beforeUpdate != nil {
		r.beforeUpdate(r)
	}
	if !o.OriginalVersion().IsEqual(r.version) {
		return errs.NewVersionIsInvalidError("order")
	}
	r.updates++
	r.status = o.Status()
	r.lastUpdatedAt = o.LastUpdatedAt()
	r.version = o.Version()
	return nil
}

func newPassiveUoW(repo *versionedOrderRepository) (*MockUoW, *MockOrderUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newUpdateHandler(factory commands.OrderUoWFactory) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(factory, clock.NewFixed(now), discardLogger())
}

func TestUpdateOrderStatusCommandHandler_Handle_TransitionGrid(t *testing.T) {
	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				repo := newVersionedOrderRepository(from, "bob")
				_, factory := newPassiveUoW(repo)
				h := newUpdateHandler(factory)
				cmd, err := commands.NewUpdateOrderStatusCommand(repo.id.String(), to, "root", true)
				require.NoError(t, err)

				result, err := h.Handle(t.Context(), cmd)
				require.NoError(t, err)

				if slices.Contains(expectedTransitions[from], to) {
					assert.Equal(t, commands.UpdateOrderStatusSucceeded, result.Type)
					assert.Empty(t, result.Errors)
					assert.Equal(t, to, repo.status)
					assert.Equal(t, now, repo.lastUpdatedAt)
					return
				}

				assert.Equal(t, commands.UpdateOrderStatusWrongOrderStatus, result.Type)
				assert.Equal(t, []string{
					"Order with ID '" + repo.id.String() + "' cannot be updated to status '" + to.String() + "'.",
				}, result.Errors)
				assert.Equal(t, from, repo.status)
				assert.Equal(t, 0, repo.updates)
			})
		}
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_ManagerMaySucceed(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob", "carol")
	uow, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "carol", false)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusSucceeded, result.Type)
	assert.Equal(t, order.OrderAccepted, repo.status)
	assert.Equal(t, now, repo.lastUpdatedAt)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestUpdateOrderStatusCommandHandler_Handle_ChangesVersion(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	before := repo.version
	_, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.Cancelled, "bob", false)

	_, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.False(t, repo.version.IsEqual(before))
}

func TestUpdateOrderStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	tests := []struct {
		name      string
		requester string
	}{
		{name: "order creator", requester: "alice"},
		{name: "stranger", requester: "mallory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range order.Statuses() {
				for _, to := range order.Statuses() {
					repo := newVersionedOrderRepository(from, "bob")
					uow, factory := newPassiveUoW(repo)
					h := newUpdateHandler(factory)
					cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), to, tt.requester, false)

					result, err := h.Handle(t.Context(), cmd)

					require.NoError(t, err)
					assert.Equal(t, commands.UpdateOrderStatusForbidden, result.Type)
					assert.Equal(t, []string{
						"User '" + tt.requester + "' is not authorized to update order with ID '" + repo.id.String() + "'.",
					}, result.Errors)
					assert.Equal(t, from, repo.status)
					uow.AssertNotCalled(t, "Commit", mock.Anything)
				}
			}
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	uow, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	missing := kernel.NewUUID().String()
	cmd, _ := commands.NewUpdateOrderStatusCommand(missing, order.OrderAccepted, "root", true)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusOrderNotFound, result.Type)
	assert.Equal(t, []string{"Order with ID '" + missing + "' not found."}, result.Errors)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NonUUIDOrderID(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand("order-42", order.OrderAccepted, "root", true)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusOrderNotFound, result.Type)
	assert.Equal(t, []string{"Order with ID 'order-42' not found."}, result.Errors)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_NotIdempotent(t *testing.T) {
	repo := newVersionedOrderRepository(order.Delivering, "bob")
	_, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.Completed, "bob", false)

	first, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	second, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.UpdateOrderStatusSucceeded, first.Type)
	assert.Equal(t, commands.UpdateOrderStatusWrongOrderStatus, second.Type)
	assert.Equal(t, []string{
		"Order with ID '" + repo.id.String() + "' cannot be updated to status 'Completed'.",
	}, second.Errors)
}

func TestUpdateOrderStatusCommandHandler_Handle_RetriesVersionConflict(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	conflicts := 2
	repo.beforeUpdate = func(r *versionedOrderRepository) {
		if conflicts > 0 {
			conflicts--
			r.version = kernel.NewUUID()
		}
	}
	uow, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusSucceeded, result.Type)
	assert.Equal(t, order.OrderAccepted, repo.status)
	assert.Equal(t, 3, repo.reads)
	assert.Equal(t, 1, repo.updates)
	factory.AssertNumberOfCalls(t, "Create", 3)
	uow.AssertNumberOfCalls(t, "Rollback", 3)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestUpdateOrderStatusCommandHandler_Handle_RevalidatesAfterConflict(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	raced := false
	repo.beforeUpdate = func(r *versionedOrderRepository) {
		if !raced {
			raced = true
			r.concurrentWrite(order.Cancelled)
		}
	}
	_, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusWrongOrderStatus, result.Type)
	assert.Equal(t, order.Cancelled, repo.status)
	assert.Equal(t, 2, repo.reads)
	assert.Equal(t, 0, repo.updates)
}

func TestUpdateOrderStatusCommandHandler_Handle_RetriesExhausted(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	repo.beforeUpdate = func(r *versionedOrderRepository) {
		r.version = kernel.NewUUID()
	}
	uow, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, retry.ErrExhausted)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.Equal(t, commands.DefaultConcurrencyRetries+1, repo.reads)
	assert.Equal(t, order.Created, repo.status)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	repo := newVersionedOrderRepository(order.Created, "bob")
	repo.beforeUpdate = func(r *versionedOrderRepository) {
		r.version = kernel.NewUUID()
		cancel()
	}
	_, factory := newPassiveUoW(repo)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, repo.reads)
}

func TestUpdateOrderStatusCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	factory := new(MockOrderUoWFactory)
	h := newUpdateHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(kernel.NewUUID().String(), order.OrderAccepted, "bob", true)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentUpdates(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob", "carol")

	// Both writers read the same version before either writes.
	var readBoth sync.WaitGroup
	readBoth.Add(2)
	gate := &gatedOrderRepository{versionedOrderRepository: repo, firstReads: &readBoth}
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(gate)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	h := newUpdateHandler(factory)

	accept, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)
	cancelOrder, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.Cancelled, "carol", false)

	results := make([]commands.UpdateOrderStatusResult, 2)
	errsOut := make([]error, 2)
	var wg sync.WaitGroup
	for i, cmd := range []commands.UpdateOrderStatusCommand{accept, cancelOrder} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errsOut[i] = h.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	require.NoError(t, errsOut[0])
	require.NoError(t, errsOut[1])
	// Whichever writer lost re-read the order and re-validated; both orders of
	// arrival end in Cancelled being stored.
	assert.Equal(t, order.Cancelled, repo.status)
	assert.Equal(t, commands.UpdateOrderStatusSucceeded, results[1].Type)
	assert.Equal(t, 3, repo.reads)
}

// gatedOrderRepository holds the first two reads until both have happened, so
// two handlers are guaranteed to load the same version.
type gatedOrderRepository struct {
	*versionedOrderRepository
	firstReads *sync.WaitGroup

	mu    sync.Mutex
	gated int
}

func (g *gatedOrderRepository) GetWithManagers(ctx context.Context, id kernel.UUID) (*order.Order, []string, error) {
	o, managers, err := g.versionedOrderRepository.GetWithManagers(ctx, id)

	g.mu.Lock()
	wait := g.gated < 2
	g.gated++
	g.mu.Unlock()

	if wait {
		g.firstReads.Done()
		g.firstReads.Wait()
	}
	return o, managers, err
}

type logRecord map[string]any

func newRecordingHandler(factory commands.OrderUoWFactory) (commands.UpdateOrderStatusCommandHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return commands.NewUpdateOrderStatusCommandHandler(factory, clock.NewFixed(now), logger), &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()
	var records []logRecord
	for line := range strings.Lines(buf.String()) {
		var rec logRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestUpdateOrderStatusCommandHandler_Handle_LogsWarningPerRetry(t *testing.T) {
	repo := newVersionedOrderRepository(order.Created, "bob")
	conflicts := 2
	repo.beforeUpdate = func(r *versionedOrderRepository) {
		if conflicts > 0 {
			conflicts--
			r.version = kernel.NewUUID()
		}
	}
	_, factory := newPassiveUoW(repo)
	h, buf := newRecordingHandler(factory)
	cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, "bob", false)

	result, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.UpdateOrderStatusSucceeded, result.Type)

	records := decodeRecords(t, buf)
	require.Len(t, records, 2)
	for i, rec := range records {
		assert.Equal(t, "WARN", rec["level"])
		assert.Equal(t, repo.id.String(), rec["order_id"])
		assert.EqualValues(t, i+1, rec["retry"])
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_BusinessOutcomesAreNotLogged(t *testing.T) {
	tests := []struct {
		name      string
		from      order.Status
		requester string
		want      commands.UpdateOrderStatusResultType
	}{
		{name: "wrong status", from: order.Completed, requester: "bob", want: commands.UpdateOrderStatusWrongOrderStatus},
		{name: "forbidden", from: order.Created, requester: "mallory", want: commands.UpdateOrderStatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newVersionedOrderRepository(tt.from, "bob")
			_, factory := newPassiveUoW(repo)
			h, buf := newRecordingHandler(factory)
			cmd, _ := commands.NewUpdateOrderStatusCommand(repo.id.String(), order.OrderAccepted, tt.requester, false)

			result, err := h.Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Type)
			assert.Empty(t, buf.String())
		})
	}
}
