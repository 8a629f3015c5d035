package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgetwise/internal/client"
	"github.com/carson-networks/budgetwise/internal/operator"
	"github.com/carson-networks/budgetwise/internal/operator/actions"
	"github.com/carson-networks/budgetwise/internal/service"
	"github.com/carson-networks/budgetwise/internal/settings"
	"github.com/carson-networks/budgetwise/internal/storage/account"
)

// memoryAccounts is an in-memory account table. Writes apply immediately, so
// Rollback only matters for the commit count.
type memoryAccounts struct {
	mu       sync.Mutex
	accounts []*account.Account
	clock    time.Time
}

func (m *memoryAccounts) List(ctx context.Context) ([]*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*account.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}

func (m *memoryAccounts) Create(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = m.clock.Add(time.Minute)
	created := &account.Account{ID: uuid.Must(uuid.NewV4()), Name: create.Name, Type: create.Type, CreatedAt: m.clock}
	m.accounts = append([]*account.Account{created}, m.accounts...)
	return created, nil
}

func (m *memoryAccounts) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.accounts {
		if a.ID == id {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return nil
		}
	}
	return account.ErrNotFound
}

func (m *memoryAccounts) Begin(ctx context.Context) (operator.Transaction, error) {
	return memoryTransaction{m}, nil
}

type memoryTransaction struct {
	accounts *memoryAccounts
}

func (t memoryTransaction) AccountWriter() actions.AccountWriter { return t.accounts }
func (t memoryTransaction) Commit() error                        { return nil }
func (t memoryTransaction) Rollback() error                      { return nil }

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

func newTestServer(t *testing.T, db pinger) (*httptest.Server, *memoryAccounts) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &memoryAccounts{clock: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	delegator := operator.NewOperatorDelegator(store, 1, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	rest := &Rest{
		Logger:  logger,
		Service: service.NewService(store, delegator),
		DB:      db,
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server, store
}

func TestHandler_Status(t *testing.T) {
	server, _ := newTestServer(t, fakePinger{})

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_StatusDatabaseDown(t *testing.T) {
	server, _ := newTestServer(t, fakePinger{err: errors.New("connection refused")})

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_Metrics(t *testing.T) {
	server, _ := newTestServer(t, fakePinger{})

	_, err := client.New(server.URL).List(context.Background())
	require.NoError(t, err)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "budget_server_http_requests_total")
}

func TestHandler_ControllerRoundTrip(t *testing.T) {
	server, store := newTestServer(t, fakePinger{})
	c := settings.NewController(client.New(server.URL))
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	assert.Empty(t, c.State().Entries)

	c.SetName("Checking")
	require.NoError(t, c.Submit(ctx))
	c.SetName("Wallet")
	require.NoError(t, c.SetType(client.AccountTypeCash))
	require.NoError(t, c.Submit(ctx))

	state := c.State()
	require.Len(t, state.Entries, 2)
	assert.Equal(t, "Wallet", state.Entries[0].Data().Name)
	assert.Equal(t, client.AccountTypeCash, state.Entries[0].Data().Type)
	assert.Equal(t, "Checking", state.Entries[1].Data().Name)

	// A fresh load sees exactly what the controller holds.
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, state.Entries, c.State().Entries)

	walletID := state.Entries[0].Key()
	require.NoError(t, c.Delete(ctx, walletID))
	assert.Len(t, c.State().Entries, 1)

	// Deleting behind the controller's back makes its next delete fail and roll back.
	checkingID := c.State().Entries[0].Key()
	require.NoError(t, store.Delete(ctx, uuid.FromStringOrNil(checkingID)))

	err := c.Delete(ctx, checkingID)
	assert.EqualError(t, err, "account not found")
	assert.Equal(t, []string{checkingID}, []string{c.State().Entries[0].Key()})
	assert.Equal(t, "account not found", c.State().Err)
}

func TestServe_WaitsForInFlightRequests(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	started := make(chan struct{})
	release := make(chan struct{})
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusNoContent)
	})}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan struct{})
	go func() {
		defer close(served)
		(&Rest{Logger: logger}).serve(ctx, server, listener)
	}()

	responded := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + listener.Addr().String())
		if err != nil {
			responded <- 0
			return
		}
		resp.Body.Close()
		responded <- resp.StatusCode
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}
	cancel()

	assert.Never(t, func() bool {
		select {
		case <-served:
			return true
		default:
			return false
		}
	}, 200*time.Millisecond, 10*time.Millisecond, "serve returned while a request was in flight")

	close(release)
	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the request drained")
	}
	assert.Equal(t, http.StatusNoContent, <-responded)
}
