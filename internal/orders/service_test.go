package orders_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/ariefcatur/go-seller-orders/internal/memstore"
	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingSink struct {
	mu     sync.Mutex
	events []orders.Envelope
}

func (r *recordingSink) Emit(_ context.Context, env orders.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, env)
	return nil
}

func (r *recordingSink) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		out = append(out, e.EventType)
	}
	return out
}

type fixture struct {
	svc   *orders.Service
	store *memstore.Store
	sink  *recordingSink
}

func newFixture(t *testing.T, release bool) fixture {
	t.Helper()
	st := memstore.New()
	sink := &recordingSink{}
	return fixture{
		svc: &orders.Service{
			Store:        st,
			Hasher:       auth.BcryptHasher{Cost: bcrypt.MinCost},
			Tokens:       auth.NewJWTIssuer("test-secret", time.Hour),
			Events:       sink,
			Name:         "test",
			ReleaseStock: release,
		},
		store: st,
		sink:  sink,
	}
}

func as(seller string) context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{ID: seller})
}

func (f fixture) product(t *testing.T, ctx context.Context, name string, price, stock int) orders.Product {
	t.Helper()
	p, err := f.svc.CreateProduct(ctx, orders.ProductInput{Name: name, PriceCents: price, Stock: stock})
	require.NoError(t, err)
	return p
}

func (f fixture) client(t *testing.T, ctx context.Context, email string) orders.Client {
	t.Helper()
	c, err := f.svc.CreateClient(ctx, orders.ClientInput{Name: "Client", LastName: "Test", Company: "ACME", Email: email})
	require.NoError(t, err)
	return c
}

func (f fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.store.GetProduct(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func TestCreateOrderEndToEnd(t *testing.T) {
	f := newFixture(t, true)
	seller, other := uuid.NewString(), uuid.NewString()
	ctx := as(seller)

	p := f.product(t, ctx, "Laptop", 1500, 5)
	c := f.client(t, ctx, "client@acme.io")

	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 3}}})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, o.Status)
	assert.Equal(t, seller, o.Owner)
	assert.Equal(t, 3*1500, o.TotalCents)
	assert.Equal(t, 2, f.stock(t, p.ID))

	mine, err := f.svc.MyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, o.ID, mine[0].ID)

	theirs, err := f.svc.MyOrders(as(other))
	require.NoError(t, err)
	assert.Empty(t, theirs)

	require.Equal(t, []string{orders.EventOrderCreated}, f.sink.types())
	var payload orders.OrderEventPayload
	require.NoError(t, json.Unmarshal(f.sink.events[0].Payload, &payload))
	assert.Equal(t, o.ID, payload.OrderID)
	assert.Equal(t, []orders.LineQty{{ProductID: p.ID, Qty: 3}}, payload.Reserved)
}

func TestCreateOrderIsFailureAtomic(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	a := f.product(t, ctx, "Keyboard", 100, 10)
	b := f.product(t, ctx, "Monitor", 900, 1)
	c := f.client(t, ctx, "c@acme.io")

	_, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{
		{ProductID: a.ID, Qty: 4},
		{ProductID: b.ID, Qty: 2},
	}})
	require.ErrorIs(t, err, orders.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Monitor")

	assert.Equal(t, 10, f.stock(t, a.ID))
	assert.Equal(t, 1, f.stock(t, b.ID))
	all, err := f.svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.sink.types())
}

func TestCreateOrderFailures(t *testing.T) {
	f := newFixture(t, true)
	seller := uuid.NewString()
	ctx := as(seller)
	p := f.product(t, ctx, "Mouse", 50, 3)
	c := f.client(t, ctx, "m@acme.io")

	_, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: uuid.NewString(), Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	assert.ErrorIs(t, err, orders.ErrNotFound)

	_, err = f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: uuid.NewString(), Qty: 1}}})
	assert.ErrorIs(t, err, orders.ErrNotFound)

	_, err = f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 0}}})
	assert.ErrorIs(t, err, orders.ErrValidation)

	_, err = f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID})
	assert.ErrorIs(t, err, orders.ErrValidation)

	_, err = f.svc.CreateOrder(as(uuid.NewString()), orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)

	_, err = f.svc.CreateOrder(context.Background(), orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)

	assert.Equal(t, 3, f.stock(t, p.ID))
}

func TestConcurrentOrdersNeverOverdraw(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Ticket", 10, 10)
	c := f.client(t, ctx, "t@acme.io")

	var ok atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
			if err == nil {
				ok.Add(1)
				return
			}
			assert.ErrorIs(t, err, orders.ErrInsufficientStock)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), ok.Load())
	assert.Equal(t, 0, f.stock(t, p.ID))
}

func TestOwnershipIsEnforced(t *testing.T) {
	f := newFixture(t, true)
	a, b := as(uuid.NewString()), as(uuid.NewString())
	p := f.product(t, a, "Desk", 200, 10)
	c := f.client(t, a, "owned@acme.io")
	o, err := f.svc.CreateOrder(a, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	require.NoError(t, err)

	_, err = f.svc.GetClient(b, c.ID)
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
	_, err = f.svc.UpdateClient(b, c.ID, orders.ClientInput{Name: "X", Email: "x@acme.io"})
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
	assert.ErrorIs(t, f.svc.DeleteClient(b, c.ID), orders.ErrCredentialsInvalid)

	_, err = f.svc.GetOrder(b, o.ID)
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
	_, err = f.svc.UpdateOrder(b, o.ID, orders.OrderInput{Client: c.ID})
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
	assert.ErrorIs(t, f.svc.DeleteOrder(b, o.ID), orders.ErrCredentialsInvalid)

	// not found stays distinct from a denial
	_, err = f.svc.GetOrder(b, uuid.NewString())
	assert.ErrorIs(t, err, orders.ErrNotFound)
	assert.NotErrorIs(t, err, orders.ErrCredentialsInvalid)
	_, err = f.svc.GetClient(b, uuid.NewString())
	assert.ErrorIs(t, err, orders.ErrNotFound)

	got, err := f.svc.GetOrder(a, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, 9, f.stock(t, p.ID))
}

func TestUpdateOrderCannotMoveToForeignClient(t *testing.T) {
	f := newFixture(t, true)
	a, b := as(uuid.NewString()), as(uuid.NewString())
	p := f.product(t, a, "Lamp", 30, 5)
	ca := f.client(t, a, "a@acme.io")
	cb := f.client(t, b, "b@acme.io")
	o, err := f.svc.CreateOrder(a, orders.OrderInput{Client: ca.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	require.NoError(t, err)

	_, err = f.svc.UpdateOrder(a, o.ID, orders.OrderInput{Client: cb.ID})
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)

	_, err = f.svc.UpdateOrder(a, uuid.NewString(), orders.OrderInput{Client: ca.ID})
	assert.ErrorIs(t, err, orders.ErrNotFound)
	_, err = f.svc.UpdateOrder(a, o.ID, orders.OrderInput{Client: uuid.NewString()})
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestUpdateOrderReleasesThenReserves(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Chair", 40, 5)
	c := f.client(t, ctx, "chair@acme.io")
	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 3}}})
	require.NoError(t, err)
	require.Equal(t, 2, f.stock(t, p.ID))

	o, err = f.svc.UpdateOrder(ctx, o.ID, orders.OrderInput{Lines: []orders.LineInput{{ProductID: p.ID, Qty: 4}}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.stock(t, p.ID))
	assert.Equal(t, 4*40, o.TotalCents)

	// 1 left plus 4 released is not enough for 6: nothing changes
	_, err = f.svc.UpdateOrder(ctx, o.ID, orders.OrderInput{Lines: []orders.LineInput{{ProductID: p.ID, Qty: 6}}})
	assert.ErrorIs(t, err, orders.ErrInsufficientStock)
	assert.Equal(t, 1, f.stock(t, p.ID))
	got, err := f.svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Lines[0].Qty)
}

func TestUpdateOrderWithoutReleaseReservesAgain(t *testing.T) {
	f := newFixture(t, false)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Pen", 2, 5)
	c := f.client(t, ctx, "pen@acme.io")
	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 3}}})
	require.NoError(t, err)

	_, err = f.svc.UpdateOrder(ctx, o.ID, orders.OrderInput{Lines: []orders.LineInput{{ProductID: p.ID, Qty: 2}}})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t, p.ID))

	require.NoError(t, f.svc.DeleteOrder(ctx, o.ID))
	assert.Equal(t, 0, f.stock(t, p.ID))
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Book", 12, 10)
	c := f.client(t, ctx, "book@acme.io")
	newOrder := func(qty int) orders.Order {
		o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: qty}}})
		require.NoError(t, err)
		return o
	}

	done := newOrder(2)
	done, err := f.svc.UpdateOrder(ctx, done.ID, orders.OrderInput{Status: orders.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusCompleted, done.Status)
	_, err = f.svc.UpdateOrder(ctx, done.ID, orders.OrderInput{Status: orders.StatusPending})
	assert.ErrorIs(t, err, orders.ErrValidation)
	_, err = f.svc.UpdateOrder(ctx, done.ID, orders.OrderInput{Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	assert.ErrorIs(t, err, orders.ErrValidation)

	cancelled := newOrder(3)
	require.Equal(t, 5, f.stock(t, p.ID))
	_, err = f.svc.UpdateOrder(ctx, cancelled.ID, orders.OrderInput{Status: orders.StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, 8, f.stock(t, p.ID))

	// cancelled orders already gave their stock back
	require.NoError(t, f.svc.DeleteOrder(ctx, cancelled.ID))
	assert.Equal(t, 8, f.stock(t, p.ID))

	pending := newOrder(1)
	require.NoError(t, f.svc.DeleteOrder(ctx, pending.ID))
	assert.Equal(t, 8, f.stock(t, p.ID))

	byStatus, err := f.svc.OrdersByStatus(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, done.ID, byStatus[0].ID)

	_, err = f.svc.OrdersByStatus(ctx, "LOST")
	assert.ErrorIs(t, err, orders.ErrValidation)
}

func TestStatusInputIsCaseInsensitive(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Pen", 3, 10)
	c := f.client(t, ctx, "pen@acme.io")

	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{
		Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}, Status: " pending",
	})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, o.Status)

	o, err = f.svc.UpdateOrder(ctx, o.ID, orders.OrderInput{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusCompleted, o.Status)

	stored, err := f.svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusCompleted, stored.Status)

	_, err = f.svc.CreateOrder(ctx, orders.OrderInput{
		Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}, Status: "cancelled",
	})
	assert.ErrorIs(t, err, orders.ErrValidation)
	_, err = f.svc.UpdateOrder(ctx, o.ID, orders.OrderInput{Status: "shipped"})
	assert.ErrorIs(t, err, orders.ErrValidation)
}

func TestOrderTotalOverflowIsRejected(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Yacht", 1<<30, 3)
	c := f.client(t, ctx, "yacht@acme.io")

	_, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 2}}})
	require.ErrorIs(t, err, orders.ErrValidation)
	assert.Equal(t, 3, f.stock(t, p.ID))

	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	require.NoError(t, err)
	assert.Equal(t, 1<<30, o.TotalCents)
}

func TestDeleteOrderAfterProductRemoved(t *testing.T) {
	f := newFixture(t, true)
	ctx := as(uuid.NewString())
	p := f.product(t, ctx, "Ghost", 1, 2)
	c := f.client(t, ctx, "ghost@acme.io")
	o, err := f.svc.CreateOrder(ctx, orders.OrderInput{Client: c.ID, Lines: []orders.LineInput{{ProductID: p.ID, Qty: 1}}})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProduct(ctx, p.ID))
	require.NoError(t, f.svc.DeleteOrder(ctx, o.ID))
	_, err = f.svc.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	u, err := f.svc.RegisterUser(ctx, orders.UserInput{Name: "Ana", LastName: "Diaz", Email: "Ana@Shop.io", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@shop.io", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	_, err = f.svc.RegisterUser(ctx, orders.UserInput{Name: "Impostor", Email: "ana@shop.io", Password: "another1"})
	assert.ErrorIs(t, err, orders.ErrAlreadyExists)
	stored, err := f.store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Name)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash)

	tok, err := f.svc.Login(ctx, "ana@shop.io", "secret1")
	require.NoError(t, err)
	p, err := auth.NewJWTIssuer("test-secret", time.Hour).Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.ID)

	_, err = f.svc.Login(ctx, "ana@shop.io", "wrong")
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
	_, err = f.svc.Login(ctx, "nobody@shop.io", "secret1")
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)

	_, err = f.svc.RegisterUser(ctx, orders.UserInput{Name: "Bad", Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, orders.ErrValidation)

	me, err := f.svc.CurrentUser(auth.WithPrincipal(ctx, p))
	require.NoError(t, err)
	assert.Equal(t, "ana@shop.io", me.Email)
	_, err = f.svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
}

func TestProductsAndClients(t *testing.T) {
	f := newFixture(t, true)
	seller := uuid.NewString()
	ctx := as(seller)

	p := f.product(t, ctx, "Camera", 300, 4)
	first, err := f.svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	second, err := f.svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p, err = f.svc.UpdateProduct(ctx, p.ID, orders.ProductInput{Name: "Camera X", PriceCents: 350, Stock: 6})
	require.NoError(t, err)
	assert.Equal(t, "Camera X", p.Name)
	_, err = f.svc.UpdateProduct(ctx, uuid.NewString(), orders.ProductInput{Name: "Nope"})
	assert.ErrorIs(t, err, orders.ErrNotFound)
	_, err = f.svc.CreateProduct(ctx, orders.ProductInput{Name: "Neg", Stock: -1})
	assert.ErrorIs(t, err, orders.ErrValidation)

	found, err := f.svc.SearchProducts(ctx, "camera")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, f.svc.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, f.svc.DeleteProduct(ctx, p.ID), orders.ErrNotFound)

	c := f.client(t, ctx, "dup@acme.io")
	_, err = f.svc.CreateClient(as(uuid.NewString()), orders.ClientInput{Name: "Other", Email: "DUP@acme.io"})
	assert.ErrorIs(t, err, orders.ErrAlreadyExists)

	c, err = f.svc.UpdateClient(ctx, c.ID, orders.ClientInput{Name: "Renamed", Email: "dup@acme.io"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
	assert.Equal(t, seller, c.Owner)

	mine, err := f.svc.MyClients(ctx)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	none, err := f.svc.MyClients(as(uuid.NewString()))
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, f.svc.DeleteClient(ctx, c.ID))
	_, err = f.svc.GetClient(ctx, c.ID)
	assert.ErrorIs(t, err, orders.ErrNotFound)

	_, err = f.svc.ListProducts(context.Background())
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
}

func TestTopReports(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	totals := []int{50, 30, 90, 10, 100}
	var sellers []orders.User
	for i, total := range totals {
		u := orders.User{ID: uuid.NewString(), Email: uuid.NewString() + "@shop.io", Name: "seller"}
		require.NoError(t, f.store.CreateUser(ctx, &u))
		sellers = append(sellers, u)
		c := orders.Client{ID: uuid.NewString(), Email: uuid.NewString() + "@acme.io", Owner: u.ID}
		require.NoError(t, f.store.CreateClient(ctx, &c))
		require.NoError(t, f.store.CreateOrder(ctx, &orders.Order{
			ID: uuid.NewString(), Client: c.ID, Owner: u.ID, TotalCents: total, Status: orders.StatusCompleted,
			CreatedAt: time.Unix(int64(i), 0),
		}))
	}
	require.NoError(t, f.store.CreateOrder(ctx, &orders.Order{
		ID: uuid.NewString(), Client: "gone", Owner: sellers[3].ID, TotalCents: 5000, Status: orders.StatusPending,
	}))

	top, err := f.svc.TopSellers(as(sellers[0].ID))
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, sellers[4].ID, top[0].Seller.ID)
	assert.Equal(t, 100, top[0].TotalCents)
	assert.Equal(t, sellers[2].ID, top[1].Seller.ID)
	assert.Equal(t, sellers[0].ID, top[2].Seller.ID)

	clients, err := f.svc.TopClients(as(sellers[0].ID))
	require.NoError(t, err)
	require.Len(t, clients, 5)
	assert.Equal(t, 100, clients[0].TotalCents)
	assert.Equal(t, 10, clients[4].TotalCents)

	_, err = f.svc.TopSellers(ctx)
	assert.ErrorIs(t, err, orders.ErrCredentialsInvalid)
}

type brokenStore struct {
	orders.Store
}

var errDown = errors.New("connection refused")

func (brokenStore) ListProducts(context.Context) ([]orders.Product, error) { return nil, errDown }
func (brokenStore) GetClient(context.Context, string) (orders.Client, error) {
	return orders.Client{}, errDown
}

func TestStoreFailuresSurfaceAsInternal(t *testing.T) {
	f := newFixture(t, true)
	f.svc.Store = brokenStore{Store: f.store}
	ctx := as(uuid.NewString())

	_, err := f.svc.ListProducts(ctx)
	assert.ErrorIs(t, err, orders.ErrInternal)

	_, err = f.svc.GetClient(ctx, uuid.NewString())
	assert.ErrorIs(t, err, orders.ErrInternal)
	assert.NotErrorIs(t, err, orders.ErrNotFound)
}
