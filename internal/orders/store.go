package orders

import "context"

type UserStore interface {
	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type StockStore interface {
	// ReserveStock decrements stock only when stock >= qty, as one operation.
	// It returns ErrNotFound or *InsufficientStockError without writing.
	ReserveStock(ctx context.Context, productID string, qty int) (Product, error)
	ReleaseStock(ctx context.Context, productID string, qty int) (Product, error)
}

type ProductStore interface {
	StockStore
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error
	SearchProducts(ctx context.Context, text string, limit int) ([]Product, error)
}

type ClientStore interface {
	// CreateClient and UpdateClient return ErrAlreadyExists on a duplicate email.
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id string) (Client, error)
	// ListClients returns every client when owner is empty.
	ListClients(ctx context.Context, owner string) ([]Client, error)
	UpdateClient(ctx context.Context, c Client) error
	DeleteClient(ctx context.Context, id string) error
}

// OrderFilter zero values match everything.
type OrderFilter struct {
	Owner  string
	Status Status
}

type OrderStore interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id string) (Order, error)
	ListOrders(ctx context.Context, f OrderFilter) ([]Order, error)
	UpdateOrder(ctx context.Context, o Order) error
	DeleteOrder(ctx context.Context, id string) error
	Aggregate(ctx context.Context, p Pipeline) ([]GroupTotal, error)
}

// Store is the persistence boundary. Get* methods return ErrNotFound for
// missing rows.
type Store interface {
	UserStore
	ProductStore
	ClientStore
	OrderStore

	// InTx runs fn against a store bound to one transaction. Any error
	// returned by fn rolls back every write made through tx.
	InTx(ctx context.Context, fn func(tx Store) error) error
}
