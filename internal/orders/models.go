package orders

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Client belongs to exactly one seller (Owner).
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is shared by every seller.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int       `json:"price_cents"`
	Stock      int       `json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
}

type Order struct {
	ID         string    `json:"id"`
	Client     string    `json:"client"`
	Owner      string    `json:"owner"`
	Lines      []Line    `json:"lines"`
	TotalCents int       `json:"total_cents"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Line keeps the unit price captured when the stock was reserved.
type Line struct {
	ProductID  string `json:"product_id"`
	Qty        int    `json:"qty"`
	PriceCents int    `json:"price_cents"`
}

type UserInput struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductInput struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Stock      int    `json:"stock"`
}

type ClientInput struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type LineInput struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// OrderInput drives both create and update. On update an empty Client keeps
// the current client, nil Lines keeps the current lines and an empty Status
// keeps the current status.
type OrderInput struct {
	Client string      `json:"client"`
	Lines  []LineInput `json:"lines"`
	Status Status      `json:"status,omitempty"`
}

type ClientTotal struct {
	Client     Client `json:"client"`
	TotalCents int    `json:"total_cents"`
}

type SellerTotal struct {
	Seller     User `json:"seller"`
	TotalCents int  `json:"total_cents"`
}
