package redisx

import "time"

const (
	// Cache product: product:{product_id} -> orders.Product JSON (di-invalidate tiap order berubah)
	KeyProduct = "product:%s"

	// Dedup event processing: dedup:{service}:{event_id} (dihapus lagi kalau handler gagal)
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLProductCache = 5 * time.Minute
	TTLDedup        = 48 * time.Hour
)
