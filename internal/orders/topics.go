package orders

const TopicOrderEvents = "sales.orders"

// Partition key = order_id, supaya semua event 1 order tetap urut.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
