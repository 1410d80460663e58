package constants

// Sentinel values substituted when a field cannot be recovered from the
// document text. Downstream consumers rely on these never being empty.
const (
	SentinelUnknown  = "UNKNOWN"
	SentinelSupplier = "SUPPLIER"
	SentinelCustomer = "CUSTOMER"
	SentinelItem     = "Item"
)
