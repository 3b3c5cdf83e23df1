package models

// VendorSession identifies the authenticated vendor for the lifetime of the
// process. It is an immutable value threaded explicitly through calls; there
// is no ambient global identity. The backend holds no session state either:
// every request re-supplies the vendor id.
type VendorSession struct {
	VendorID      int64
	Name          string
	Email         string
	Authenticated bool
}
