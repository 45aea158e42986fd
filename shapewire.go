package shapewire

// Allocator provides byte buffers for encoded type descriptors.
//
// Alloc returns a buffer whose length is exactly size bytes. Free returns a
// buffer previously obtained from Alloc; implementations that do not reclaim
// memory may treat Free as a no-op.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}
