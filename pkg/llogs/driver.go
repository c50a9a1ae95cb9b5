package llogs

// Driver abstracts the destination of the process logs so the kernel can
// close it on shutdown without knowing where they went.
type Driver interface {
	Close() bool
}
