package bichan

type config struct {
	cloneable bool
	onIgnored func()
}

// Option configures a channel pair at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithClone allows the [Requester] to be cloned, so multiple
// independent callers can share one queue. Without this option,
// [Requester.Clone] panics.
//
// Cloneability is fixed at construction because it changes the
// shutdown contract: with clones, the responder sees end-of-stream
// only after every clone has been closed.
func WithClone() Option {
	return func(c *config) {
		c.cloneable = true
	}
}

// WithOnIgnored registers a hook invoked whenever an obligation is
// dropped without a reply, including obligations stranded by
// [Responder.Close]. The hook runs on the goroutine that drops the
// obligation and must not block.
//
// Panics if fn is nil.
func WithOnIgnored(fn func()) Option {
	if fn == nil {
		panic("bichan: WithOnIgnored requires non-nil hook")
	}
	return func(c *config) {
		c.onIgnored = fn
	}
}
