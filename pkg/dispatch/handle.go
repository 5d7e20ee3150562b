package dispatch

import "fmt"

// Handle identifies a Dispatcher. The low 32 bits index the registry slot,
// the high 32 bits carry the slot generation. The zero Handle is never
// issued.
type Handle uint64

// InvalidHandle is the zero Handle.
const InvalidHandle Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

func (h Handle) index() uint32 { return uint32(h) }
func (h Handle) gen() uint32   { return uint32(h >> 32) }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h == InvalidHandle }

func (h Handle) String() string {
	if h.IsZero() {
		return "invalid"
	}
	return fmt.Sprintf("%d.%d", h.index(), h.gen())
}
