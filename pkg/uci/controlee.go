package uci

import "fmt"

// Sub-session key sizes for the keyed multicast actions.
const (
	ShortSubSessionKeyLen = 16
	LongSubSessionKeyLen  = 32
)

// Controlee identifies one controlee of a multicast session.
type Controlee struct {
	ShortAddress uint16
	SubSessionID uint32
}

// ShortKeyControlee is a controlee added with a 16 byte sub-session key.
type ShortKeyControlee struct {
	Controlee
	SubSessionKey [ShortSubSessionKeyLen]byte
}

// LongKeyControlee is a controlee added with a 32 byte sub-session key.
type LongKeyControlee struct {
	Controlee
	SubSessionKey [LongSubSessionKeyLen]byte
}

// Controlees is the controlee list of a multicast list update. It is one of
// NoKeyControlees, ShortKeyControlees or LongKeyControlees.
type Controlees interface {
	Len() int
	controlees()
}

type (
	NoKeyControlees    []Controlee
	ShortKeyControlees []ShortKeyControlee
	LongKeyControlees  []LongKeyControlee
)

func (c NoKeyControlees) Len() int    { return len(c) }
func (c ShortKeyControlees) Len() int { return len(c) }
func (c LongKeyControlees) Len() int  { return len(c) }

func (NoKeyControlees) controlees()    {}
func (ShortKeyControlees) controlees() {}
func (LongKeyControlees) controlees()  {}

// BuildControlees validates the flat multicast update arguments and builds
// the controlee list for action. The address and sub-session id lists must
// both hold exactly count entries. For the keyed actions the key blob must
// hold exactly count keys of the action's key size; keys are assigned to
// controlees in order.
func BuildControlees(action MulticastAction, count int, addresses []uint16, subSessionIDs []uint32, keys []byte) (Controlees, error) {
	if count < 0 || len(addresses) != count || len(subSessionIDs) != count {
		return nil, fmt.Errorf("%w: %d addresses and %d sub-session ids for %d controlees",
			ErrBadParameters, len(addresses), len(subSessionIDs), count)
	}

	base := make([]Controlee, count)
	for i := range base {
		base[i] = Controlee{ShortAddress: addresses[i], SubSessionID: subSessionIDs[i]}
	}

	switch action {
	case MulticastActionAdd, MulticastActionRemove:
		return NoKeyControlees(base), nil

	case MulticastActionAddWithShortKey:
		if err := checkKeys(keys, count, ShortSubSessionKeyLen); err != nil {
			return nil, err
		}
		out := make(ShortKeyControlees, count)
		for i := range out {
			out[i].Controlee = base[i]
			copy(out[i].SubSessionKey[:], keys[i*ShortSubSessionKeyLen:])
		}
		return out, nil

	case MulticastActionAddWithLongKey:
		if err := checkKeys(keys, count, LongSubSessionKeyLen); err != nil {
			return nil, err
		}
		out := make(LongKeyControlees, count)
		for i := range out {
			out[i].Controlee = base[i]
			copy(out[i].SubSessionKey[:], keys[i*LongSubSessionKeyLen:])
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: multicast action %d", ErrBadParameters, action)
}

func checkKeys(keys []byte, count, size int) error {
	if len(keys) != count*size {
		return fmt.Errorf("%w: key blob of %d bytes for %d keys of %d bytes",
			ErrBadParameters, len(keys), count, size)
	}
	return nil
}
