// Package dispatch owns the chip id to protocol manager mapping.
//
// A Registry hands out generational Handles for Dispatchers. Each
// Dispatcher owns one uci.Manager and one notification bridge per chip,
// plus an Executor the managers run their workers on. The set of chips is
// fixed when the Dispatcher is created.
//
// Managers are only reachable through a Guard, which holds two locks: the
// advisory lock of the calling host object and the reader/writer lock of
// the Dispatcher it resolved. The registry lock only covers the handle
// lookup, so a long call on one Dispatcher never stalls another. Scoped
// accesses hold both locks shared, so calls on different chips run
// concurrently. Destroy retires the handle under the registry lock and then
// waits for the Dispatcher's lock exclusively before tearing it down. A
// Guard releases the dispatcher lock first and the host lock last.
//
//	err := reg.WithManager(obj, "chip0", func(m uci.Manager) error {
//	    return m.SessionInit(ctx, 7, uci.SessionTypeFiraRanging)
//	})
package dispatch
