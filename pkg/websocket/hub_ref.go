package websocket

import "sync/atomic"

// HubRef points at the currently running Hub so it can be replaced after a
// panic without rebuilding the HTTP handlers that publish to it.
type HubRef struct {
	p atomic.Pointer[Hub]
}

func NewHubRef(initial *Hub) *HubRef {
	r := &HubRef{}
	r.p.Store(initial)
	return r
}

func (r *HubRef) Get() (*Hub, bool) {
	h := r.p.Load()
	return h, h != nil
}

func (r *HubRef) Set(h *Hub) {
	r.p.Store(h)
}
