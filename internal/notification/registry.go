package notification

import (
	"github.com/patrickmn/go-cache"
)

// Subscription holds the information for a browser push subscription.
type Subscription struct {
	Endpoint string `json:"endpoint"`
	P256DH   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// Registry keeps push subscriptions for the lifetime of the process, keyed by
// endpoint. Entries never expire on their own; they leave when the client
// unsubscribes or the push service reports them gone.
type Registry struct {
	subs *cache.Cache
}

// NewRegistry creates an empty subscription registry.
func NewRegistry() *Registry {
	return &Registry{subs: cache.New(cache.NoExpiration, 0)}
}

// Upsert stores a subscription, replacing any previous one for the same
// endpoint.
func (r *Registry) Upsert(sub Subscription) {
	r.subs.Set(sub.Endpoint, sub, cache.NoExpiration)
}

// Get returns the subscription for an endpoint.
func (r *Registry) Get(endpoint string) (Subscription, bool) {
	item, found := r.subs.Get(endpoint)
	if !found {
		return Subscription{}, false
	}
	return item.(Subscription), true
}

// Delete removes the subscription for an endpoint. Deleting an unknown
// endpoint is a no-op.
func (r *Registry) Delete(endpoint string) {
	r.subs.Delete(endpoint)
}

// All returns every registered subscription.
func (r *Registry) All() []Subscription {
	items := r.subs.Items()
	out := make([]Subscription, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Subscription))
	}
	return out
}

// Len returns the number of registered subscriptions.
func (r *Registry) Len() int {
	return r.subs.ItemCount()
}
