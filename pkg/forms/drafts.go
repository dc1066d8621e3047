package forms

import (
	"sync"
	"time"
)

// draftTTL - olinmagan qoralama shu vaqtdan keyin o'chiriladi
const draftTTL = 10 * time.Minute

// Draft is the outcome of a submission kept for the page that renders it
// after the redirect.
type Draft struct {
	Form  Form
	State State
	saved time.Time
}

// Drafts holds the last submission outcome per visitor and form until the
// next page view takes it.
type Drafts struct {
	mu     sync.Mutex
	drafts map[string]Draft
	now    func() time.Time
}

// NewDrafts creates an empty store.
func NewDrafts() *Drafts {
	return &Drafts{
		drafts: make(map[string]Draft),
		now:    time.Now,
	}
}

// Put stores the outcome of f for visitor, replacing an older one.
func (d *Drafts) Put(visitor string, f Form, st State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for k, v := range d.drafts {
		if now.Sub(v.saved) > draftTTL {
			delete(d.drafts, k)
		}
	}
	d.drafts[draftKey(visitor, f.Key())] = Draft{Form: f, State: st, saved: now}
}

// Take returns and removes the stored outcome for visitor and form key.
func (d *Drafts) Take(visitor, key string) (Draft, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	k := draftKey(visitor, key)
	draft, ok := d.drafts[k]
	if !ok {
		return Draft{}, false
	}
	delete(d.drafts, k)
	if d.now().Sub(draft.saved) > draftTTL {
		return Draft{}, false
	}
	return draft, true
}

func draftKey(visitor, key string) string {
	return visitor + "|" + key
}
