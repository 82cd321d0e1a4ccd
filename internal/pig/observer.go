package pig

import "slices"

// ChangeKind names the mutation a Change describes.
type ChangeKind string

const (
	ChangeSelected        ChangeKind = "selected"
	ChangeDeselected      ChangeKind = "deselected"
	ChangeColor           ChangeKind = "color"
	ChangeLoaded          ChangeKind = "loaded"
	ChangeRegistered      ChangeKind = "registered"
	ChangeConnectionPoint ChangeKind = "connection_point"
	ChangeUnlocked        ChangeKind = "unlocked"
)

// Change is delivered to subscribers after a mutation has been applied.
// Category and PartID are empty when the change is not about a single part,
// e.g. a whole-selection load.
type Change struct {
	Kind     ChangeKind
	Category Category
	PartID   string
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to be called synchronously after every applied
// mutation, in subscription order. Calls that end up as no-ops are not
// reported. The returned func removes the subscription.
func (c *Configurator) Subscribe(fn func(Change)) (unsubscribe func()) {
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		c.subs = slices.DeleteFunc(c.subs, func(s subscriber) bool { return s.id == id })
	}
}

func (c *Configurator) notify(ch Change) {
	// subscribers may unsubscribe from inside the callback
	for _, s := range slices.Clone(c.subs) {
		s.fn(ch)
	}
}
