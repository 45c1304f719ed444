// Package toast defines the user-facing notification sink contract.
// The library never renders anything itself; hosts plug in their UI.
package toast

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Action is an optional affordance attached to a notification (e.g. "Retry").
type Action struct {
	Label string
	Do    func()
}

type Notification struct {
	Title       string
	Description string
	Variant     Variant
	Action      *Action
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(Notification)
}

// Nop is the default sink.
type Nop struct{}

func (Nop) Notify(Notification) {}
