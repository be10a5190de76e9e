package component

// HealthComponent tracks hit points clamped to [0, Max]
type HealthComponent struct {
	Current int
	Max     int
}

// NewHealth creates a full health pool
func NewHealth(max int) HealthComponent {
	return HealthComponent{Current: max, Max: max}
}

// Damage removes amount, floored at zero, and reports whether the pool is empty
func (h *HealthComponent) Damage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// Heal restores amount, capped at Max
func (h *HealthComponent) Heal(amount int) {
	if amount < 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Dead reports an empty pool
func (h HealthComponent) Dead() bool {
	return h.Current <= 0
}

// Percent returns health as 0..100
func (h HealthComponent) Percent() int {
	if h.Max <= 0 {
		return 0
	}
	return h.Current * 100 / h.Max
}
