package parameter

// System update order, low runs first
const (
	PriorityMorph  = 10
	PriorityDust   = 20
	PriorityMeteor = 30
)
