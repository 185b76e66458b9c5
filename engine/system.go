package engine

import (
	"sort"
)

// System is one frame-driven mutation stage. All systems run on the
// render loop's goroutine; none may block.
type System interface {
	Name() string
	Priority() int
	Update(dt float64)
}

// Runner invokes systems in priority order once per frame
type Runner struct {
	systems []System
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Add(s System) {
	r.systems = append(r.systems, s)
	sort.SliceStable(r.systems, func(i, j int) bool {
		return r.systems[i].Priority() < r.systems[j].Priority()
	})
}

// Update advances every system by dt seconds
func (r *Runner) Update(dt float64) {
	for _, s := range r.systems {
		s.Update(dt)
	}
}
