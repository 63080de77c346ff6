package session

import "github.com/jmylchreest/huewheel/internal/picker"

// Result records the outcome of one step.
type Result struct {
	Step     Step
	State    picker.State
	Accepted bool
	// Notification is the payload handed to the change callback; it is set
	// for accepted user interactions only.
	Notification *picker.Notification
}

// Run applies steps to p in order.
func Run(p *picker.Picker, steps []Step) []Result {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		if step.Event == nil {
			st := p.ApplyExternalColor(step.Colour)
			results = append(results, Result{Step: step, State: st, Accepted: true})
			continue
		}

		st, note := p.Handle(step.Event)
		results = append(results, Result{Step: step, State: st, Accepted: note != nil, Notification: note})
	}
	return results
}
