package farm2d

import "github.com/akmonengine/farm2d/actor"

// integrate advances every body in bodies by dt. It is the thinnest
// component in the pipeline: Body.Integrate already holds the actual
// semi-implicit Euler step, so this just fans it out over the Farm's body
// list, single-threaded (see DESIGN.md).
func integrate(bodies []actor.Body, dt float64) {
	for _, body := range bodies {
		body.Integrate(dt)
	}
}
