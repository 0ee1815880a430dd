// Profiling:
// go build ./cmd/profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/janreitz/archon"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	numEntities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, numEntities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := archon.NewWorld()
		archon.RegisterComponent[comp1](w)
		archon.RegisterComponent[comp2](w)
		query := archon.NewQuery2[comp1, comp2](w)

		for it := 0; it < iters; it++ {
			entities := make([]archon.EntityId, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				e := archon.CreateEntity(w)
				archon.AddComponents2(w, e, comp1{}, comp2{V: 1, W: 1})
				entities = append(entities, e)
			}
			query.Each(func(c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})
			for _, e := range entities {
				w.RemoveEntity(e)
			}
		}
	}
}
