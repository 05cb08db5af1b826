package arbitrary

import "github.com/nomagicln/propcheck/rand"

func newSizedGen(size int) *rand.Source {
	g := rand.New(1)
	g.SetSize(size)
	return g
}
