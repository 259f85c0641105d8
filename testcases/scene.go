package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/drawing"
)

var sceneCases = []TestCase{
	{
		Name:   "random_small",
		Shapes: randomScene(1, 64, 64, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "random_large",
		Shapes: randomScene(2, 256, 192, 60),
		Width:  256,
		Height: 192,
	},
}

// randomScene returns a reproducible scene of n random shapes.
func randomScene(seed uint64, width, height, n int) []drawing.Shape {
	src := rand.New(rand.NewPCG(seed, 1))
	alloc := drawing.NewColorAllocator(rand.New(rand.NewPCG(seed, 2)))
	shapes, err := drawing.NewFactory(src, alloc).Scene(width, height, n)
	if err != nil {
		panic(err)
	}
	return shapes
}
