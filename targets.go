package mandelzoom

import "sort"

// Target is a point in the complex plane worth zooming into.
type Target struct {
	R, I float64
}

// Classic landmarks in the Mandelbrot set, usable as zoom targets.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Target{R: -0.75, I: 0.1}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Target{R: -1.80, I: -0.06}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Target{R: -0.743643887037151, I: 0.131825904205330}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Target{R: -0.7465, I: 0.0965}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Target{R: -0.7375, I: 0.1825}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Target{R: -1.73825, I: -0.02275}
)

var targetsByName = map[string]Target{
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"minibrot":      MinibrotInMiniSpiral,
}

// TargetByName looks up a landmark target by its short name.
func TargetByName(name string) (Target, bool) {
	t, ok := targetsByName[name]
	return t, ok
}

// TargetNames lists the known landmark names.
func TargetNames() []string {
	names := make([]string, 0, len(targetsByName))
	for n := range targetsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
