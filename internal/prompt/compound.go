package prompt

import (
	"fmt"

	"github.com/feonix-uav/configuranator/internal/config"
)

// Affirmative is the only answer that adds another point to an area.
const Affirmative = "yes"

// AskTuple asks label until the answer parses as a pair of s values.
func AskTuple[T any](p *Prompter, label string, s Scalar[T]) ([2]T, error) {
	return Ask(p, label, TupleOf(s))
}

// AskPoint asks for an x and then a y coordinate.
func AskPoint(p *Prompter) (config.Point, error) {
	x, err := Ask(p, "Enter the x-coordinate: ", Float64)
	if err != nil {
		return config.Point{}, err
	}
	y, err := Ask(p, "Enter the y-coordinate: ", Float64)
	if err != nil {
		return config.Point{}, err
	}
	return config.Point{X: x, Y: y}, nil
}

// AskArea collects points for the named area until the operator answers
// anything other than Affirmative. The result is never nil.
func AskArea(p *Prompter, name string) ([]config.Point, error) {
	p.Header(fmt.Sprintf("---ENTER %s AREA---", name))

	area := []config.Point{}
	question := fmt.Sprintf("Add a point to %s? (yes/no): ", name)
	for {
		answer, err := p.ReadLine(question)
		if err != nil {
			return nil, err
		}
		if answer != Affirmative {
			return area, nil
		}

		pt, err := AskPoint(p)
		if err != nil {
			return nil, err
		}
		area = append(area, pt)
		question = "Enter another point? (yes/no): "
	}
}
