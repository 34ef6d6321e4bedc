package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// All lists the four card colors in deck-building order.
var All = []Color{Red, Green, Blue, Yellow}

var colors = map[string]Color{
	Red.name:    Red,
	Green.name:  Green,
	Blue.name:   Blue,
	Yellow.name: Yellow,
}

func ByName(name string) (Color, error) {
	c := colors[strings.ToLower(name)]
	if c == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

// Plain disables ANSI escapes for every color, e.g. for JSON clients and tests.
func Plain(disabled bool) {
	color.NoColor = disabled
}
