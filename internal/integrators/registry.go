package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const Default = "symplectic"

var registry = map[string]func() dynamo.Integrator{
	"symplectic": func() dynamo.Integrator { return NewSemiImplicitEuler() },
	"euler":      func() dynamo.Integrator { return NewExplicitEuler() },
}

func Get(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
