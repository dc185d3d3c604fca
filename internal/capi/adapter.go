// Package capi exposes the drill's configuration and state as the flat,
// string-valued variables an embedding host reads and writes.
package capi

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
)

var (
	// ErrUnknownVariable is returned for a name the adapter does not expose.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrInvalidValue is returned when a value does not parse for its variable.
	ErrInvalidValue = errors.New("invalid variable value")
	// ErrReadOnly is returned when the host tries to set an outbound-only
	// variable.
	ErrReadOnly = errors.New("read-only variable")
)

// Variable names.
const (
	Mastery       = "mastery"
	Numerator     = "numerator"
	Denominator   = "denominator"
	Undirected    = "undirected"
	Weighted      = "weighted"
	FirstQuestion = "firstQuestion"
	LastQuestion  = "lastQuestion"
	DoNotLaunch   = "doNotLaunch"
)

type variable struct {
	get func(engine.State) string
	set func(*config.Config, string) error
}

func intVar(field func(*config.Config) *int) variable {
	return variable{
		get: func(s engine.State) string { return strconv.Itoa(*field(&s.Config)) },
		set: func(c *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*field(c) = n
			return nil
		},
	}
}

func boolVar(field func(*config.Config) *bool) variable {
	return variable{
		get: func(s engine.State) string { return strconv.FormatBool(*field(&s.Config)) },
		set: func(c *config.Config, v string) error {
			b, err := parseBool(v)
			if err != nil {
				return err
			}
			*field(c) = b
			return nil
		},
	}
}

var variables = map[string]variable{
	Mastery: {
		get: func(s engine.State) string { return strconv.FormatBool(s.MasteryAchieved) },
	},
	Numerator:     intVar(func(c *config.Config) *int { return &c.MasteryNumerator }),
	Denominator:   intVar(func(c *config.Config) *int { return &c.MasteryDenominator }),
	FirstQuestion: intVar(func(c *config.Config) *int { return &c.FirstQuestion }),
	LastQuestion:  intVar(func(c *config.Config) *int { return &c.LastQuestion }),
	Undirected:    boolVar(func(c *config.Config) *bool { return &c.Undirected }),
	Weighted:      boolVar(func(c *config.Config) *bool { return &c.Weighted }),
	DoNotLaunch:   boolVar(func(c *config.Config) *bool { return &c.SuppressAutoStart }),
}

// parseBool only accepts the literal values the host platform writes.
func parseBool(v string) (bool, error) {
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("want \"true\" or \"false\", got %q", v)
	}
}

// Names returns every exposed variable name, sorted.
func Names() []string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export renders the engine state as variables.
func Export(s engine.State) map[string]string {
	out := make(map[string]string, len(variables))
	for name, v := range variables {
		out[name] = v.get(s)
	}
	return out
}

// Get returns one variable's value.
func Get(s engine.State, name string) (string, error) {
	v, ok := variables[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return v.get(s), nil
}

// Apply writes vars onto a copy of base. Nothing is applied if any entry
// fails. Setting a variable turns off mode randomization when it names a
// mode, so the host's choice sticks.
func Apply(base config.Config, vars map[string]string) (config.Config, error) {
	cfg := base
	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, ok := variables[name]
		if !ok {
			return base, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		if v.set == nil {
			return base, fmt.Errorf("%w: %q", ErrReadOnly, name)
		}
		if err := v.set(&cfg, vars[name]); err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
		}
		if name == Undirected || name == Weighted {
			cfg.RandomizeModes = false
		}
	}
	return cfg, nil
}
