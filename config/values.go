package config

import (
	"strings"

	"github.com/pkg/errors"
)

// presentNoValue is the NoOptDefVal sentinel telling a flag given without a
// value apart from one not given at all. NUL cannot appear in command line
// arguments so it never collides with user input.
const presentNoValue = "\x00"

// onceValue is a required-argument string flag rejecting a second occurrence.
type onceValue struct {
	dst *string
	set bool
}

func (v *onceValue) Set(s string) error {
	if v.set {
		return errors.New("may be given at most once")
	}
	v.set = true
	*v.dst = s
	return nil
}

func (v *onceValue) String() string { return "" }
func (v *onceValue) Type() string   { return "string" }

// optionalValue records presence independently of the value.
type optionalValue struct {
	dst *Optional
}

func (v *optionalValue) Set(s string) error {
	if s == presentNoValue {
		s = ""
	}
	*v.dst = Optional{Value: s, Present: true}
	return nil
}

func (v *optionalValue) String() string { return "" }
func (v *optionalValue) Type() string   { return "string" }

// truthyValue is enabled by the bare flag or any value except 0 and false.
type truthyValue struct {
	dst *bool
}

func (v *truthyValue) Set(s string) error {
	*v.dst = s != "0" && !strings.EqualFold(s, "false")
	return nil
}

func (v *truthyValue) String() string { return "false" }
func (v *truthyValue) Type() string   { return "bool" }

// actionValue selects an action, overwriting whatever was selected before.
type actionValue struct {
	f      *BuildFactory
	action Action
}

func (v *actionValue) Set(string) error {
	v.f.Action = v.action
	return nil
}

func (v *actionValue) String() string { return "false" }
func (v *actionValue) Type() string   { return "bool" }

// executeValue turns on execution and selects the build action.
type executeValue struct {
	f *BuildFactory
}

func (v *executeValue) Set(string) error {
	v.f.Execute = true
	v.f.Action = ActionBuild
	return nil
}

func (v *executeValue) String() string { return "false" }
func (v *executeValue) Type() string   { return "bool" }

// gettagValue selects the gettag action. A non-empty value seeds the
// auto-tag prefix unless --autotag was already given.
type gettagValue struct {
	f *BuildFactory
}

func (v *gettagValue) Set(s string) error {
	v.f.Action = ActionGetTag
	if s != presentNoValue && s != "" && !v.f.AutoTag.Present {
		v.f.AutoTag = Optional{Value: s, Present: true}
	}
	return nil
}

func (v *gettagValue) String() string { return "" }
func (v *gettagValue) Type() string   { return "string" }
