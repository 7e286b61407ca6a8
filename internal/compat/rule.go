package compat

import (
	"errors"
	"fmt"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type Status int

const (
	NotApplicable Status = iota
	Satisfied
	Violated
)

func (s Status) String() string {
	switch s {
	case Satisfied:
		return "satisfied"
	case Violated:
		return "violated"
	default:
		return "not_applicable"
	}
}

// Outcome es el resultado de evaluar una regla sobre un armado.
type Outcome struct {
	Status Status
	Reason string
	// Slots en conflicto; si está vacío se usan los slots de la regla
	Slots []domain.Slot
}

func Skip() Outcome { return Outcome{Status: NotApplicable} }

func Ok() Outcome { return Outcome{Status: Satisfied} }

func Fail(reason string, slots ...domain.Slot) Outcome {
	return Outcome{Status: Violated, Reason: reason, Slots: slots}
}

func Failf(slots []domain.Slot, format string, args ...any) Outcome {
	return Fail(fmt.Sprintf(format, args...), slots...)
}

type Rule interface {
	Name() string
	Slots() []domain.Slot
	Check(b *domain.Build) Outcome
}

// Definition es una regla declarativa. Si falta alguno de los slots de Requires
// la regla no aplica y Eval no se llama.
type Definition struct {
	ID       string
	Requires []domain.Slot
	// Involves amplía los slots que la regla puede nombrar (p. ej. el consumo total)
	Involves []domain.Slot
	Eval     func(b *domain.Build) Outcome
}

func (d Definition) Name() string { return d.ID }

func (d Definition) Slots() []domain.Slot {
	if len(d.Involves) > 0 {
		return d.Involves
	}
	return d.Requires
}

func (d Definition) Check(b *domain.Build) Outcome {
	for _, s := range d.Requires {
		if !b.Has(s) {
			return Skip()
		}
	}
	if d.Eval == nil {
		return Skip()
	}
	return d.Eval(b)
}

// Registry mantiene las reglas en orden de registro.
type Registry struct {
	rules []Rule
	names map[string]struct{}
}

func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{names: map[string]struct{}{}}
	for _, rule := range rules {
		r.MustRegister(rule)
	}
	return r
}

func (r *Registry) Register(rule Rule) error {
	if rule == nil || rule.Name() == "" {
		return errors.New("regla sin nombre")
	}
	if _, dup := r.names[rule.Name()]; dup {
		return fmt.Errorf("regla duplicada: %s", rule.Name())
	}
	r.names[rule.Name()] = struct{}{}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *Registry) MustRegister(rule Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

func (r *Registry) Len() int { return len(r.rules) }
