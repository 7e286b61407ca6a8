package compat

import (
	"sort"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type Violation struct {
	Rule   string        `json:"rule"`
	Slots  []domain.Slot `json:"slots"`
	Reason string        `json:"reason"`
}

// Report es el resultado de validar un armado. Nunca se persiste.
type Report struct {
	Pass       bool        `json:"pass"`
	Violations []Violation `json:"violations"`
}

// Slots devuelve los slots nombrados por alguna violación, en orden de declaración.
func (r Report) Slots() []domain.Slot {
	var all []domain.Slot
	for _, v := range r.Violations {
		all = append(all, v.Slots...)
	}
	return orderSlots(all)
}

type Validator struct {
	rules *Registry
}

func NewValidator(r *Registry) *Validator {
	if r == nil {
		r = NewRegistry()
	}
	return &Validator{rules: r}
}

// Default usa las reglas canónicas sin margen de consumo.
func Default() *Validator {
	return NewValidator(DefaultRegistry(Options{}))
}

func (v *Validator) Rules() []Rule { return v.rules.Rules() }

// Validate evalúa todas las reglas. Las violaciones salen ordenadas por el
// orden de declaración de sus slots; a igualdad, por orden de registro.
func (v *Validator) Validate(b *domain.Build) Report {
	rep := Report{Pass: true, Violations: []Violation{}}
	// con cero o un componente no hay par que pueda chocar
	if b.CompletionCount() < 2 {
		return rep
	}
	for _, rule := range v.rules.Rules() {
		o := rule.Check(b)
		if o.Status != Violated {
			continue
		}
		slots := o.Slots
		if len(slots) == 0 {
			slots = rule.Slots()
		}
		rep.Violations = append(rep.Violations, Violation{
			Rule:   rule.Name(),
			Slots:  orderSlots(slots),
			Reason: o.Reason,
		})
	}
	sort.SliceStable(rep.Violations, func(i, j int) bool {
		return slotsLess(rep.Violations[i].Slots, rep.Violations[j].Slots)
	})
	rep.Pass = len(rep.Violations) == 0
	return rep
}

func orderSlots(in []domain.Slot) []domain.Slot {
	seen := map[domain.Slot]struct{}{}
	out := make([]domain.Slot, 0, len(in))
	for _, s := range domain.Slots() {
		for _, v := range in {
			if v != s {
				continue
			}
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

func slotsLess(a, b []domain.Slot) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].Index() < b[i].Index()
		}
	}
	return len(a) < len(b)
}
