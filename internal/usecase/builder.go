package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vinaypunani/build-gaming/internal/compat"
	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/pricing"
)

const DefaultPlaceholderImage = "/images/pc-builder.png"

var (
	ErrBuildNotReady = errors.New("armado incompleto o incompatible")
	ErrInvalidInput  = errors.New("entrada inválida")
)

// CommitError describe por qué un armado no puede pasar al carrito.
type CommitError struct {
	Missing    []domain.Slot      `json:"missing"`
	Violations []compat.Violation `json:"violations"`
}

func (e *CommitError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		names := make([]string, len(e.Missing))
		for i, s := range e.Missing {
			names[i] = string(s)
		}
		parts = append(parts, "missing slots: "+strings.Join(names, ", "))
	}
	for _, v := range e.Violations {
		parts = append(parts, v.Rule+": "+v.Reason)
	}
	return "build not ready: " + strings.Join(parts, "; ")
}

func (e *CommitError) Unwrap() error { return ErrBuildNotReady }

// Evaluation agrupa lo que se recalcula después de cada cambio del armado.
type Evaluation struct {
	Breakdown pricing.Breakdown `json:"breakdown"`
	Report    compat.Report     `json:"compatibility"`
}

// Builder convierte un armado completo y compatible en un line item.
type Builder struct {
	Policy      pricing.Policy
	Validator   *compat.Validator
	Placeholder string

	now   func() time.Time
	newID func() string
}

func NewBuilder(p pricing.Policy, v *compat.Validator, placeholder string) *Builder {
	if v == nil {
		v = compat.Default()
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}
	return &Builder{
		Policy:      p,
		Validator:   v,
		Placeholder: placeholder,
		now:         time.Now,
		newID:       func() string { return "build-" + uuid.NewString() },
	}
}

func (bl *Builder) Evaluate(b *domain.Build) Evaluation {
	return Evaluation{
		Breakdown: pricing.Compute(b, bl.Policy),
		Report:    bl.Validator.Validate(b),
	}
}

// Commit no modifica el armado. Si falta algún slot o alguna regla falla
// devuelve un *CommitError.
func (bl *Builder) Commit(b *domain.Build) (domain.LineItem, error) {
	ev := bl.Evaluate(b)
	return bl.commit(b, ev)
}

func (bl *Builder) commit(b *domain.Build, ev Evaluation) (domain.LineItem, error) {
	missing := b.Missing()
	if len(missing) > 0 || !ev.Report.Pass {
		return domain.LineItem{}, &CommitError{Missing: missing, Violations: ev.Report.Violations}
	}
	sel := b.Selected()
	parts := make([]string, 0, len(sel))
	for _, s := range sel {
		parts = append(parts, s.Component.ID)
	}
	return domain.LineItem{
		ID:        bl.newID(),
		Name:      fmt.Sprintf("Custom PC Build (%d parts)", b.CompletionCount()),
		Price:     ev.Breakdown.GrandTotal,
		Image:     bl.imageFor(b),
		Parts:     parts,
		CreatedAt: bl.now().UTC(),
	}, nil
}

// imageFor prioriza el gabinete, después la primera imagen en orden de slot.
func (bl *Builder) imageFor(b *domain.Build) string {
	if c, ok := b.Get(domain.SlotCase); ok && c.Image != "" {
		return c.Image
	}
	for _, s := range b.Selected() {
		if s.Component.Image != "" {
			return s.Component.Image
		}
	}
	return bl.Placeholder
}
