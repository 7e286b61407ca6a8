package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Vinaypunani/build-gaming/internal/compat"
	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/pricing"
)

const memoLimit = 512

// Snapshot es lo que ve la UI del armador después de cada operación.
type Snapshot struct {
	Build     *domain.Build     `json:"build"`
	Breakdown pricing.Breakdown `json:"breakdown"`
	Report    compat.Report     `json:"compatibility"`
	Completed int               `json:"completed"`
	Total     int               `json:"total"`
	Percent   float64           `json:"percent"`
	Missing   []domain.Slot     `json:"missing"`
	// slots nombrados por alguna violación, para resaltarlos en la UI
	Conflicts []domain.Slot `json:"conflicts"`
	Ready     bool          `json:"ready"`
}

// CommitResult es el line item entregado al carrito junto con la confirmación.
type CommitResult struct {
	Item         domain.LineItem      `json:"item"`
	Confirmation *domain.Confirmation `json:"confirmation"`
}

type BuilderUC struct {
	Sessions   domain.BuildStore
	Components domain.ComponentRepo
	Cart       domain.CartRepo
	Builder    *Builder

	mu   sync.Mutex
	memo map[string]Evaluation
}

func NewBuilderUC(sessions domain.BuildStore, components domain.ComponentRepo, cart domain.CartRepo, b *Builder) *BuilderUC {
	return &BuilderUC{
		Sessions:   sessions,
		Components: components,
		Cart:       cart,
		Builder:    b,
		memo:       map[string]Evaluation{},
	}
}

func (uc *BuilderUC) Get(ctx context.Context, session string) (*Snapshot, error) {
	b, err := uc.load(ctx, session)
	if err != nil {
		return nil, err
	}
	return uc.snapshot(b), nil
}

// Select resuelve el componente en el catálogo y lo coloca en el slot.
func (uc *BuilderUC) Select(ctx context.Context, session string, slot domain.Slot, componentID string) (*Snapshot, error) {
	if componentID == "" {
		return nil, fmt.Errorf("%w: componente vacío", ErrInvalidInput)
	}
	if !slot.Valid() {
		return nil, domain.ErrUnknownSlot
	}
	c, err := uc.Components.FindByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	b, err := uc.load(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := b.Select(slot, *c); err != nil {
		return nil, err
	}
	return uc.save(ctx, session, b)
}

func (uc *BuilderUC) Clear(ctx context.Context, session string, slot domain.Slot) (*Snapshot, error) {
	if !slot.Valid() {
		return nil, domain.ErrUnknownSlot
	}
	b, err := uc.load(ctx, session)
	if err != nil {
		return nil, err
	}
	b.Clear(slot)
	return uc.save(ctx, session, b)
}

func (uc *BuilderUC) Reset(ctx context.Context, session string) (*Snapshot, error) {
	if err := uc.Sessions.Delete(ctx, session); err != nil {
		return nil, err
	}
	return uc.snapshot(domain.NewBuild()), nil
}

// Commit entrega el armado al carrito. Si el armado no está listo devuelve
// un *CommitError y la sesión queda como estaba; los errores del carrito
// se devuelven sin cambios.
func (uc *BuilderUC) Commit(ctx context.Context, session string) (*CommitResult, error) {
	b, err := uc.load(ctx, session)
	if err != nil {
		return nil, err
	}
	item, err := uc.Builder.commit(b, uc.evaluate(b))
	if err != nil {
		return nil, err
	}
	conf, err := uc.Cart.SubmitLineItem(ctx, session, item)
	if err != nil {
		return nil, err
	}
	if err := uc.Sessions.Delete(ctx, session); err != nil {
		// el item ya está en el carrito; no se revierte
		log.Warn().Err(err).Str("session", session).Msg("no se pudo descartar el armado")
	}
	log.Info().Str("session", session).Str("item", item.ID).Str("price", item.Price.StringFixed(2)).Msg("armado enviado al carrito")
	return &CommitResult{Item: item, Confirmation: conf}, nil
}

// Evaluate expone el cálculo memoizado para otros casos de uso (cotización).
func (uc *BuilderUC) Evaluate(b *domain.Build) Evaluation {
	return uc.evaluate(b)
}

func (uc *BuilderUC) load(ctx context.Context, session string) (*domain.Build, error) {
	if session == "" {
		return nil, fmt.Errorf("%w: sesión vacía", ErrInvalidInput)
	}
	b, err := uc.Sessions.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = domain.NewBuild()
	}
	return b, nil
}

func (uc *BuilderUC) save(ctx context.Context, session string, b *domain.Build) (*Snapshot, error) {
	if err := uc.Sessions.Save(ctx, session, b); err != nil {
		return nil, err
	}
	return uc.snapshot(b), nil
}

func (uc *BuilderUC) snapshot(b *domain.Build) *Snapshot {
	ev := uc.evaluate(b)
	return &Snapshot{
		Build:     b,
		Breakdown: ev.Breakdown,
		Report:    ev.Report,
		Completed: b.CompletionCount(),
		Total:     domain.SlotCount,
		Percent:   b.CompletionPercent(),
		Missing:   b.Missing(),
		Conflicts: ev.Report.Slots(),
		Ready:     b.IsComplete() && ev.Report.Pass,
	}
}

// evaluate memoiza por huella de selección.
func (uc *BuilderUC) evaluate(b *domain.Build) Evaluation {
	key := b.Fingerprint()
	uc.mu.Lock()
	if ev, ok := uc.memo[key]; ok {
		uc.mu.Unlock()
		return ev
	}
	uc.mu.Unlock()

	ev := uc.Builder.Evaluate(b)

	uc.mu.Lock()
	if uc.memo == nil || len(uc.memo) >= memoLimit {
		uc.memo = map[string]Evaluation{}
	}
	uc.memo[key] = ev
	uc.mu.Unlock()
	return ev
}
