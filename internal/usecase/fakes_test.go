package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type fakeComponents struct {
	items map[string]domain.Component
	err   error
	last  domain.ComponentFilter
}

func newFakeComponents(cs ...domain.Component) *fakeComponents {
	f := &fakeComponents{items: map[string]domain.Component{}}
	for _, c := range cs {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeComponents) List(_ context.Context, flt domain.ComponentFilter) ([]domain.Component, error) {
	f.last = flt
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Component{}
	for _, c := range f.items {
		if flt.Category != "" && c.Category != flt.Category {
			continue
		}
		q := strings.ToLower(flt.Query)
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Brand), q) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeComponents) FindByID(_ context.Context, id string) (*domain.Component, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeComponents) Save(_ context.Context, c *domain.Component) error {
	if f.err != nil {
		return f.err
	}
	f.items[c.ID] = *c
	return nil
}

func (f *fakeComponents) Count(context.Context) (int64, error) { return int64(len(f.items)), f.err }

type fakeCart struct {
	submitted []domain.LineItem
	err       error
}

func (f *fakeCart) SubmitLineItem(_ context.Context, _ string, item domain.LineItem) (*domain.Confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.submitted = append(f.submitted, item)
	return &domain.Confirmation{CartItemID: uuid.New(), LineItemID: item.ID, SubmittedAt: time.Now()}, nil
}

type fakeStore struct {
	mu     sync.Mutex
	builds map[string][]byte
}

func newFakeStore() *fakeStore { return &fakeStore{builds: map[string][]byte{}} }

func (s *fakeStore) Load(_ context.Context, id string) (*domain.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := domain.NewBuild()
	if raw, ok := s.builds[id]; ok {
		if err := b.UnmarshalJSON(raw); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (s *fakeStore) Save(_ context.Context, id string, b *domain.Build) error {
	raw, err := b.MarshalJSON()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.builds[id] = raw
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.builds, id)
	s.mu.Unlock()
	return nil
}

var errBoom = errors.New("boom")

func comp(id string, slot domain.Slot, price, image string, specs map[string]string) domain.Component {
	return domain.Component{
		ID:       id,
		Name:     id,
		Brand:    "Brand",
		Category: slot,
		Image:    image,
		Price:    decimal.RequireFromString(price),
		Discount: decimal.Zero,
		Rating:   4,
		Stock:    5,
		Specs:    specs,
	}
}

// compatibleParts cubre los 8 slots sin conflictos.
func compatibleParts() []domain.Component {
	return []domain.Component{
		comp("cpu-1", domain.SlotCPU, "699.99", "/img/cpu.webp", map[string]string{"socket": "AM5", "tdp": "170W"}),
		comp("mb-1", domain.SlotMotherboard, "499.99", "/img/mb.webp", map[string]string{"socket": "AM5", "formFactor": "ATX"}),
		comp("ram-1", domain.SlotMemory, "189.99", "/img/ram.webp", map[string]string{"type": "DDR5"}),
		comp("ssd-1", domain.SlotStorage, "179.99", "/img/ssd.webp", nil),
		comp("gpu-1", domain.SlotGPU, "1599.99", "/img/gpu.webp", map[string]string{"length": "337mm", "power": "450W"}),
		comp("case-1", domain.SlotCase, "129.99", "/img/case.webp", map[string]string{"gpuClearance": "400mm", "motherboardSupport": "ATX, E-ATX"}),
		comp("psu-1", domain.SlotPowerSupply, "199.99", "/img/psu.webp", map[string]string{"wattage": "1000W"}),
		comp("cool-1", domain.SlotCooling, "149.99", "/img/cool.webp", nil),
	}
}

func fullBuild(parts []domain.Component) *domain.Build {
	b := domain.NewBuild()
	for _, p := range parts {
		if err := b.Select(p.Category, p); err != nil {
			panic(err)
		}
	}
	return b
}
