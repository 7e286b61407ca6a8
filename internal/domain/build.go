package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Build es la selección en curso de un armado: a lo sumo un componente por slot.
// No es seguro para uso concurrente; cada sesión tiene el suyo.
type Build struct {
	slots [SlotCount]*Component
}

// Selection es un slot ocupado junto con su componente.
type Selection struct {
	Slot      Slot
	Component Component
}

func NewBuild() *Build { return &Build{} }

// Select reemplaza la selección del slot. El componente tiene que ser de esa categoría.
func (b *Build) Select(slot Slot, c Component) error {
	i := slot.Index()
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	if c.Category != slot {
		return fmt.Errorf("%w: %s component %q into %s", ErrSlotMismatch, c.Category, c.ID, slot)
	}
	cp := c
	if c.Specs != nil {
		cp.Specs = make(map[string]string, len(c.Specs))
		for k, v := range c.Specs {
			cp.Specs[k] = v
		}
	}
	b.slots[i] = &cp
	return nil
}

func (b *Build) Clear(slot Slot) {
	if i := slot.Index(); i >= 0 {
		b.slots[i] = nil
	}
}

func (b *Build) Reset() {
	b.slots = [SlotCount]*Component{}
}

func (b *Build) Get(slot Slot) (Component, bool) {
	i := slot.Index()
	if i < 0 || b.slots[i] == nil {
		return Component{}, false
	}
	return *b.slots[i], true
}

func (b *Build) Has(slot Slot) bool {
	_, ok := b.Get(slot)
	return ok
}

func (b *Build) CompletionCount() int {
	n := 0
	for _, c := range b.slots {
		if c != nil {
			n++
		}
	}
	return n
}

func (b *Build) IsComplete() bool { return b.CompletionCount() == SlotCount }

func (b *Build) IsEmpty() bool { return b.CompletionCount() == 0 }

// CompletionPercent es el avance del armado entre 0 y 100.
func (b *Build) CompletionPercent() float64 {
	return float64(b.CompletionCount()) * 100 / SlotCount
}

// Selected devuelve los slots ocupados en orden de declaración.
func (b *Build) Selected() []Selection {
	out := make([]Selection, 0, SlotCount)
	for i, c := range b.slots {
		if c != nil {
			out = append(out, Selection{Slot: slotOrder[i], Component: *c})
		}
	}
	return out
}

// Missing devuelve los slots vacíos en orden de declaración.
func (b *Build) Missing() []Slot {
	out := []Slot{}
	for i, c := range b.slots {
		if c == nil {
			out = append(out, slotOrder[i])
		}
	}
	return out
}

// Fingerprint identifica el conjunto de selecciones. Incluye precio y specs
// de cada componente porque de ellos dependen el desglose y las reglas.
// Cada campo va con su largo adelante, así ningún valor puede imitar a otro.
func (b *Build) Fingerprint() string {
	h := sha256.New()
	field := func(v string) { fmt.Fprintf(h, "%d:%s", len(v), v) }
	for i, c := range b.slots {
		if c == nil {
			continue
		}
		field(string(slotOrder[i]))
		field(c.ID)
		field(c.Name)
		field(c.Price.String())
		field(c.Discount.String())
		keys := make([]string, 0, len(c.Specs))
		for k := range c.Specs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(h, "%d#", len(keys))
		for _, k := range keys {
			field(k)
			field(c.Specs[k])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (b *Build) Clone() *Build {
	out := &Build{}
	for i, c := range b.slots {
		if c != nil {
			_ = out.Select(slotOrder[i], *c)
		}
	}
	return out
}

// MarshalJSON serializa el armado como mapa slot -> componente (null si está vacío).
func (b *Build) MarshalJSON() ([]byte, error) {
	m := make(map[Slot]*Component, SlotCount)
	for i, c := range b.slots {
		m[slotOrder[i]] = c
	}
	return json.Marshal(m)
}

func (b *Build) UnmarshalJSON(data []byte) error {
	var m map[string]*Component
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	nb := Build{}
	for k, c := range m {
		if c == nil {
			continue
		}
		if err := nb.Select(Slot(k), *c); err != nil {
			return err
		}
	}
	*b = nb
	return nil
}
