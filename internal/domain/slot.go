package domain

import (
	"fmt"
	"strings"
)

// Slot es una de las categorías fijas de componentes de un armado.
type Slot string

const (
	SlotCPU         Slot = "cpu"
	SlotMotherboard Slot = "motherboard"
	SlotMemory      Slot = "memory"
	SlotStorage     Slot = "storage"
	SlotGPU         Slot = "gpu"
	SlotCase        Slot = "case"
	SlotPowerSupply Slot = "powerSupply"
	SlotCooling     Slot = "cooling"
)

// SlotCount es la cantidad de slots que completa un armado.
const SlotCount = 8

var slotOrder = [SlotCount]Slot{
	SlotCPU,
	SlotMotherboard,
	SlotMemory,
	SlotStorage,
	SlotGPU,
	SlotCase,
	SlotPowerSupply,
	SlotCooling,
}

var slotLabels = map[Slot]string{
	SlotCPU:         "Processor",
	SlotMotherboard: "Motherboard",
	SlotMemory:      "Memory",
	SlotStorage:     "Storage",
	SlotGPU:         "Graphics Card",
	SlotCase:        "Case",
	SlotPowerSupply: "Power Supply",
	SlotCooling:     "CPU Cooling",
}

// nombres de categoría tal como los carga el back-office
var slotCategories = map[Slot]string{
	SlotCPU:         "CPU",
	SlotMotherboard: "Motherboard",
	SlotMemory:      "RAM",
	SlotStorage:     "Storage",
	SlotGPU:         "GPU",
	SlotCase:        "Case",
	SlotPowerSupply: "Power Supply",
	SlotCooling:     "Cooling",
}

// Slots devuelve todos los slots en orden de declaración
func Slots() []Slot {
	s := slotOrder
	return s[:]
}

// Index es la posición del slot en orden de declaración, o -1
func (s Slot) Index() int {
	for i, v := range slotOrder {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Slot) Valid() bool { return s.Index() >= 0 }

func (s Slot) Label() string {
	if l, ok := slotLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Slot) CatalogCategory() string {
	return slotCategories[s]
}

// ParseSlot acepta el id del slot ("powerSupply") o el nombre de categoría del catálogo ("Power Supply", "RAM").
func ParseSlot(v string) (Slot, error) {
	key := normalizeSlotKey(v)
	if key == "" {
		return "", fmt.Errorf("%w: vacío", ErrUnknownSlot)
	}
	for _, s := range slotOrder {
		if normalizeSlotKey(string(s)) == key || normalizeSlotKey(slotCategories[s]) == key {
			return s, nil
		}
	}
	switch key {
	case "psu":
		return SlotPowerSupply, nil
	case "processor":
		return SlotCPU, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, v)
}

func normalizeSlotKey(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, "_", "")
	return strings.ReplaceAll(v, "-", "")
}
