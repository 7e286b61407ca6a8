package compat

import (
	"strings"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

const (
	RuleSocket       = "cpu_socket"
	RulePower        = "power_budget"
	RuleGPUClearance = "gpu_clearance"
	RuleMemoryType   = "memory_type"
	RuleFormFactor   = "form_factor"
	RuleCoolerSocket = "cooler_socket"
)

// claves de specs que leen las reglas; el catálogo es libre, así que se aceptan alias
var (
	socketKeys        = []string{"socket"}
	drawKeys          = []string{"tdp", "power", "powerDraw", "tgp"}
	psuWattKeys       = []string{"wattage", "power"}
	gpuLengthKeys     = []string{"length", "gpuLength"}
	caseClearanceKeys = []string{"gpuClearance", "maxGpuLength"}
	ramTypeKeys       = []string{"type", "memoryType"}
	boardMemKeys      = []string{"memoryType", "memorySlots", "memory"}
	boardFormKeys     = []string{"formFactor"}
	caseBoardKeys     = []string{"motherboardSupport"}
	coolerSocketKeys  = []string{"sockets", "socketSupport"}
)

type Options struct {
	// PowerOverheadWatts se suma al consumo estimado (ventiladores, USB, margen)
	PowerOverheadWatts float64
}

// DefaultRegistry arma el registro con las reglas canónicas del armador.
func DefaultRegistry(opts Options) *Registry {
	return NewRegistry(
		SocketMatch(),
		PowerBudget(opts.PowerOverheadWatts),
		GPUClearance(),
		MemoryType(),
		FormFactor(),
		CoolerSocket(),
	)
}

func SocketMatch() Rule {
	return Definition{
		ID:       RuleSocket,
		Requires: []domain.Slot{domain.SlotCPU, domain.SlotMotherboard},
		Eval: func(b *domain.Build) Outcome {
			cpu, _ := b.Get(domain.SlotCPU)
			mb, _ := b.Get(domain.SlotMotherboard)
			cs, ok1 := cpu.Spec(socketKeys...)
			ms, ok2 := mb.Spec(socketKeys...)
			if !ok1 || !ok2 {
				return Skip()
			}
			if NormalizeSocket(cs) != NormalizeSocket(ms) {
				return Failf(nil, "CPU socket %s does not match motherboard socket %s", cs, ms)
			}
			return Ok()
		},
	}
}

// PowerBudget compara el consumo estimado de todo el armado contra la fuente.
func PowerBudget(overhead float64) Rule {
	return Definition{
		ID:       RulePower,
		Requires: []domain.Slot{domain.SlotPowerSupply},
		Involves: domain.Slots(),
		Eval: func(b *domain.Build) Outcome {
			psu, _ := b.Get(domain.SlotPowerSupply)
			raw, ok := psu.Spec(psuWattKeys...)
			if !ok {
				return Skip()
			}
			capacity, ok := ParseWatts(raw)
			if !ok {
				return Skip()
			}
			draw := overhead
			var consumers []domain.Slot
			for _, s := range b.Selected() {
				if s.Slot == domain.SlotPowerSupply {
					continue
				}
				v, ok := s.Component.Spec(drawKeys...)
				if !ok {
					continue
				}
				if w, ok := ParseWatts(v); ok {
					draw += w
					consumers = append(consumers, s.Slot)
				}
			}
			if len(consumers) == 0 {
				return Skip()
			}
			if draw > capacity {
				return Failf(append(consumers, domain.SlotPowerSupply),
					"estimated draw %.0fW exceeds power supply rating %.0fW", draw, capacity)
			}
			return Ok()
		},
	}
}

func GPUClearance() Rule {
	return Definition{
		ID:       RuleGPUClearance,
		Requires: []domain.Slot{domain.SlotGPU, domain.SlotCase},
		Eval: func(b *domain.Build) Outcome {
			gpu, _ := b.Get(domain.SlotGPU)
			cs, _ := b.Get(domain.SlotCase)
			lv, ok1 := gpu.Spec(gpuLengthKeys...)
			cv, ok2 := cs.Spec(caseClearanceKeys...)
			if !ok1 || !ok2 {
				return Skip()
			}
			length, ok1 := ParseMillimeters(lv)
			clearance, ok2 := ParseMillimeters(cv)
			if !ok1 || !ok2 {
				return Skip()
			}
			if length > clearance {
				return Failf(nil, "graphics card length %.0fmm exceeds case clearance %.0fmm", length, clearance)
			}
			return Ok()
		},
	}
}

func MemoryType() Rule {
	return Definition{
		ID:       RuleMemoryType,
		Requires: []domain.Slot{domain.SlotMotherboard, domain.SlotMemory},
		Eval: func(b *domain.Build) Outcome {
			ram, _ := b.Get(domain.SlotMemory)
			mb, _ := b.Get(domain.SlotMotherboard)
			rv, ok1 := ram.Spec(ramTypeKeys...)
			mv, ok2 := mb.Spec(boardMemKeys...)
			if !ok1 || !ok2 {
				return Skip()
			}
			rt, ok1 := ParseMemoryType(rv)
			mt, ok2 := ParseMemoryType(mv)
			if !ok1 || !ok2 {
				return Skip()
			}
			if rt != mt {
				return Failf(nil, "memory type %s is not supported by motherboard (%s)", rt, mt)
			}
			return Ok()
		},
	}
}

func FormFactor() Rule {
	return Definition{
		ID:       RuleFormFactor,
		Requires: []domain.Slot{domain.SlotMotherboard, domain.SlotCase},
		Eval: func(b *domain.Build) Outcome {
			mb, _ := b.Get(domain.SlotMotherboard)
			cs, _ := b.Get(domain.SlotCase)
			ff, ok1 := mb.Spec(boardFormKeys...)
			supported, ok2 := cs.Spec(caseBoardKeys...)
			if !ok1 || !ok2 {
				return Skip()
			}
			if !containsToken(SplitList(supported), ff, normalizeFormFactor) {
				return Failf(nil, "case does not fit a %s motherboard (supports %s)", ff, supported)
			}
			return Ok()
		},
	}
}

func CoolerSocket() Rule {
	return Definition{
		ID:       RuleCoolerSocket,
		Requires: []domain.Slot{domain.SlotCPU, domain.SlotCooling},
		Eval: func(b *domain.Build) Outcome {
			cpu, _ := b.Get(domain.SlotCPU)
			cooler, _ := b.Get(domain.SlotCooling)
			cs, ok1 := cpu.Spec(socketKeys...)
			list, ok2 := cooler.Spec(coolerSocketKeys...)
			if !ok1 || !ok2 {
				return Skip()
			}
			if !containsToken(SplitList(list), cs, NormalizeSocket) {
				return Failf(nil, "cooler does not support CPU socket %s", cs)
			}
			return Ok()
		},
	}
}

func normalizeFormFactor(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), ""))
}

func containsToken(list []string, want string, norm func(string) string) bool {
	w := norm(want)
	for _, v := range list {
		if norm(v) == w {
			return true
		}
	}
	return false
}
