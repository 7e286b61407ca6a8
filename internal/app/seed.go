package app

import (
	"github.com/shopspring/decimal"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// seedComponents is the storefront's launch catalog, one block per builder slot.
func seedComponents() []domain.Component {
	return []domain.Component{
		{
			ID: "cpu-1", Name: "Ryzen 9 7950X", Brand: "AMD", Category: domain.SlotCPU,
			Image: "/images/components/cpu-amd.webp", Price: money("699.99"), Discount: money("50"),
			Rating: 5, Reviews: 128, Stock: 15,
			Specs: map[string]string{
				"cores":      "16 Cores",
				"threads":    "32 Threads",
				"baseClock":  "4.5 GHz",
				"boostClock": "5.7 GHz",
				"tdp":        "170W",
				"socket":     "AM5",
			},
		},
		{
			ID: "cpu-2", Name: "Core i9-13900K", Brand: "Intel", Category: domain.SlotCPU,
			Image: "/images/components/cpu-intel.webp", Price: money("589.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 87, Stock: 8,
			Specs: map[string]string{
				"cores":      "24 Cores (8P+16E)",
				"threads":    "32 Threads",
				"baseClock":  "3.0 GHz",
				"boostClock": "5.8 GHz",
				"tdp":        "125W",
				"socket":     "LGA 1700",
			},
		},
		{
			ID: "cpu-3", Name: "Ryzen 7 7800X3D", Brand: "AMD", Category: domain.SlotCPU,
			Image: "/images/components/cpu-amd-2.webp", Price: money("449.99"), Discount: money("30"),
			Rating: 5, Reviews: 64, Stock: 20,
			Specs: map[string]string{
				"cores":      "8 Cores",
				"threads":    "16 Threads",
				"baseClock":  "4.2 GHz",
				"boostClock": "5.0 GHz",
				"tdp":        "120W",
				"socket":     "AM5",
			},
		},
		{
			ID: "cpu-4", Name: "Core i7-13700K", Brand: "Intel", Category: domain.SlotCPU,
			Image: "/images/components/cpu-intel-2.webp", Price: money("419.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 53, Stock: 12,
			Specs: map[string]string{
				"cores":      "16 Cores (8P+8E)",
				"threads":    "24 Threads",
				"baseClock":  "3.4 GHz",
				"boostClock": "5.4 GHz",
				"tdp":        "125W",
				"socket":     "LGA 1700",
			},
		},
		{
			ID: "cpu-5", Name: "Ryzen 5 7600X", Brand: "AMD", Category: domain.SlotCPU,
			Image: "/images/components/cpu-amd-3.webp", Price: money("299.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 42, Stock: 25,
			Specs: map[string]string{
				"cores":      "6 Cores",
				"threads":    "12 Threads",
				"baseClock":  "4.7 GHz",
				"boostClock": "5.3 GHz",
				"tdp":        "105W",
				"socket":     "AM5",
			},
		},
		{
			ID: "mb-1", Name: "ROG Crosshair X670E Hero", Brand: "ASUS", Category: domain.SlotMotherboard,
			Image: "/images/components/mb-asus.webp", Price: money("699.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 34, Stock: 7,
			Specs: map[string]string{
				"chipset":     "AMD X670E",
				"formFactor":  "ATX",
				"memorySlots": "4x DIMM, Max 128GB",
				"socket":      "AM5",
				"pciSlots":    "2x PCIe 5.0 x16",
				"m2Slots":     "4x M.2 NVMe PCIe 5.0",
			},
		},
		{
			ID: "mb-2", Name: "MAG B650 TOMAHAWK WIFI", Brand: "MSI", Category: domain.SlotMotherboard,
			Image: "/images/components/mb-msi.webp", Price: money("259.99"), Discount: money("20"),
			Rating: 4, Reviews: 28, Stock: 15,
			Specs: map[string]string{
				"chipset":     "AMD B650",
				"formFactor":  "ATX",
				"memorySlots": "4x DIMM, Max 128GB",
				"socket":      "AM5",
				"pciSlots":    "1x PCIe 5.0 x16",
				"m2Slots":     "3x M.2 NVMe PCIe 4.0",
			},
		},
		{
			ID: "mb-3", Name: "Z790 AORUS MASTER", Brand: "Gigabyte", Category: domain.SlotMotherboard,
			Image: "/images/components/mb-gigabyte.webp", Price: money("499.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 19, Stock: 9,
			Specs: map[string]string{
				"chipset":     "Intel Z790",
				"formFactor":  "ATX",
				"memorySlots": "4x DIMM, Max 128GB",
				"socket":      "LGA 1700",
				"pciSlots":    "1x PCIe 5.0 x16",
				"m2Slots":     "4x M.2 NVMe PCIe 4.0",
			},
		},
		{
			ID: "mb-4", Name: "MPG Z790 EDGE WIFI", Brand: "MSI", Category: domain.SlotMotherboard,
			Image: "/images/components/mb-msi-2.webp", Price: money("349.99"), Discount: money("30"),
			Rating: 4, Reviews: 23, Stock: 11,
			Specs: map[string]string{
				"chipset":     "Intel Z790",
				"formFactor":  "ATX",
				"memorySlots": "4x DIMM, Max 128GB",
				"socket":      "LGA 1700",
				"pciSlots":    "1x PCIe 5.0 x16",
				"m2Slots":     "4x M.2 NVMe PCIe 4.0",
			},
		},
		{
			ID: "ram-1", Name: "Trident Z5 RGB DDR5-6000 32GB", Brand: "G.SKILL", Category: domain.SlotMemory,
			Image: "/images/components/ram-gskill.webp", Price: money("179.99"), Discount: money("0"),
			Rating: 5, Reviews: 42, Stock: 20,
			Specs: map[string]string{
				"type":     "DDR5",
				"capacity": "32GB (2x16GB)",
				"speed":    "6000MHz",
				"timing":   "CL36",
				"voltage":  "1.35V",
				"rgb":      "Yes",
			},
		},
		{
			ID: "ram-2", Name: "Vengeance RGB DDR5-5600 32GB", Brand: "Corsair", Category: domain.SlotMemory,
			Image: "/images/components/ram-corsair.webp", Price: money("159.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 38, Stock: 25,
			Specs: map[string]string{
				"type":     "DDR5",
				"capacity": "32GB (2x16GB)",
				"speed":    "5600MHz",
				"timing":   "CL36",
				"voltage":  "1.25V",
				"rgb":      "Yes",
			},
		},
		{
			ID: "ram-3", Name: "Ripjaws S5 DDR5-5200 64GB", Brand: "G.SKILL", Category: domain.SlotMemory,
			Image: "/images/components/ram-gskill-2.webp", Price: money("249.99"), Discount: money("30"),
			Rating: 4.5, Reviews: 19, Stock: 12,
			Specs: map[string]string{
				"type":     "DDR5",
				"capacity": "64GB (2x32GB)",
				"speed":    "5200MHz",
				"timing":   "CL42",
				"voltage":  "1.25V",
				"rgb":      "No",
			},
		},
		{
			ID: "storage-1", Name: "980 PRO PCIe 4.0 NVMe SSD 2TB", Brand: "Samsung", Category: domain.SlotStorage,
			Image: "/images/components/ssd-samsung.webp", Price: money("199.99"), Discount: money("40"),
			Rating: 5, Reviews: 76, Stock: 30,
			Specs: map[string]string{
				"type":       "NVMe SSD",
				"capacity":   "2TB",
				"interface":  "PCIe 4.0 x4",
				"form":       "M.2 2280",
				"readSpeed":  "7,000 MB/s",
				"writeSpeed": "5,100 MB/s",
			},
		},
		{
			ID: "storage-2", Name: "FireCuda 530 PCIe 4.0 NVMe SSD 4TB", Brand: "Seagate", Category: domain.SlotStorage,
			Image: "/images/components/ssd-seagate.webp", Price: money("429.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 34, Stock: 15,
			Specs: map[string]string{
				"type":       "NVMe SSD",
				"capacity":   "4TB",
				"interface":  "PCIe 4.0 x4",
				"form":       "M.2 2280",
				"readSpeed":  "7,300 MB/s",
				"writeSpeed": "6,900 MB/s",
			},
		},
		{
			ID: "storage-3", Name: "WD_BLACK SN850X NVMe SSD 2TB", Brand: "Western Digital", Category: domain.SlotStorage,
			Image: "/images/components/ssd-wd.webp", Price: money("189.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 48, Stock: 22,
			Specs: map[string]string{
				"type":       "NVMe SSD",
				"capacity":   "2TB",
				"interface":  "PCIe 4.0 x4",
				"form":       "M.2 2280",
				"readSpeed":  "7,300 MB/s",
				"writeSpeed": "6,600 MB/s",
			},
		},
		{
			ID: "gpu-1", Name: "GeForce RTX 4090 Gaming X Trio 24G", Brand: "MSI", Category: domain.SlotGPU,
			Image: "/images/components/gpu-msi.webp", Price: money("1999.99"), Discount: money("0"),
			Rating: 5, Reviews: 53, Stock: 5,
			Specs: map[string]string{
				"gpu":       "NVIDIA GeForce RTX 4090",
				"memory":    "24GB GDDR6X",
				"coreClock": "2.52 GHz (Boost)",
				"interface": "PCIe 4.0 x16",
				"length":    "337mm",
				"power":     "450W",
			},
		},
		{
			ID: "gpu-2", Name: "Radeon RX 7900 XTX Gaming OC 24G", Brand: "Gigabyte", Category: domain.SlotGPU,
			Image: "/images/components/gpu-gigabyte.webp", Price: money("1099.99"), Discount: money("100"),
			Rating: 4.5, Reviews: 37, Stock: 8,
			Specs: map[string]string{
				"gpu":       "AMD Radeon RX 7900 XTX",
				"memory":    "24GB GDDR6",
				"coreClock": "2.5 GHz (Boost)",
				"interface": "PCIe 4.0 x16",
				"length":    "331mm",
				"power":     "355W",
			},
		},
		{
			ID: "gpu-3", Name: "GeForce RTX 4080 SUPER TUF Gaming OC", Brand: "ASUS", Category: domain.SlotGPU,
			Image: "/images/components/gpu-asus.webp", Price: money("1199.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 28, Stock: 10,
			Specs: map[string]string{
				"gpu":       "NVIDIA GeForce RTX 4080 SUPER",
				"memory":    "16GB GDDR6X",
				"coreClock": "2.55 GHz (Boost)",
				"interface": "PCIe 4.0 x16",
				"length":    "348mm",
				"power":     "320W",
			},
		},
		{
			ID: "case-1", Name: "H7 Flow", Brand: "NZXT", Category: domain.SlotCase,
			Image: "/images/components/case-nzxt.webp", Price: money("129.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 45, Stock: 20,
			Specs: map[string]string{
				"type":               "Mid Tower",
				"motherboardSupport": "Mini-ITX, Micro-ATX, ATX, E-ATX",
				"dimensions":         "230mm x 505mm x 480mm",
				"gpuClearance":       "400mm",
				"fans":               "3x 120mm included",
				"material":           "Steel, Tempered Glass",
			},
		},
		{
			ID: "case-2", Name: "5000D AIRFLOW", Brand: "Corsair", Category: domain.SlotCase,
			Image: "/images/components/case-corsair.webp", Price: money("174.99"), Discount: money("25"),
			Rating: 5, Reviews: 62, Stock: 15,
			Specs: map[string]string{
				"type":               "Mid Tower",
				"motherboardSupport": "Mini-ITX, Micro-ATX, ATX, E-ATX",
				"dimensions":         "520mm x 245mm x 520mm",
				"gpuClearance":       "420mm",
				"fans":               "3x 120mm included",
				"material":           "Steel, Tempered Glass",
			},
		},
		{
			ID: "case-3", Name: "O11 Dynamic EVO", Brand: "Lian Li", Category: domain.SlotCase,
			Image: "/images/components/case-lianli.webp", Price: money("159.99"), Discount: money("0"),
			Rating: 5, Reviews: 57, Stock: 18,
			Specs: map[string]string{
				"type":               "Mid Tower",
				"motherboardSupport": "Mini-ITX, Micro-ATX, ATX, E-ATX",
				"dimensions":         "464mm x 285mm x 459mm",
				"gpuClearance":       "422mm",
				"fans":               "None included",
				"material":           "Aluminum, Tempered Glass",
			},
		},
		{
			ID: "psu-1", Name: "ROG Thor 1000W Platinum II", Brand: "ASUS", Category: domain.SlotPowerSupply,
			Image: "/images/components/psu-asus.webp", Price: money("299.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 28, Stock: 15,
			Specs: map[string]string{
				"wattage":    "1000W",
				"efficiency": "80+ Platinum",
				"modular":    "Fully Modular",
				"fanSize":    "135mm",
				"warranty":   "10 Years",
				"features":   "OLED Power Display",
			},
		},
		{
			ID: "psu-2", Name: "RM1000x 80+ Gold", Brand: "Corsair", Category: domain.SlotPowerSupply,
			Image: "/images/components/psu-corsair.webp", Price: money("189.99"), Discount: money("20"),
			Rating: 5, Reviews: 47, Stock: 25,
			Specs: map[string]string{
				"wattage":    "1000W",
				"efficiency": "80+ Gold",
				"modular":    "Fully Modular",
				"fanSize":    "135mm",
				"warranty":   "10 Years",
				"features":   "Zero RPM Mode",
			},
		},
		{
			ID: "psu-3", Name: "Supernova 850 G7 80+ Gold", Brand: "EVGA", Category: domain.SlotPowerSupply,
			Image: "/images/components/psu-evga.webp", Price: money("149.99"), Discount: money("0"),
			Rating: 4.5, Reviews: 32, Stock: 20,
			Specs: map[string]string{
				"wattage":    "850W",
				"efficiency": "80+ Gold",
				"modular":    "Fully Modular",
				"fanSize":    "135mm",
				"warranty":   "10 Years",
				"features":   "ECO Mode",
			},
		},
		{
			ID: "cooling-1", Name: "Kraken Z73 RGB 360mm AIO", Brand: "NZXT", Category: domain.SlotCooling,
			Image: "/images/components/cooling-nzxt.webp", Price: money("299.99"), Discount: money("0"),
			Rating: 5, Reviews: 38, Stock: 12,
			Specs: map[string]string{
				"type":          "Liquid Cooling",
				"radiatorSize":  "360mm",
				"fans":          "3x 120mm RGB Fans",
				"compatibility": "Intel & AMD",
				"rgb":           "Yes",
				"features":      "LCD Display",
			},
		},
		{
			ID: "cooling-2", Name: "iCUE H150i ELITE CAPELLIX XT 360mm AIO", Brand: "Corsair", Category: domain.SlotCooling,
			Image: "/images/components/cooling-corsair.webp", Price: money("219.99"), Discount: money("30"),
			Rating: 4.5, Reviews: 42, Stock: 15,
			Specs: map[string]string{
				"type":          "Liquid Cooling",
				"radiatorSize":  "360mm",
				"fans":          "3x 120mm RGB Fans",
				"compatibility": "Intel & AMD",
				"rgb":           "Yes",
				"features":      "Commander CORE XT included",
			},
		},
		{
			ID: "cooling-3", Name: "NH-D15 chromax.black", Brand: "Noctua", Category: domain.SlotCooling,
			Image: "/images/components/cooling-noctua.webp", Price: money("109.99"), Discount: money("0"),
			Rating: 5, Reviews: 65, Stock: 20,
			Specs: map[string]string{
				"type":          "Air Cooling",
				"dimensions":    "165mm x 150mm x 161mm",
				"fans":          "2x 140mm Fans",
				"compatibility": "Intel & AMD",
				"rgb":           "No",
				"features":      "Dual Tower Design",
			},
		},
	}
}
