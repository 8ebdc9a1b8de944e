package vertical

import "shopcatalog/catalog"

func category(id, de, en string) catalog.Category {
	return catalog.Category{ID: id, Name: catalog.LocalizedText{DE: de, EN: en}}
}

var tactical = Config{
	ID:       Tactical,
	IDPrefix: Tactical,
	Name:     catalog.Same("CKP Tactical"),
	Categories: []catalog.Category{
		category("tactical-apparel", "Taktische Bekleidung", "Tactical Apparel"),
		category("body-armor", "Körperschutz", "Body Armor"),
		category("helmets", "Helme", "Helmets"),
		category("plate-carriers", "Plattenträger", "Plate Carriers"),
		category("protective-clothing", "Schutzkleidung", "Protective Clothing"),
		category("medical-equipment", "Medizinische Ausrüstung", "Medical Equipment"),
		category("gear", "Ausrüstung", "Gear"),
	},
	CategoryRules: []CategoryRule{
		{ID: "tactical-apparel", Keywords: []string{"bekleidung", "apparel"}},
		{ID: "body-armor", Keywords: []string{"körper", "armor"}},
		{ID: "helmets", Keywords: []string{"helm"}},
		{ID: "plate-carriers", Keywords: []string{"platten", "carrier"}},
		{ID: "protective-clothing", Keywords: []string{"schutz"}},
		{ID: "medical-equipment", Keywords: []string{"medical", "medizin"}},
	},
	DefaultCategory:      "gear",
	DefaultCategoryLabel: "Taktische Bekleidung",
	FeatureColumns: []string{
		"Passform & Komfort (1)",
		"Passform & Komfort (2)",
		"Material & Verarbeitung (1)",
		"Material & Verarbeitung (2)",
		"Design & Funktion (1)",
		"Design & Funktion (2)",
		"Einsatz & Nutzung (1)",
		"Einsatz & Nutzung (2)",
	},
	DefaultFeatures: []string{"Hochwertige Verarbeitung", "Professional Grade"},
	DefaultSpec:     "Professional Grade",
	DefaultDescription: catalog.LocalizedText{
		DE: "Hochwertige taktische Ausrüstung für professionelle Anwendungen.",
		EN: "High-quality tactical equipment for professional use.",
	},
	PlaceholderColors: [2]string{"1a1a1a", "ff6b35"},
	Sheet: Sheet{
		PublishedBase: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQAXVycf3RA08sEoKuyLkEH3a1mv-QbW6sgW4Y7Fdovx4MzgMu3lhftC8xl4Ftrfw73qwcqkwZryUSj/pub",
		SpreadsheetID: "1Y54QSB8h2SDQb0-qSXaSoJamIfL8M11MiMwnmejyya4",
		GIDs:          map[string]string{catalog.LangDE: "0", catalog.LangEN: "717896398"},
	},
	Fallback: tacticalFallback,
}

var care = Config{
	ID:       Care,
	IDPrefix: Care,
	Name:     catalog.Same("CKP Care"),
	Categories: []catalog.Category{
		category("wound-care", "Wundversorgung", "Wound Care"),
		category("emergency", "Notfallbedarf", "Emergency"),
		category("cardiac", "Herz & Kreislauf", "Cardiac"),
		category("diagnostics", "Diagnostik", "Diagnostics"),
		category("protection", "Schutzausrüstung", "Protection"),
		category("hygiene", "Hygiene", "Hygiene"),
		category("bandages", "Verbandsmaterial", "Bandages"),
		category("accessories", "Zubehör", "Accessories"),
		category("medical-supplies", "Medizinbedarf", "Medical Supplies"),
	},
	CategoryRules: []CategoryRule{
		{ID: "wound-care", Keywords: []string{"wund", "wound"}},
		{ID: "emergency", Keywords: []string{"notfall", "emergency"}},
		{ID: "cardiac", Keywords: []string{"herz", "cardiac"}},
		{ID: "diagnostics", Keywords: []string{"diagnostik", "diagnos"}},
		{ID: "protection", Keywords: []string{"schutz", "protect"}},
		{ID: "hygiene", Keywords: []string{"hygiene", "sanit"}},
		{ID: "bandages", Keywords: []string{"verbands", "bandage"}},
		{ID: "accessories", Keywords: []string{"zubehör", "accessory"}},
	},
	DefaultCategory:      "medical-supplies",
	DefaultCategoryLabel: "Medizinbedarf",
	FeatureColumns: []string{
		"Anwendungsbereich (1)",
		"Anwendungsbereich (2)",
		"Zertifizierung (1)",
		"Zertifizierung (2)",
		"Material & Sterilität (1)",
		"Material & Sterilität (2)",
		"Verpackung & Menge (1)",
		"Verpackung & Menge (2)",
	},
	DefaultFeatures: []string{"Medizinisch geprüft", "CE-zertifiziert"},
	DefaultSpec:     "Medical Grade",
	DefaultDescription: catalog.LocalizedText{
		DE: "Hochwertiger Medizinbedarf für professionelle Anwendungen.",
		EN: "High-quality medical supplies for professional use.",
	},
	PlaceholderColors: [2]string{"e8f4fd", "1a6fa8"},
	Sheet: Sheet{
		PublishedBase: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQDYl3BAKURNbvuq7cvvH-d9e-YLn_Xh4lhF1A0Msdw5QhFm_bv18snxO7Mj5FMbGclOh6Lpx0KV4RQ/pub",
		SpreadsheetID: "1RftTJx43RBUQyOBjLJE-zEarNmVlFSJs7m0FSoDuJNA",
		GIDs:          map[string]string{catalog.LangDE: "0", catalog.LangEN: "873031282"},
	},
	Fallback: careFallback,
}

var merch = Config{
	ID:       Merch,
	IDPrefix: Merch,
	Name:     catalog.Same("CKP Merch"),
	Categories: []catalog.Category{
		category("clothing", "Kleidung", "Clothing"),
		category("headwear", "Kopfbedeckung", "Headwear"),
		category("drinkware", "Trinkgefäße", "Drinkware"),
		category("stickers", "Aufkleber", "Stickers"),
		category("stationery", "Schreibwaren", "Stationery"),
		category("bags", "Taschen", "Bags"),
		category("accessories", "Accessoires", "Accessories"),
		category("merch-general", "Sonstiges", "Other"),
	},
	CategoryRules: []CategoryRule{
		{ID: "clothing", Keywords: []string{"kleidung", "shirt", "hoodie", "apparel"}},
		{ID: "drinkware", Keywords: []string{"flasche", "bottle", "trink"}},
		{ID: "stickers", Keywords: []string{"sticker", "aufkleber", "druck"}},
		{ID: "stationery", Keywords: []string{"schreib", "stift", "kugel", "pen"}},
		{ID: "headwear", Keywords: []string{"cap", "mütze", "hat"}},
		{ID: "bags", Keywords: []string{"tasche", "bag", "rucksack"}},
		{ID: "accessories", Keywords: []string{"accessoir", "accessory"}},
	},
	DefaultCategory:      "merch-general",
	DefaultCategoryLabel: "Merch",
	FeatureColumns: []string{
		"Produktart (1)",
		"Produktart (2)",
		"Material (1)",
		"Material (2)",
		"Verfügbare Farben (1)",
		"Verfügbare Farben (2)",
		"Größen & Varianten (1)",
		"Größen & Varianten (2)",
	},
	DefaultFeatures: []string{"CKP Original", "Premium Qualität"},
	DefaultSpec:     "CKP Merch",
	DefaultDescription: catalog.LocalizedText{
		DE: "Hochwertiges CKP Merchandise für echte Profis.",
		EN: "Premium CKP merchandise for true professionals.",
	},
	PlaceholderColors: [2]string{"1a1a1a", "ff6b35"},
	Sheet: Sheet{
		PublishedBase: "https://docs.google.com/spreadsheets/d/e/2PACX-1vRPR9kWveE1QYMARsosTlmV_UYOiON6tsBabUkQEGHJ6SpkztnzDga-sHGDrmTt2K8H7h0CT5_urlkz/pub",
		SpreadsheetID: "15iPLMV-QeYy0q2pkZeRq9LIhg4Rl1r0oU02R7b8CjtQ",
		GIDs:          map[string]string{catalog.LangDE: "0", catalog.LangEN: "232678604"},
	},
	Fallback: merchFallback,
}

var workwear = Config{
	ID:       Workwear,
	IDPrefix: Workwear,
	Name:     catalog.Same("CKP Workwear"),
	Categories: []catalog.Category{
		category("jackets", "Jacken", "Jackets"),
		category("trousers", "Hosen", "Trousers"),
		category("coveralls", "Overalls", "Coveralls"),
		category("vests", "Westen", "Vests"),
		category("shirts", "Hemden & Shirts", "Shirts"),
		category("protection", "Schutzkleidung", "Protection"),
		category("workwear-apparel", "Berufsbekleidung", "Work Apparel"),
		category("accessories", "Zubehör", "Accessories"),
	},
	CategoryRules: []CategoryRule{
		{ID: "jackets", Keywords: []string{"jacke", "jacket"}},
		{ID: "trousers", Keywords: []string{"hose", "trouser"}},
		{ID: "coveralls", Keywords: []string{"overall", "coverall"}},
		{ID: "vests", Keywords: []string{"weste", "vest"}},
		{ID: "shirts", Keywords: []string{"shirt", "hemd"}},
		{ID: "protection", Keywords: []string{"schutz", "protect"}},
		{ID: "accessories", Keywords: []string{"zubehör", "accessory"}},
	},
	DefaultCategory:      "workwear-apparel",
	DefaultCategoryLabel: "Workwear",
	FeatureColumns: []string{
		"Passform & Schnitt (1)",
		"Passform & Schnitt (2)",
		"Material & Qualität (1)",
		"Material & Qualität (2)",
		"Schutz & Sicherheit (1)",
		"Schutz & Sicherheit (2)",
		"Einsatzbereich (1)",
		"Einsatzbereich (2)",
	},
	DefaultFeatures: []string{"Hochwertige Verarbeitung", "Professional Grade"},
	DefaultSpec:     "Professional Grade",
	DefaultDescription: catalog.LocalizedText{
		DE: "Hochwertige Berufsbekleidung für professionelle Anwendungen.",
		EN: "High-quality workwear for professional use.",
	},
	PlaceholderColors: [2]string{"2d4a2d", "a3c47a"},
	Sheet: Sheet{
		PublishedBase: "https://docs.google.com/spreadsheets/d/e/2PACX-1vStgR9svrKTscTa0_wkTzxneVFMMyNSJGKFh1QMWAqfI3gKqD7Tx1xCujw4L1USdQTwfgMVlTt1eZO6/pub",
		SpreadsheetID: "18_YdSTVieki1fZJFtRl9feEhalB3mXmL6W2Vfn8IW1w",
		GIDs:          map[string]string{catalog.LangDE: "0", catalog.LangEN: "1136313357"},
	},
	Fallback: workwearFallback,
}
