package vertical

import "shopcatalog/catalog"

type fallbackItem struct {
	id, sku, division, category string
	name, description           catalog.LocalizedText
	tag                         catalog.LocalizedText
	badge                       *catalog.LocalizedText
	specs, features             catalog.LocalizedList
	image                       string
}

func (f fallbackItem) product() catalog.Product {
	bestseller := f.badge != nil && f.badge.DE == "BESTSELLER"
	return catalog.Product{
		ID:          f.id,
		SKU:         f.sku,
		Division:    f.division,
		Name:        f.name,
		Description: f.description,
		Category:    f.category,
		Tags:        catalog.LocalizedList{DE: []string{f.tag.DE}, EN: []string{f.tag.EN}},
		Badge:       f.badge,
		Specs:       f.specs,
		Features:    f.features,
		Price:       catalog.PriceOnRequest,
		Images:      []string{f.image},
		ImageURL:    f.image,
		Bestseller:  bestseller,
	}
}

func products(items ...fallbackItem) []catalog.Product {
	out := make([]catalog.Product, len(items))
	for i, item := range items {
		out[i] = item.product()
	}
	return out
}

func text(de, en string) catalog.LocalizedText {
	return catalog.LocalizedText{DE: de, EN: en}
}

func badge(de, en string) *catalog.LocalizedText {
	value := text(de, en)
	return &value
}

func list(de, en []string) catalog.LocalizedList {
	return catalog.LocalizedList{DE: de, EN: en}
}

var tacticalFallback = products(
	fallbackItem{
		id: "tactical-001", sku: "TAC-SHIRT-001", division: Tactical, category: "tactical-apparel",
		name:        text("Combat Shirt Gen. III", "Combat Shirt Gen. III"),
		description: text("Atmungsaktives Einsatzhemd mit verstärkten Ellbogen.", "Breathable combat shirt with reinforced elbows."),
		tag:         text("Taktische Bekleidung", "Tactical Apparel"),
		badge:       badge("BESTSELLER", "BESTSELLER"),
		specs:       list([]string{"Ripstop", "Flammhemmend"}, []string{"Ripstop", "Flame-Retardant"}),
		features:    list([]string{"Ellbogenpolster-Taschen", "Schnelltrocknend"}, []string{"Elbow Pad Pockets", "Quick-Dry"}),
		image:       "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=Combat%20Shirt",
	},
	fallbackItem{
		id: "tactical-002", sku: "TAC-PC-001", division: Tactical, category: "plate-carriers",
		name:        text("Plattenträger Modular", "Modular Plate Carrier"),
		description: text("Modularer Plattenträger mit MOLLE-System.", "Modular plate carrier with MOLLE webbing."),
		tag:         text("Plattenträger", "Plate Carriers"),
		specs:       list([]string{"MOLLE", "Schnellverschluss"}, []string{"MOLLE", "Quick Release"}),
		features:    list([]string{"Verstellbare Schultergurte", "Laser-Cut-Panels"}, []string{"Adjustable Shoulder Straps", "Laser-Cut Panels"}),
		image:       "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=Plate%20Carrier",
	},
)

var careFallback = products(
	fallbackItem{
		id: "care-001", sku: "CARE-IFAK-001", division: Care, category: "emergency",
		name:        text("Notfall-Kit IFAK", "IFAK Emergency Kit"),
		description: text("Kompaktes Erste-Hilfe-Set für Einsatzkräfte.", "Compact first-aid kit for first responders."),
		tag:         text("Notfallbedarf", "Emergency"),
		badge:       badge("BESTSELLER", "BESTSELLER"),
		specs:       list([]string{"CE-zertifiziert", "Kompakt"}, []string{"CE Certified", "Compact"}),
		features:    list([]string{"Tourniquet", "Israeli Bandage"}, []string{"Tourniquet", "Israeli Bandage"}),
		image:       "https://via.placeholder.com/400x400/e8f4fd/1a6fa8?text=IFAK",
	},
	fallbackItem{
		id: "care-002", sku: "CARE-WND-001", division: Care, category: "wound-care",
		name:        text("Wundauflage steril", "Sterile Wound Dressing"),
		description: text("Sterile, nicht haftende Wundauflage.", "Sterile non-adherent wound dressing."),
		tag:         text("Wundversorgung", "Wound Care"),
		specs:       list([]string{"Steril", "10 x 10 cm"}, []string{"Sterile", "10 x 10 cm"}),
		features:    list([]string{"Nicht haftend", "Einzeln verpackt"}, []string{"Non-Adherent", "Individually Packed"}),
		image:       "https://via.placeholder.com/400x400/e8f4fd/1a6fa8?text=Wundauflage",
	},
)

var merchFallback = products(
	fallbackItem{
		id: "merch-001", sku: "MERCH-HOOD-001", division: Merch, category: "clothing",
		name:        text("CKP Hoodie", "CKP Hoodie"),
		description: text("Schwerer Hoodie mit CKP-Stick.", "Heavyweight hoodie with CKP embroidery."),
		tag:         text("Kleidung", "Clothing"),
		badge:       badge("NEU", "NEW"),
		specs:       list([]string{"Baumwolle", "Unisex"}, []string{"Cotton", "Unisex"}),
		features:    list([]string{"Bestickt", "Känguru-Tasche"}, []string{"Embroidered", "Kangaroo Pocket"}),
		image:       "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=CKP%20Hoodie",
	},
	fallbackItem{
		id: "merch-002", sku: "MERCH-CAP-001", division: Merch, category: "headwear",
		name:        text("CKP Cap", "CKP Cap"),
		description: text("Verstellbare Cap mit Logo-Patch.", "Adjustable cap with logo patch."),
		tag:         text("Kopfbedeckung", "Headwear"),
		specs:       list([]string{"One Size"}, []string{"One Size"}),
		features:    list([]string{"Klettverschluss", "Logo-Patch"}, []string{"Hook-and-Loop Strap", "Logo Patch"}),
		image:       "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=CKP%20Cap",
	},
)

var workwearFallback = products(
	fallbackItem{
		id: "workwear-001", sku: "WW-HOSE-001", division: Workwear, category: "trousers",
		name:        text("Arbeitshose X-Pro Stretch", "Work Trousers X-Pro Stretch"),
		description: text("Robuste Stretchhose mit optimaler Bewegungsfreiheit. Ideal für handwerkliche Berufe und Outdoor-Einsätze.", "Robust stretch trousers with optimal freedom of movement."),
		tag:         text("Arbeitshosen", "Work Trousers"),
		badge:       badge("BESTSELLER", "BESTSELLER"),
		specs:       list([]string{"Stretch", "Kniepads", "Wasserdicht"}, []string{"Stretch", "Knee Pads", "Water-Resistant"}),
		features:    list([]string{"4-Wege-Stretch-Gewebe", "Kniepolstertaschen", "Wasserabweisend"}, []string{"4-Way Stretch", "Knee Pad Pockets", "Water-Repellent"}),
		image:       "https://via.placeholder.com/400x400/2e7d32/ffffff?text=Arbeitshose+X-Pro",
	},
	fallbackItem{
		id: "workwear-002", sku: "WW-JACK-001", division: Workwear, category: "jackets",
		name:        text("Softshell-Jacke WorkGuard", "WorkGuard Softshell Jacket"),
		description: text("Atmungsaktive Softshell-Jacke für Außeneinsätze. Wind- und wasserabweisend.", "Breathable softshell jacket for outdoor use."),
		tag:         text("Jacken & Mäntel", "Jackets"),
		badge:       badge("NEU", "NEW"),
		specs:       list([]string{"Softshell", "Windschutz", "Atmungsaktiv"}, []string{"Softshell", "Windproof", "Breathable"}),
		features:    list([]string{"3-Lagen-Softshell", "Winddicht", "Fleece-Innenfutter"}, []string{"3-Layer Softshell", "Windproof", "Fleece Lining"}),
		image:       "https://via.placeholder.com/400x400/388e3c/ffffff?text=Softshell+WorkGuard",
	},
	fallbackItem{
		id: "workwear-003", sku: "WW-WARN-001", division: Workwear, category: "protection",
		name:        text("Warnschutzjacke EN ISO 20471", "Hi-Vis Jacket EN ISO 20471"),
		description: text("Zertifizierte Warnschutzjacke nach EN ISO 20471 Klasse 3.", "Certified hi-vis jacket to EN ISO 20471 Class 3."),
		tag:         text("Warnschutz", "Hi-Vis"),
		specs:       list([]string{"EN ISO 20471", "Klasse 3", "Reflexstreifen"}, []string{"EN ISO 20471", "Class 3", "Reflective"}),
		features:    list([]string{"EN ISO 20471 Klasse 3", "Hochreflektierend", "Reißfest"}, []string{"EN ISO 20471 Class 3", "High-Reflective", "Tear-Resistant"}),
		image:       "https://via.placeholder.com/400x400/f57f17/ffffff?text=Warnschutz",
	},
)
