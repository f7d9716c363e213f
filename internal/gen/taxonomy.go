package gen

// RootCategory is one top-level entry of the tool taxonomy.
type RootCategory struct {
	Name          string
	Subcategories []string
}

// Taxonomy is the hardware-store category tree. Order matters: root
// categories are emitted in this order, so the slice must stay stable
// for reproducible runs.
var Taxonomy = []RootCategory{
	{
		Name: "Hand Tools",
		Subcategories: []string{
			"Hammers", "Screwdrivers", "Wrenches", "Pliers", "Chisels",
			"Hand Saws", "Measuring Tapes",
		},
	},
	{
		Name: "Power Tools",
		Subcategories: []string{
			"Drills", "Grinders", "Sanders", "Circular Saws",
			"Impact Drivers", "Rotary Tools",
		},
	},
	{
		Name: "Measuring Tools",
		Subcategories: []string{
			"Levels", "Calipers", "Laser Measures", "Squares", "Multimeters",
		},
	},
	{
		Name: "Safety Gear",
		Subcategories: []string{
			"Safety Glasses", "Work Gloves", "Ear Protection", "Hard Hats",
			"Dust Masks",
		},
	},
	{
		Name: "Fasteners",
		Subcategories: []string{
			"Screws", "Nails", "Bolts", "Anchors", "Washers",
		},
	},
	{
		Name: "Storage",
		Subcategories: []string{
			"Tool Belts", "Tool Boxes", "Storage Cabinets", "Workbenches",
		},
	},
}

// ToolBrands are real hardware manufacturers, used before synthesizing
// fictional brand names.
var ToolBrands = []string{
	"DeWalt", "Makita", "Milwaukee", "Bosch", "Ryobi", "Black & Decker",
	"Craftsman", "Stanley", "Husky", "Kobalt", "Porter Cable", "Festool",
	"Hilti", "Metabo", "Hitachi", "Ridgid", "Worx", "Skil", "Dremel",
	"Klein Tools", "Fluke", "Snap-on", "Mac Tools", "Matco", "Proto",
	"Bahco", "Facom", "Gedore", "Hazet", "Stahlwille", "Wiha",
	"Channellock", "Irwin", "Lenox", "Starrett", "Mitutoyo",
	"Brown & Sharpe", "Tekton", "Performance Tool", "ABN", "ARES",
	"Mastercraft",
}

// Modifier words recombined with existing category names to synthesize
// additional leaf categories.
var (
	sizeModifiers = []string{
		"Compact", "Mini", "Heavy-Duty", "Large", "Precision", "Cordless",
	}
	materialModifiers = []string{
		"Steel", "Titanium", "Carbide", "Aluminum", "Composite", "Chrome",
	}
	applicationModifiers = []string{
		"Automotive", "Woodworking", "Electrical", "Plumbing",
		"Industrial", "Masonry",
	}
	brandModifiers = []string{
		"Pro", "Elite", "Premium", "Ultra", "Contractor",
	}
)

// modifierPools groups the modifier lists for variation synthesis.
var modifierPools = [][]string{
	brandModifiers, sizeModifiers, materialModifiers, applicationModifiers,
}

// productFeatures complete generated product descriptions.
var productFeatures = []string{
	"ergonomic grip", "anti-slip surface", "corrosion resistance",
	"precision engineering", "shock absorption", "quick-release mechanism",
	"magnetic tip", "LED work light", "variable speed control",
	"safety lock", "dust collection", "battery indicator",
	"overload protection", "reversible operation", "depth adjustment",
	"vibration reduction", "weatherproof design",
}

// applications are the usage contexts named in product descriptions.
var applications = []string{
	"construction", "automotive repair", "woodworking", "metalworking",
	"electrical work", "plumbing", "HVAC", "maintenance", "DIY projects",
	"professional use", "industrial applications", "home improvement",
}

// descriptionTemplates: %s slots are tool type, application, material,
// feature, in that order.
var descriptionTemplates = []string{
	"Professional grade %s designed for %s. Features %s construction with %s for enhanced performance and durability.",
	"High-quality %s perfect for %s. Built with %s and includes %s for maximum efficiency.",
	"Durable %s ideal for %s tasks. Made from %s with %s technology.",
	"Heavy-duty %s suitable for %s. Constructed with %s and featuring %s.",
	"Precision %s engineered for %s. Premium %s construction with advanced %s.",
	"Compact %s perfect for %s in tight spaces. Lightweight %s with efficient %s.",
}

// photoSources and photographers attribute generated product images.
var photoSources = []string{
	"Unsplash", "Pexels", "Pixabay", "Freepik", "Shutterstock",
	"Getty Images", "iStock", "Adobe Stock",
}

var photoSourceDomains = map[string]string{
	"Unsplash":     "unsplash.com",
	"Pexels":       "pexels.com",
	"Pixabay":      "pixabay.com",
	"Freepik":      "freepik.com",
	"Shutterstock": "shutterstock.com",
	"Getty Images": "gettyimages.com",
	"iStock":       "istockphoto.com",
	"Adobe Stock":  "stock.adobe.com",
}

var photographers = []string{
	"Alex Thompson", "Sarah Chen", "Michael Rodriguez", "Emma Wilson",
	"David Kim", "Lisa Anderson", "James Taylor", "Maria Garcia",
	"Ryan Johnson", "Nina Patel", "Tom Brown", "Jessica Lee",
	"Mark Davis", "Ana Martinez", "Sophie Turner", "Rachel Green",
}

var imageVariants = []string{"main", "detail", "angle", "use", "packaging"}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// emailDomains are used for business-style user email addresses.
var emailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com",
	"protonmail.com", "buildmail.com", "toolworks.net", "tradecraft.org",
}
