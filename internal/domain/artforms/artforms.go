package artforms

// Names is the fixed vocabulary shared by artist specializations and
// artwork art forms.
var Names = []string{
	"Warli",
	"Pithora",
	"Madhubani",
	"Gond",
	"Kalamkari",
	"Patachitra",
	"Tanjore",
	"Miniature",
	"Other",
}

func Valid(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Info is the static cultural reference record served by /api/artforms.
type Info struct {
	Name            string   `json:"name"`
	Origin          string   `json:"origin"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Significance    string   `json:"significance"`
}

func All() []Info {
	return []Info{
		{
			Name:            "Warli",
			Origin:          "Maharashtra",
			Description:     "Ancient tribal art form using simple geometric shapes to depict daily life, nature, and celebrations.",
			Characteristics: []string{"Geometric patterns", "White pigment on mud walls", "Depicts daily life", "Ritualistic significance"},
			Significance:    "One of the oldest art forms dating back to 2500-3000 BCE, representing the harmony between humans and nature.",
		},
		{
			Name:            "Pithora",
			Origin:          "Gujarat and Madhya Pradesh",
			Description:     "Ritualistic wall painting by Rathwa, Bhilala, and Nayka tribes featuring horses as central motifs.",
			Characteristics: []string{"Horses as main subject", "Bright colors", "Wall paintings", "Spiritual significance"},
			Significance:    "Believed to bring prosperity and fulfill wishes when painted during ceremonies and festivals.",
		},
		{
			Name:            "Madhubani",
			Origin:          "Bihar",
			Description:     "Traditional painting style using natural pigments and depicting Hindu deities, nature, and social events.",
			Characteristics: []string{"Natural pigments", "Religious themes", "Intricate patterns", "Women artists tradition"},
			Significance:    "UNESCO recognized art form that has empowered rural women and preserved ancient cultural stories.",
		},
		{
			Name:            "Gond",
			Origin:          "Madhya Pradesh",
			Description:     "Tribal art form using dots and lines to create intricate patterns depicting local flora, fauna, and mythology.",
			Characteristics: []string{"Dot and line patterns", "Nature themes", "Bright colors", "Storytelling through art"},
			Significance:    "Represents the deep connection between Gond tribes and their natural environment.",
		},
		{
			Name:            "Kalamkari",
			Origin:          "Andhra Pradesh",
			Description:     "Ancient art of hand painting and block printing on textiles using natural dyes.",
			Characteristics: []string{"Natural dyes", "Textile art", "Mythological themes", "Hand-painted details"},
			Significance:    "Combines Persian and Indian artistic traditions, often depicting stories from Hindu epics.",
		},
	}
}
