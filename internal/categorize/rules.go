package categorize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bogie-dev/bogie/internal/model"
)

// PhraseRule matches a fixed phrase in the lowercased detail text. Label,
// when set, replaces the transaction description for that service.
type PhraseRule struct {
	Contains string         `yaml:"contains"`
	Category model.Category `yaml:"category"`
	Label    string         `yaml:"label,omitempty"`
}

// Rules is the static rule configuration the engine runs on. It is loaded
// once at startup and never mutated afterwards.
type Rules struct {
	Phrases  []PhraseRule                `yaml:"phrases"`
	Keywords map[model.Category][]string `yaml:"keywords"`
	MCC      map[string]model.Category   `yaml:"mcc"`
}

// LoadRules reads a rules file. A missing file yields the built-in
// defaults; an unreadable one is an error so a typo cannot silently
// disable every rule.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRules(), nil
	}
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules: %w", err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}
	return rules, nil
}

// SaveRules writes a rules file.
func SaveRules(path string, rules Rules) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

// DefaultRules returns the built-in rule tables for the BoG dialect.
func DefaultRules() Rules {
	return Rules{
		Phrases: []PhraseRule{
			{Contains: "traffic penalty", Category: model.CategoryOther, Label: "Traffic Penalty"},
			{Contains: "tbilisienergy", Category: model.CategoryUtilities, Label: "TbilisiEnergy (electricity)"},
			{Contains: "ep georgia supply", Category: model.CategoryUtilities, Label: "EP Georgia Supply (utilities)"},
			{Contains: "tbilisi bus", Category: model.CategoryTransport, Label: "Tbilisi Bus"},
		},
		Keywords: map[model.Category][]string{
			model.CategoryFood: {
				"nikora", "spar", "marketi", "europroduct", "clean house",
				"mcdon", "kfc", "subway", "pizzeria", "kafe", "cafe ",
				"wrap master", "wendys", "baho", "dunkin", "ori nabiji",
				"jambo coffee", "shukura", "anna smaragdina",
				"veriko tabidze", "giorgi phochkhua", "two dzma", "magniti",
			},
			model.CategoryTransport: {
				"yandex.go", "bolt taxi", "lukoil", "portal",
				"tbilisi bus", "scooter",
			},
			model.CategoryPets:      {"zoomart", "animal planet"},
			model.CategoryUtilities: {"magticom", "silknet"},
			model.CategoryEntertainment: {
				"steam", "google", "github", "cursor", "chatgpt", "openai",
				"youtube", "kindle", "gfn.am", "microsoft", "netflix",
				"biletebi", "gulo", "zoommer", "pulman", "pebblehost",
			},
			model.CategoryKid:   {"robolaboratoria", "top toys", "tbilisi parki"},
			model.CategoryHome:  {"jysk", "amboli"},
			model.CategoryOther: {"temu", "ozon", "vape room"},
		},
		MCC: map[string]model.Category{
			// Food and grocery, including delivery apps
			"5411": model.CategoryFood, "5441": model.CategoryFood,
			"5499": model.CategoryFood, "5461": model.CategoryFood,
			"5812": model.CategoryFood, "5814": model.CategoryFood,
			"4215": model.CategoryFood,
			// Transport
			"4121": model.CategoryTransport, "5541": model.CategoryTransport,
			"7523": model.CategoryTransport, "9399": model.CategoryTransport,
			// Utilities
			"4814": model.CategoryUtilities,
			// Entertainment, subscriptions, travel
			"5734": model.CategoryEntertainment, "5816": model.CategoryEntertainment,
			"5818": model.CategoryEntertainment, "7841": model.CategoryEntertainment,
			"7996": model.CategoryEntertainment, "7922": model.CategoryEntertainment,
			"7011": model.CategoryEntertainment, "4722": model.CategoryEntertainment,
			"7298": model.CategoryEntertainment, "5732": model.CategoryEntertainment,
			// Clothes
			"5691": model.CategoryClothes, "5651": model.CategoryClothes,
			"5661": model.CategoryClothes,
			// Home
			"5719": model.CategoryHome, "5211": model.CategoryHome,
			"5013": model.CategoryHome,
			// Pets
			"5995": model.CategoryPets, "5996": model.CategoryPets,
			// Kid
			"5945": model.CategoryKid,
			// Health
			"5912": model.CategoryHealth,
			// Other
			"5311": model.CategoryOther, "5262": model.CategoryOther,
			"5192": model.CategoryOther, "5947": model.CategoryOther,
			"5169": model.CategoryOther, "5993": model.CategoryOther,
			"5992": model.CategoryOther, "6300": model.CategoryOther,
			"6012": model.CategoryOther,
		},
	}
}
