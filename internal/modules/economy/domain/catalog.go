package domain

import "fmt"

// Good is a purchasable reward. Price is in focus-minutes: one currency unit
// equals one minute of prior focus.
type Good struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
	Icon  string `yaml:"icon"`
}

// DefaultCatalog is the fixed, ordered built-in shop.
var DefaultCatalog = []Good{
	{Name: "Soda", Price: 60, Icon: "🥤"},
	{Name: "Game Hour", Price: 120, Icon: "🎮"},
	{Name: "Mystery Box", Price: 180, Icon: "🎁"},
	{Name: "Sleep-in Voucher", Price: 200, Icon: "🛌"},
	{Name: "Birthday Cake", Price: 0, Icon: "🎂"},
	{Name: "Travel Fund", Price: 5000, Icon: "✈️"},
}

// Find looks a good up by name in an ordered catalog.
func Find(catalog []Good, name string) (Good, bool) {
	for _, good := range catalog {
		if good.Name == name {
			return good, true
		}
	}
	return Good{}, false
}

// Validate rejects catalogs with unnamed or negatively priced goods.
func Validate(catalog []Good) error {
	if len(catalog) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := map[string]bool{}
	for _, good := range catalog {
		if good.Name == "" {
			return fmt.Errorf("good with empty name")
		}
		if good.Price < 0 {
			return fmt.Errorf("good %q has negative price %d", good.Name, good.Price)
		}
		if seen[good.Name] {
			return fmt.Errorf("duplicate good %q", good.Name)
		}
		seen[good.Name] = true
	}
	return nil
}
