package services

import (
	"bytes"
	"fmt"
	"io"

	"restaurant-menu/models"

	"github.com/rs/zerolog"
)

const SampleMenuName = "Awesome Pizza Restaurant"

// SampleMenu builds the demo restaurant menu. Combo items are the same
// *MenuItem values listed in the plain categories.
func SampleMenu() (*models.MenuCategory, error) {
	vegPizza := models.NewMenuItem("Vegi. Pizza", 20.00)
	chickenPizza := models.NewMenuItem("Chicken Pizza", 25.50)

	garlicBread := models.NewMenuItem("Garlic Bread", 5.00)
	chickenNugget := models.NewMenuItem("Chicken Nugget", 6.50)

	coke := models.NewMenuItem("Coke", 1.50)
	pepsi := models.NewMenuItem("Pepsi", 1.50)

	pizza, err := category("Pizza", vegPizza, chickenPizza)
	if err != nil {
		return nil, err
	}
	sideDishes, err := category("Side Dishes", garlicBread, chickenNugget)
	if err != nil {
		return nil, err
	}
	beverages, err := category("Beverages", coke, pepsi)
	if err != nil {
		return nil, err
	}
	vegCombo, err := combo("Veg. Meal Combo", 25.00, vegPizza, garlicBread, coke)
	if err != nil {
		return nil, err
	}
	chickenCombo, err := combo("Chicken Meal Combo", 31.00, chickenPizza, chickenNugget, pepsi)
	if err != nil {
		return nil, err
	}

	return category(SampleMenuName, pizza, sideDishes, beverages, vegCombo, chickenCombo)
}

func category(name string, children ...models.MenuComponent) (*models.MenuCategory, error) {
	c := models.NewMenuCategory(name)
	for _, child := range children {
		if err := c.AddItem(child); err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
	}
	return c, nil
}

func combo(name string, price float64, items ...*models.MenuItem) (*models.ComboMenuCategory, error) {
	c := models.NewComboMenuCategory(name, price)
	for _, it := range items {
		if err := c.AddItem(it); err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
	}
	return c, nil
}

// RenderMenu returns the printed form of root as a string.
func RenderMenu(root models.MenuComponent) (string, error) {
	var buf bytes.Buffer
	if err := root.Print(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrintMenu writes root to w. Lines already written stay written on failure.
func PrintMenu(w io.Writer, root models.MenuComponent, log zerolog.Logger) error {
	if err := root.Print(w); err != nil {
		log.Error().Err(err).Str("menu", MenuName(root)).Msg("print menu")
		return fmt.Errorf("print menu: %w", err)
	}
	log.Debug().Str("menu", MenuName(root)).Msg("menu printed")
	return nil
}

// MenuName returns the display name of a component.
func MenuName(c models.MenuComponent) string {
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

// Combos lists every combo in the tree, depth-first in print order. A combo
// reachable through several categories is listed once.
func Combos(root models.MenuComponent) []*models.ComboMenuCategory {
	var out []*models.ComboMenuCategory
	seen := make(map[*models.ComboMenuCategory]bool)
	var walk func(models.MenuComponent)
	walk = func(n models.MenuComponent) {
		switch v := n.(type) {
		case *models.ComboMenuCategory:
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		case *models.MenuCategory:
			for _, child := range v.Children() {
				walk(child)
			}
		}
	}
	walk(root)
	return out
}
