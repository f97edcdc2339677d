package models

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrNotFound         = errors.New("menu component not found")
	ErrInvalidComponent = errors.New("invalid menu component")
	ErrCycle            = errors.New("menu component would contain itself")
)

// structureMu serializes category insertions so the cycle check and the
// append observe the same tree.
var structureMu sync.Mutex

// MenuComponent is a node of the menu tree: a single item or a group of them.
type MenuComponent interface {
	Print(w io.Writer) error
}

// MenuItem is a priced leaf of the menu tree.
type MenuItem struct {
	name  string
	price float64
}

func NewMenuItem(name string, price float64) *MenuItem {
	return &MenuItem{name: name, price: price}
}

func (m *MenuItem) Name() string { return m.name }
func (m *MenuItem) Price() float64 { return m.price }
func (m *MenuItem) String() string { return m.name }

// Print writes "<name>.................$<price>" with the price fixed to 2 decimals.
func (m *MenuItem) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s.................$%.2f\n", m.name, m.price)
	return err
}

// MenuCategory groups components, including other categories and combos.
type MenuCategory struct {
	name string

	mu       sync.RWMutex
	children []MenuComponent
}

func NewMenuCategory(name string) *MenuCategory {
	return &MenuCategory{name: name}
}

func (c *MenuCategory) Name() string { return c.name }
func (c *MenuCategory) String() string { return c.name }

// Children returns a copy of the category's components in insertion order.
func (c *MenuCategory) Children() []MenuComponent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]MenuComponent, len(c.children))
	copy(out, c.children)
	return out
}

// AddItem appends component. Duplicates are allowed; a component that already
// contains c (directly or through nested categories) is rejected.
func (c *MenuCategory) AddItem(component MenuComponent) error {
	if isNil(component) {
		return fmt.Errorf("add to %q: %w", c.name, ErrInvalidComponent)
	}
	structureMu.Lock()
	defer structureMu.Unlock()
	if reaches(component, c) {
		return fmt.Errorf("add %s to %q: %w", componentName(component), c.name, ErrCycle)
	}
	c.mu.Lock()
	c.children = append(c.children, component)
	c.mu.Unlock()
	return nil
}

// RemoveItem removes the first occurrence of component.
func (c *MenuCategory) RemoveItem(component MenuComponent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, child := range c.children {
		if child == component {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s from %q: %w", componentName(component), c.name, ErrNotFound)
}

func (c *MenuCategory) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", c.name); err != nil {
		return err
	}
	for _, child := range c.Children() {
		if err := child.Print(w); err != nil {
			return err
		}
	}
	return nil
}

// ComboMenuCategory is a bundle of items sold at a single price.
type ComboMenuCategory struct {
	name  string
	price float64

	mu    sync.RWMutex
	items []*MenuItem
}

func NewComboMenuCategory(name string, price float64) *ComboMenuCategory {
	return &ComboMenuCategory{name: name, price: price}
}

func (c *ComboMenuCategory) Name() string { return c.name }
func (c *ComboMenuCategory) Price() float64 { return c.price }
func (c *ComboMenuCategory) String() string { return c.name }

// Items returns a copy of the combo's items in insertion order.
func (c *ComboMenuCategory) Items() []*MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ComboMenuCategory) AddItem(item *MenuItem) error {
	if item == nil {
		return fmt.Errorf("add to combo %q: %w", c.name, ErrInvalidComponent)
	}
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return nil
}

func (c *ComboMenuCategory) RemoveItem(item *MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s from combo %q: %w", componentName(item), c.name, ErrNotFound)
}

// Print writes the combo line followed by the bare names of its items.
// Item prices are not listed.
func (c *ComboMenuCategory) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s............$%s\n", c.name, FormatComboPrice(c.price)); err != nil {
		return err
	}
	for _, item := range c.Items() {
		if _, err := fmt.Fprintln(w, item.name); err != nil {
			return err
		}
	}
	return nil
}

// FormatComboPrice renders the shortest decimal that round-trips to price,
// always keeping a fractional part: 25 -> "25.0", 31.5 -> "31.5".
// Decimal exponents below -4 or from 16 up switch to exponent form
// (1e16 -> "1e+16", 0.00001 -> "1e-05").
func FormatComboPrice(price float64) string {
	switch {
	case math.IsNaN(price):
		return "nan"
	case math.IsInf(price, 1):
		return "inf"
	case math.IsInf(price, -1):
		return "-inf"
	}
	if price != 0 {
		e := strconv.FormatFloat(price, 'e', -1, 64)
		exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return e
		}
	}
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// reaches reports whether target is from or is nested anywhere below it.
func reaches(from MenuComponent, target *MenuCategory) bool {
	seen := make(map[*MenuCategory]bool)
	var walk func(MenuComponent) bool
	walk = func(n MenuComponent) bool {
		cat, ok := n.(*MenuCategory)
		if !ok {
			return false
		}
		if cat == target {
			return true
		}
		if seen[cat] {
			return false
		}
		seen[cat] = true
		for _, child := range cat.Children() {
			if walk(child) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

func isNil(c MenuComponent) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *MenuItem:
		return v == nil
	case *MenuCategory:
		return v == nil
	case *ComboMenuCategory:
		return v == nil
	}
	return false
}

func componentName(c MenuComponent) string {
	if s, ok := c.(fmt.Stringer); ok && !isNil(c) {
		return strconv.Quote(s.String())
	}
	return "<nil>"
}
