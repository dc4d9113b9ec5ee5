package gamedata

import (
	"errors"
	"fmt"
)

// HelperItemID is the shop ID of the automated helper.
const HelperItemID = "helper"

// ShopItemDef defines something the merchant sells, loaded from shop.yaml.
type ShopItemDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       int      `yaml:"price"`
	Description []string `yaml:"description"` // Lines shown in the buy panel
}

// ShopFile represents the structure of shop.yaml.
type ShopFile struct {
	Items []ShopItemDef `yaml:"items"`
}

// Shop holds the merchant's stock.
type Shop struct {
	items []ShopItemDef
}

// LoadShop loads shop.yaml.
func LoadShop() (*Shop, error) {
	file, err := Load[ShopFile]("shop.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Items) == 0 {
		return nil, errors.New("no items loaded from shop.yaml")
	}
	for _, it := range file.Items {
		if it.Price < 0 {
			return nil, fmt.Errorf("shop item %s: negative price %d", it.ID, it.Price)
		}
	}
	return &Shop{items: file.Items}, nil
}

// MustLoadShop loads the shop, panicking on error.
func MustLoadShop() *Shop {
	s, err := LoadShop()
	if err != nil {
		panic(err)
	}
	return s
}

// GetByID returns the item with the given ID, or nil if not found.
func (s *Shop) GetByID(id string) *ShopItemDef {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// Items returns every item for sale.
func (s *Shop) Items() []ShopItemDef {
	return s.items
}
