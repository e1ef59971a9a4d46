// Package catalog is the read-only reference data feed for the outlet:
// menu items, tables, staff list and contact details. The data is owned
// externally; nothing in the engine ever writes to it.
package catalog

import (
	"os"
	"strings"

	"quickbite-pos/models"
)

// Items returns every catalog item in feed order.
func Items() []models.CatalogItem {
	return append([]models.CatalogItem(nil), menuItems...)
}

func ByID(id string) (models.CatalogItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// Filter narrows the feed by category ("All" or empty means no category
// filter) and by case-insensitive substring match on the item name.
func Filter(category, search string) []models.CatalogItem {
	search = strings.ToLower(search)
	out := []models.CatalogItem{}
	for _, item := range menuItems {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func Categories() []string {
	return append([]string(nil), categories...)
}

func Tables() []string {
	return append([]string(nil), tables...)
}

func StaffUsers() []string {
	return append([]string(nil), staffUsers...)
}

// ContactNumber is the outlet number that receives shared tickets.
func ContactNumber() string {
	if n := os.Getenv("CONTACT_NUMBER"); n != "" {
		return n
	}
	return "+9647501235678"
}

// OrdersEmail is the mailbox used by the email share channel.
func OrdersEmail() string {
	if e := os.Getenv("ORDERS_EMAIL"); e != "" {
		return e
	}
	return "orders@quickbite.example"
}
