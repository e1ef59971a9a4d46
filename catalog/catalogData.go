package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"quickbite-pos/models"
)

var categories = []string{"Shawarma", "Pizza", "Grill", "Platter", "Sides", "Drinks"}

var menuItems = []models.CatalogItem{
	{ID: "s1", Name: "Beef Shawarma", UnitPrice: price("6.50"), Category: "Shawarma", Image: "https://picsum.photos/seed/s1/300/200"},
	{ID: "s2", Name: "Chicken Shawarma", UnitPrice: price("5.50"), Category: "Shawarma", Image: "https://picsum.photos/seed/s2/300/200"},
	{ID: "s3", Name: "Mix Shawarma", UnitPrice: price("7.00"), Category: "Shawarma", Image: "https://picsum.photos/seed/s3/300/200"},
	{ID: "p1", Name: "Margherita Pizza", UnitPrice: price("10.00"), Category: "Pizza", Image: "https://picsum.photos/seed/p1/300/200"},
	{ID: "p2", Name: "Pepperoni Pizza", UnitPrice: price("12.50"), Category: "Pizza", Image: "https://picsum.photos/seed/p2/300/200"},
	{ID: "p3", Name: "Vegetable Pizza", UnitPrice: price("11.00"), Category: "Pizza", Image: "https://picsum.photos/seed/p3/300/200"},
	{ID: "g1", Name: "Lamb Kebab", UnitPrice: price("15.00"), Category: "Grill", Image: "https://picsum.photos/seed/g1/300/200"},
	{ID: "g2", Name: "Chicken Shish", UnitPrice: price("13.00"), Category: "Grill", Image: "https://picsum.photos/seed/g2/300/200"},
	{ID: "g3", Name: "Mixed Grill", UnitPrice: price("20.00"), Category: "Grill", Image: "https://picsum.photos/seed/g3/300/200"},
	{ID: "pl1", Name: "Family Platter", UnitPrice: price("35.00"), Category: "Platter", Image: "https://picsum.photos/seed/pl1/300/200"},
	{ID: "pl2", Name: "Party Platter", UnitPrice: price("50.00"), Category: "Platter", Image: "https://picsum.photos/seed/pl2/300/200"},
	{ID: "sd1", Name: "French Fries", UnitPrice: price("3.50"), Category: "Sides", Image: "https://picsum.photos/seed/sd1/300/200"},
	{ID: "sd2", Name: "Hummus", UnitPrice: price("4.00"), Category: "Sides", Image: "https://picsum.photos/seed/sd2/300/200"},
	{ID: "d1", Name: "Coca Cola", UnitPrice: price("1.50"), Category: "Drinks", Image: "https://picsum.photos/seed/d1/300/200"},
	{ID: "d2", Name: "Orange Juice", UnitPrice: price("2.50"), Category: "Drinks", Image: "https://picsum.photos/seed/d2/300/200"},
}

var staffUsers = []string{"user1", "user2", "user3", "admin"}

var tables = makeTables(30)

func makeTables(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("T%d", i))
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
