package domain

// MenuItem is one purchasable pizza with its per-size prices.
type MenuItem struct {
	Name  string           `json:"name"`
	Sizes map[Size]float64 `json:"sizes"`
}

// Menu returns the static catalog. It is hardcoded and identical on every
// call; there are no mutation operations over it.
func Menu() []MenuItem {
	return []MenuItem{
		{Name: "Margherita", Sizes: map[Size]float64{SizeSmall: 7.50, SizeMedium: 9.50, SizeLarge: 11.50}},
		{Name: "Pepperoni", Sizes: map[Size]float64{SizeSmall: 8.00, SizeMedium: 10.00, SizeLarge: 12.00}},
		{Name: "Veggie", Sizes: map[Size]float64{SizeSmall: 7.75, SizeMedium: 9.75, SizeLarge: 11.75}},
		{Name: "BBQ Chicken", Sizes: map[Size]float64{SizeSmall: 8.50, SizeMedium: 10.50, SizeLarge: 12.50}},
		{Name: "Hawaiian", Sizes: map[Size]float64{SizeSmall: 8.25, SizeMedium: 10.25, SizeLarge: 12.25}},
	}
}
