package model

// Starter returns the built-in inventory used when nothing valid is stored.
// A fresh copy is returned on every call.
func Starter() Collection {
	return Collection{
		{
			ID:   "bath",
			Name: "Badezimmer",
			Items: []Item{
				{ID: "shampoo", Name: "Shampoo", Count: 2},
				{ID: "towels", Name: "Handtücher", Count: 6},
				{ID: "soap", Name: "Seife", Count: 3},
			},
		},
		{
			ID:   "kitchen",
			Name: "Küche",
			Items: []Item{
				{ID: "pasta", Name: "Pasta", Count: 4},
				{ID: "tomatoes", Name: "Passierte Tomaten", Count: 3},
				{ID: "sponges", Name: "Schwämme", Count: 5},
			},
		},
		{
			ID:   "living",
			Name: "Wohnzimmer",
			Items: []Item{
				{ID: "candles", Name: "Kerzen", Count: 2},
				{ID: "batteries", Name: "Batterien", Count: 8},
				{ID: "cables", Name: "Ladekabel", Count: 3},
			},
		},
	}
}
