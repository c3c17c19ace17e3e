package server

import "github.com/balcao-cafe/balcao/internal/model"

// seedMenu is the fixture catalog served by catalogd, standing in for
// the json-server dataset the storefront expects at /coffee.
func seedMenu() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Title:       "Expresso",
			Price:       6.00,
			Image:       "/img/expresso.jpg",
			Description: "Dose curta e intensa",
			Ingredients: []string{"café"},
		},
		{
			ID:          "2",
			Title:       "Coado",
			Price:       5.50,
			Image:       "/img/coado.jpg",
			Description: "Café filtrado no coador de pano",
			Ingredients: []string{"café", "água"},
		},
		{
			ID:          "3",
			Title:       "Latte",
			Price:       12.50,
			Image:       "/img/latte.jpg",
			Description: "Café com leite vaporizado",
			Ingredients: []string{"espresso", "leite"},
		},
		{
			ID:          "4",
			Title:       "Cappuccino",
			Price:       11.00,
			Image:       "/img/cappuccino.jpg",
			Description: "Espresso, leite e espuma em partes iguais",
			Ingredients: []string{"espresso", "leite", "espuma de leite", "canela"},
		},
		{
			ID:          "5",
			Title:       "Mocha",
			Price:       14.00,
			Image:       "/img/mocha.jpg",
			Description: "Espresso com chocolate e leite",
			Ingredients: []string{"espresso", "chocolate", "leite", "chantilly"},
		},
		{
			ID:          "6",
			Title:       "Macchiato",
			Price:       8.50,
			Image:       "/img/macchiato.jpg",
			Description: "Espresso pingado com espuma de leite",
			Ingredients: []string{"espresso", "espuma de leite"},
		},
		{
			ID:          "7",
			Title:       "Affogato",
			Price:       15.00,
			Image:       "/img/affogato.jpg",
			Description: "Espresso sobre sorvete de creme",
			Ingredients: []string{"espresso", "sorvete de creme"},
		},
		{
			ID:          "8",
			Title:       "Café Gelado",
			Price:       10.00,
			Image:       "/img/gelado.jpg",
			Description: "Café coado servido com gelo e calda",
			Ingredients: []string{"café", "gelo", "calda de açúcar"},
		},
	}
}
