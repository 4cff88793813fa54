package configs

import "github.com/jibrilosman/self-order-kiosk/entity"

// SeedCategories is the fixed kiosk menu section list.
func SeedCategories() []entity.Category {
	return []entity.Category{
		{Name: "Burgers", Image: "/images/burgers.jpg"},
		{Name: "Sides", Image: "/images/sides.jpg"},
		{Name: "Drinks", Image: "/images/drinks.jpg"},
		{Name: "Desserts", Image: "/images/desserts.jpg"},
	}
}

// SeedProducts returns fresh copies on every call so inserts never share IDs.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{Name: "Classic Burger", Image: "/images/classic-burger.jpg", Price: 10, Category: "Burgers", Description: "Beef patty, cheddar, pickles and house sauce"},
		{Name: "Chicken Burger", Image: "/images/chicken-burger.jpg", Price: 9.5, Category: "Burgers", Description: "Crispy chicken with lettuce and mayo"},
		{Name: "Veggie Burger", Image: "/images/veggie-burger.jpg", Price: 9, Category: "Burgers", Description: "Grilled bean patty with avocado"},
		{Name: "Fries", Image: "/images/fries.jpg", Price: 5, Category: "Sides", Description: "Golden fries with sea salt"},
		{Name: "Onion Rings", Image: "/images/onion-rings.jpg", Price: 5.5, Category: "Sides", Description: "Beer-battered onion rings"},
		{Name: "Cola", Image: "/images/cola.jpg", Price: 2.5, Category: "Drinks", Description: "Chilled 500ml"},
		{Name: "Orange Juice", Image: "/images/orange-juice.jpg", Price: 3, Category: "Drinks", Description: "Freshly squeezed"},
		{Name: "Chocolate Sundae", Image: "/images/sundae.jpg", Price: 4, Category: "Desserts", Description: "Vanilla soft serve with hot fudge"},
		{Name: "Apple Pie", Image: "/images/apple-pie.jpg", Price: 3.5, Category: "Desserts", Description: "Warm pie with cinnamon"},
	}
}
