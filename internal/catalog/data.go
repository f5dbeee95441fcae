package catalog

import "air-store/internal/model"

// categoryNames maps category identifiers to display names.
var categoryNames = map[string]string{
	"pantalon": "Pantalones",
	"sueter":   "Suéteres",
	"medias":   "Medias",
}

// defaultProducts is the Air clothing line. Prices are in DOP cents.
var defaultProducts = []model.Product{
	{
		ID:          1,
		Name:        "Pantalón Air Classic",
		Category:    "pantalon",
		PriceCents:  8999,
		Image:       "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400&h=600&fit=crop&crop=center",
		Description: "Pantalón clásico de corte perfecto, hecho con materiales premium para máxima comodidad.",
		Sizes:       []string{"S", "M", "L", "XL"},
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Pantalón Air Sport",
		Category:    "pantalon",
		PriceCents:  9499,
		Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=600&fit=crop&crop=center",
		Description: "Pantalón deportivo con tecnología de transpirabilidad avanzada.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "Pantalón Air Elegante",
		Category:    "pantalon",
		PriceCents:  12499,
		Image:       "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400&h=600&fit=crop&crop=center",
		Description: "Pantalón de vestir elegante para ocasiones especiales.",
		Sizes:       []string{"S", "M", "L", "XL"},
		InStock:     false,
	},
	{
		ID:          4,
		Name:        "Suéter Air Comfort",
		Category:    "sueter",
		PriceCents:  7999,
		Image:       "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=600&fit=crop&crop=center",
		Description: "Suéter ultra suave que te hará sentir como flotando en el aire.",
		Sizes:       []string{"S", "M", "L", "XL"},
		InStock:     true,
	},
	{
		ID:          5,
		Name:        "Suéter Air Premium",
		Category:    "sueter",
		PriceCents:  10999,
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=600&fit=crop&crop=center",
		Description: "Suéter premium con lana merino de la más alta calidad.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "Suéter Air Casual",
		Category:    "sueter",
		PriceCents:  6999,
		Image:       "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=400&h=600&fit=crop&crop=center",
		Description: "Suéter casual perfecto para el día a día.",
		Sizes:       []string{"S", "M", "L", "XL"},
		InStock:     true,
	},
	{
		ID:          7,
		Name:        "Medias Air Essential Pack",
		Category:    "medias",
		PriceCents:  2499,
		Image:       "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82?w=400&h=600&fit=crop&crop=center",
		Description: "Pack de 5 medias esenciales con tecnología antibacterial.",
		Sizes:       []string{"S", "M", "L"},
		InStock:     true,
	},
	{
		ID:          8,
		Name:        "Medias Air Sport",
		Category:    "medias",
		PriceCents:  1999,
		Image:       "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=400&h=600&fit=crop&crop=center",
		Description: "Medias deportivas con soporte adicional y ventilación.",
		Sizes:       []string{"S", "M", "L", "XL"},
		InStock:     true,
	},
	{
		ID:          9,
		Name:        "Medias Air Luxury",
		Category:    "medias",
		PriceCents:  3499,
		Image:       "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=600&fit=crop&crop=center",
		Description: "Medias de lujo con fibras naturales premium.",
		Sizes:       []string{"S", "M", "L"},
		InStock:     false,
	},
}
