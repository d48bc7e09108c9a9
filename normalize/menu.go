package normalize

import (
	"gateway/entity"
)

func MenuItem(raw Raw) entity.MenuItem {
	return entity.MenuItem{
		ID:          Str(raw, "id", "_id", "uuid", "key"),
		Name:        Str(raw, "name", "title", "productName"),
		Description: Str(raw, "description", "desc"),
		Price:       Num(raw, "price", "cost", "amount"),
		IsVeg:       Bool(raw, "isVeg", "is_veg", "veg", "vegetarian"),
	}
}

func MenuCategory(raw Raw) entity.MenuCategory {
	itemRaws := Slice(raw, "items", "menuItems", "products")
	items := make([]entity.MenuItem, 0, len(itemRaws))
	for _, e := range itemRaws {
		if m, ok := e.(map[string]any); ok {
			items = append(items, MenuItem(m))
		}
	}
	return entity.MenuCategory{
		ID:    Str(raw, "id", "_id", "uuid", "key"),
		Name:  Str(raw, "name", "title", "categoryName"),
		Items: items,
	}
}

func MenuCategories(raws []Raw) []entity.MenuCategory {
	out := make([]entity.MenuCategory, 0, len(raws))
	for _, r := range raws {
		out = append(out, MenuCategory(r))
	}
	return out
}
