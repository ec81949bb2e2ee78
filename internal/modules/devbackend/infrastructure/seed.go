package infrastructure

import (
	"strconv"

	menu "restoBotClient/internal/modules/menu/domain"
	tables "restoBotClient/internal/modules/tables/domain"
)

// Seed loads the sample restaurant: five categories, ten dishes and fifteen tables
// (1-6 seat four and 7-10 seat six on the ground floor, 11-15 seat eight upstairs).
func (s *Store) Seed() error {
	categories := []menu.CategoryCreate{
		{Name: "Món chính", Description: "Các món ăn chính truyền thống Việt Nam như phở, bún, cơm"},
		{Name: "Món khai vị", Description: "Các món ăn nhẹ khai vị trước bữa chính"},
		{Name: "Đồ uống", Description: "Nước uống, cà phê, trà và các loại sinh tố"},
		{Name: "Tráng miệng", Description: "Các món tráng miệng và chè ngọt"},
		{Name: "Món chay", Description: "Thực đơn dành cho người ăn chay"},
	}
	categoryIDs := make(map[string]int, len(categories))
	for i, in := range categories {
		in.IsActive = true
		in.DisplayOrder = i + 1
		category, err := s.CreateCategory(in)
		if err != nil {
			return err
		}
		categoryIDs[category.Name] = category.ID
	}

	dishes := []struct {
		category string
		dish     menu.DishCreate
	}{
		{"Món chính", menu.DishCreate{Name: "Phở Bò Tái", Description: "Phở bò truyền thống với thịt bò tái, nước dùng được ninh từ xương bò trong 12 tiếng", Price: 85000, ImageURL: "/images/pho_bo_tai.jpg"}},
		{"Món chính", menu.DishCreate{Name: "Bún Bò Huế", Description: "Bún bò Huế cay nồng đậm đà với thịt bò, chả cua, giò heo", Price: 90000, ImageURL: "/images/bun_bo_hue.jpg"}},
		{"Món chính", menu.DishCreate{Name: "Cơm Tấm Sườn Nướng", Description: "Cơm tấm với sườn nướng thơm lừng, chả trứng, bì, kèm nước mắm chua ngọt", Price: 75000, ImageURL: "/images/com_tam_suon.jpg"}},
		{"Món chính", menu.DishCreate{Name: "Bánh Mì Thịt Nướng", Description: "Bánh mì Việt Nam với thịt nướng, pate, rau thơm", Price: 35000, ImageURL: "/images/banh_mi_thit_nuong.jpg"}},
		{"Món khai vị", menu.DishCreate{Name: "Gỏi Cuốn Tôm Thịt", Description: "Gỏi cuốn tươi với tôm, thịt ba chỉ, bún tàu, rau thơm", Price: 45000, ImageURL: "/images/goi_cuon.jpg"}},
		{"Món khai vị", menu.DishCreate{Name: "Nem Rán", Description: "Nem rán giòn rụm với nhân thịt, miến, nấm", Price: 50000, ImageURL: "/images/nem_ran.jpg"}},
		{"Đồ uống", menu.DishCreate{Name: "Cà Phê Sữa Đá", Description: "Cà phê phin truyền thống với sữa đặc", Price: 25000, ImageURL: "/images/cafe_sua_da.jpg"}},
		{"Đồ uống", menu.DishCreate{Name: "Sinh Tố Xoài", Description: "Sinh tố xoài tươi mát với xoài Cát Chu", Price: 35000, ImageURL: "/images/sinh_to_xoai.jpg"}},
		{"Tráng miệng", menu.DishCreate{Name: "Chè Ba Màu", Description: "Chè truyền thống với đậu xanh, đậu đỏ, thạch lá cẩm", Price: 30000, ImageURL: "/images/che_ba_mau.jpg"}},
		{"Món chay", menu.DishCreate{Name: "Phở Chay", Description: "Phở chay với nước dùng từ nấm hương, đậu hũ, rau củ", Price: 70000, ImageURL: "/images/pho_chay.jpg"}},
	}
	for _, entry := range dishes {
		entry.dish.CategoryID = categoryIDs[entry.category]
		entry.dish.IsAvailable = true
		if _, err := s.CreateDish(entry.dish); err != nil {
			return err
		}
	}

	for i := 1; i <= 15; i++ {
		table := tables.TableCreate{TableNumber: strconv.Itoa(i), IsActive: true}
		switch {
		case i <= 6:
			table.Capacity, table.Location = 4, "Tầng 1"
		case i <= 10:
			table.Capacity, table.Location = 6, "Tầng 1"
		default:
			table.Capacity, table.Location = 8, "Tầng 2 - VIP"
		}
		if _, err := s.CreateTable(table); err != nil {
			return err
		}
	}
	return nil
}
