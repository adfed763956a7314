package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"bacchus/winery/domain"
)

func ref(id int64) *int64 { return &id }

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default returns the Bacchus Winery reference and operational dataset.
func Default() Dataset {
	return Dataset{
		Wineries: []domain.Winery{
			{ID: 1, Name: "Bacchus Winery", Phone: "555-867-5309", Email: "bacchuswinery@gmail.com"},
		},
		Suppliers: []domain.Supplier{
			{ID: 1, Name: "Prestige Bottling Co.", Phone: "555-983-6789", Email: "prestigebottlingco@gmail.com"},
			{ID: 2, Name: "Label and Crate", Phone: "555-487-1254", Email: "labelcrate@yahoo.com"},
			{ID: 3, Name: "Titan Barrel Works", Phone: "555-677-4617", Email: "titanbarrel@gmail.com"},
		},
		Distributors: []domain.Distributor{
			{ID: 1, Name: "Lumon Vineworks", Phone: "555-358-6479", Email: "lumonvineworks@gmail.com"},
			{ID: 2, Name: "Macrodata Vintners", Phone: "555-942-1724", Email: "macrodatavintners@gmail.com"},
			{ID: 3, Name: "Severed Cellars", Phone: "555-867-2463", Email: "severedcellars@gmail.com"},
			{ID: 4, Name: "Harmony Wines & Spirits", Phone: "555-252-4119", Email: "harmonywines@yahoo.com"},
		},
		Positions: []domain.JobPosition{
			{ID: 1, Name: "Owner", SalaryMin: money("80000.00"), SalaryMax: money("250000.00")},
			{ID: 2, Name: "Manager", SalaryMin: money("50000.00"), SalaryMax: money("100000.00")},
			{ID: 3, Name: "Assistant", SalaryMin: money("35000.00"), SalaryMax: money("55000.00")},
			{ID: 4, Name: "Production Line Worker", SalaryMin: money("30000.00"), SalaryMax: money("45000.00")},
		},
		Employees: []domain.Employee{
			{ID: 1, FirstName: "Stan", LastName: "Bacchus", PositionID: 1, DepartmentID: ref(1), WineryID: 1},
			{ID: 2, FirstName: "Davis", LastName: "Bacchus", PositionID: 1, DepartmentID: ref(1), WineryID: 1},
			{ID: 3, FirstName: "Janet", LastName: "Collins", PositionID: 2, DepartmentID: ref(2), WineryID: 1},
			{ID: 4, FirstName: "Roz", LastName: "Murphy", PositionID: 2, DepartmentID: ref(3), WineryID: 1},
			{ID: 5, FirstName: "Bob", LastName: "Ulrich", PositionID: 3, DepartmentID: ref(3), WineryID: 1},
			{ID: 6, FirstName: "Henry", LastName: "Doyle", PositionID: 2, DepartmentID: ref(4), WineryID: 1},
			{ID: 7, FirstName: "Seth", LastName: "Milchick", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 8, FirstName: "Mark", LastName: "Scout", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 9, FirstName: "Helly", LastName: "Riggs", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 10, FirstName: "Dylan", LastName: "George", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 11, FirstName: "Irving", LastName: "Bailiff", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 12, FirstName: "Harmony", LastName: "Cobel", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 13, FirstName: "Devon", LastName: "Scout-Hale", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 14, FirstName: "Gemma", LastName: "Scout", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 15, FirstName: "Burt", LastName: "Goodman", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 16, FirstName: "Kier", LastName: "Eagan", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 17, FirstName: "Doug", LastName: "Graner", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 18, FirstName: "Ricken", LastName: "Hale", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 19, FirstName: "Natalie", LastName: "Kalen", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 20, FirstName: "Petey", LastName: "Kilmer", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 21, FirstName: "Jame", LastName: "Eagan", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 22, FirstName: "Gretchen", LastName: "George", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 23, FirstName: "Dario", LastName: "Rossi", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 24, FirstName: "Asal", LastName: "Reghabi", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 25, FirstName: "Mark", LastName: "Wilkins", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 26, FirstName: "Gabby", LastName: "Arteta", PositionID: 4, DepartmentID: ref(4), WineryID: 1},
			{ID: 27, FirstName: "Maria", LastName: "Costanza", PositionID: 2, DepartmentID: ref(5), WineryID: 1},
		},
		Departments: []domain.Department{
			{ID: 1, Name: "Operations"},
			{ID: 2, Name: "Finance"},
			{ID: 3, Name: "Marketing"},
			{ID: 4, Name: "Production"},
			{ID: 5, Name: "Distribution"},
		},
		// Operations is run by the owners and has no manager.
		Managers: []ManagerAssignment{
			{Department: "Finance", EmployeeID: 3},
			{Department: "Marketing", EmployeeID: 4},
			{Department: "Production", EmployeeID: 6},
			{Department: "Distribution", EmployeeID: 27},
		},
		WineTypes: []domain.WineType{
			{ID: 1, Name: "Merlot"},
			{ID: 2, Name: "Cabernet"},
			{ID: 3, Name: "Chablis"},
			{ID: 4, Name: "Chardonnay"},
		},
		GrapeVarieties: []domain.GrapeVariety{
			{ID: 1, Name: "Cabernet Franc"},
			{ID: 2, Name: "Sauvignon Blanc"},
			{ID: 3, Name: "Chardonnay"},
			{ID: 4, Name: "Pinot Noir"},
		},
		Pairings: []domain.WineGrapeVariety{
			{WineTypeID: 1, GrapeVarietyID: 1},
			{WineTypeID: 2, GrapeVarietyID: 2},
			{WineTypeID: 3, GrapeVarietyID: 3},
			{WineTypeID: 4, GrapeVarietyID: 4},
		},
		Wines: []domain.Wine{
			{ID: 1, WineTypeID: 1, InventoryQuantity: 4500, PricePerBottle: money("18.00"), VintageYear: 2025, WineryID: 1},
			{ID: 2, WineTypeID: 2, InventoryQuantity: 4850, PricePerBottle: money("20.00"), VintageYear: 2025, WineryID: 1},
			{ID: 3, WineTypeID: 3, InventoryQuantity: 4640, PricePerBottle: money("25.00"), VintageYear: 2025, WineryID: 1},
			{ID: 4, WineTypeID: 4, InventoryQuantity: 4900, PricePerBottle: money("24.00"), VintageYear: 2025, WineryID: 1},
		},
		SupplyTypes: []domain.SupplyType{
			{ID: 1, Name: "Bottles"},
			{ID: 2, Name: "Corks"},
			{ID: 3, Name: "Labels"},
			{ID: 4, Name: "Boxes"},
			{ID: 5, Name: "Vats"},
			{ID: 6, Name: "Tubing"},
		},
		Supplies: []domain.Supply{
			{ID: 1, OrderDate: mustDate("2024-11-07"), ExpectedDate: mustDate("2024-11-11"), DeliveryDate: mustDate("2024-11-18"), SupplierID: 1, WineryID: 1},
			{ID: 2, OrderDate: mustDate("2024-11-07"), ExpectedDate: mustDate("2024-11-11"), DeliveryDate: mustDate("2024-11-11"), SupplierID: 2, WineryID: 1},
			{ID: 3, OrderDate: mustDate("2024-11-07"), ExpectedDate: mustDate("2024-11-11"), DeliveryDate: mustDate("2024-11-11"), SupplierID: 3, WineryID: 1},
			{ID: 4, OrderDate: mustDate("2024-12-16"), ExpectedDate: mustDate("2024-12-20"), DeliveryDate: mustDate("2024-12-20"), SupplierID: 1, WineryID: 1},
			{ID: 5, OrderDate: mustDate("2024-12-16"), ExpectedDate: mustDate("2024-12-20"), DeliveryDate: mustDate("2024-12-25"), SupplierID: 2, WineryID: 1},
			{ID: 6, OrderDate: mustDate("2024-12-16"), ExpectedDate: mustDate("2024-12-20"), DeliveryDate: mustDate("2024-12-23"), SupplierID: 3, WineryID: 1},
			{ID: 7, OrderDate: mustDate("2025-01-27"), ExpectedDate: mustDate("2025-01-31"), DeliveryDate: mustDate("2025-02-10"), SupplierID: 1, WineryID: 1},
			{ID: 8, OrderDate: mustDate("2025-01-27"), ExpectedDate: mustDate("2025-01-31"), DeliveryDate: mustDate("2025-02-14"), SupplierID: 2, WineryID: 1},
			{ID: 9, OrderDate: mustDate("2025-01-27"), ExpectedDate: mustDate("2025-01-31"), DeliveryDate: mustDate("2025-02-05"), SupplierID: 3, WineryID: 1},
		},
		SupplyDetails: []domain.SupplyDetail{
			{SupplyID: 1, SupplyTypeID: 1, Quantity: 100},
			{SupplyID: 1, SupplyTypeID: 2, Quantity: 200},
			{SupplyID: 2, SupplyTypeID: 3, Quantity: 500},
			{SupplyID: 2, SupplyTypeID: 4, Quantity: 250},
			{SupplyID: 3, SupplyTypeID: 5, Quantity: 50},
			{SupplyID: 3, SupplyTypeID: 6, Quantity: 75},
			{SupplyID: 4, SupplyTypeID: 1, Quantity: 200},
			{SupplyID: 4, SupplyTypeID: 2, Quantity: 100},
			{SupplyID: 5, SupplyTypeID: 3, Quantity: 1000},
			{SupplyID: 5, SupplyTypeID: 4, Quantity: 500},
			{SupplyID: 6, SupplyTypeID: 5, Quantity: 100},
			{SupplyID: 6, SupplyTypeID: 6, Quantity: 150},
			{SupplyID: 7, SupplyTypeID: 1, Quantity: 200},
			{SupplyID: 7, SupplyTypeID: 2, Quantity: 100},
			{SupplyID: 8, SupplyTypeID: 3, Quantity: 1000},
			{SupplyID: 8, SupplyTypeID: 4, Quantity: 500},
			{SupplyID: 9, SupplyTypeID: 5, Quantity: 100},
			{SupplyID: 9, SupplyTypeID: 6, Quantity: 150},
		},
		OrderStatuses: []domain.OrderStatus{
			{ID: 1, Name: "Ordered"},
			{ID: 2, Name: "Delivered"},
			{ID: 3, Name: "Canceled"},
		},
		Sales: []domain.Sale{
			{ID: 1, Quantity: 700, SaleDate: mustDate("2024-10-07"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 2, Quantity: 500, SaleDate: mustDate("2024-10-07"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 3, Quantity: 400, SaleDate: mustDate("2024-10-07"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 4, Quantity: 600, SaleDate: mustDate("2024-10-07"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
			{ID: 5, Quantity: 700, SaleDate: mustDate("2024-10-21"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 6, Quantity: 500, SaleDate: mustDate("2024-10-21"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 7, Quantity: 200, SaleDate: mustDate("2024-10-21"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 8, Quantity: 600, SaleDate: mustDate("2024-10-21"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
			{ID: 9, Quantity: 1000, SaleDate: mustDate("2024-11-11"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 10, Quantity: 1100, SaleDate: mustDate("2024-11-11"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 11, Quantity: 900, SaleDate: mustDate("2024-11-11"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 12, Quantity: 1200, SaleDate: mustDate("2024-11-11"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
			{ID: 13, Quantity: 500, SaleDate: mustDate("2024-12-02"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 14, Quantity: 500, SaleDate: mustDate("2024-12-02"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 15, Quantity: 500, SaleDate: mustDate("2024-12-02"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 16, Quantity: 600, SaleDate: mustDate("2024-12-02"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
			{ID: 17, Quantity: 1000, SaleDate: mustDate("2024-12-16"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 18, Quantity: 1100, SaleDate: mustDate("2024-12-16"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 19, Quantity: 900, SaleDate: mustDate("2024-12-16"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 20, Quantity: 1200, SaleDate: mustDate("2024-12-16"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
			{ID: 21, Quantity: 1000, SaleDate: mustDate("2025-01-20"), WineID: 1, DistributorID: 1, OrderStatusID: 2},
			{ID: 22, Quantity: 1200, SaleDate: mustDate("2025-01-20"), WineID: 2, DistributorID: 2, OrderStatusID: 2},
			{ID: 23, Quantity: 800, SaleDate: mustDate("2025-01-20"), WineID: 3, DistributorID: 3, OrderStatusID: 2},
			{ID: 24, Quantity: 1200, SaleDate: mustDate("2025-01-20"), WineID: 4, DistributorID: 4, OrderStatusID: 2},
		},
		WorkHourOverrides: []MonthOverrides{
			{Year: 2024, Month: time.January, Hours: map[int64]int{1: 192, 5: 192, 9: 200, 13: 192, 20: 200, 26: 192}},
			{Year: 2024, Month: time.February, Hours: map[int64]int{2: 184, 9: 184, 27: 184}},
			{Year: 2024, Month: time.March, Hours: map[int64]int{1: 184, 5: 184, 7: 184, 9: 184, 12: 176, 18: 160, 27: 184}},
			{Year: 2024, Month: time.April, Hours: map[int64]int{1: 184, 5: 184, 9: 184, 13: 184, 27: 184}},
			{Year: 2024, Month: time.May, Hours: map[int64]int{2: 200, 7: 192, 27: 184}},
			{Year: 2024, Month: time.June, Hours: map[int64]int{1: 168, 5: 168, 9: 168, 18: 160, 27: 176}},
			{Year: 2024, Month: time.July, Hours: map[int64]int{27: 192}},
			{Year: 2024, Month: time.August, Hours: map[int64]int{1: 168, 11: 184, 13: 168, 20: 160, 26: 184}},
			{Year: 2024, Month: time.September, Hours: map[int64]int{3: 176, 4: 176, 5: 176, 6: 176, 27: 176}},
			{Year: 2024, Month: time.October, Hours: map[int64]int{1: 192, 5: 192, 9: 192, 13: 192, 15: 192, 26: 192}},
			{Year: 2024, Month: time.November, Hours: map[int64]int{1: 184, 5: 184, 9: 184, 12: 184, 13: 184, 26: 184, 27: 184}},
			{Year: 2024, Month: time.December, Hours: map[int64]int{1: 192, 2: 192, 4: 192, 8: 192, 15: 192, 21: 192, 25: 192, 27: 192}},
			{Year: 2025, Month: time.January, Hours: map[int64]int{1: 168, 2: 168, 3: 168, 4: 168, 5: 168, 6: 160, 27: 160}},
		},
	}
}
