package curvefile

// Builtin returns the example curve set compiled into the binary.
// These points are illustrative placeholders, not digitized ASTM
// D6433 figures; computed PCI values are demonstration-grade only.
func Builtin() *File {
	return &File{
		Name: "example",
		Deduct: []DeductEntry{
			// 1. Alligator Cracking
			{Distress: 1, Severity: "L", Points: [][]float64{{0, 0}, {1, 6}, {5, 18}, {10, 26}, {20, 34}, {50, 44}, {100, 52}}},
			{Distress: 1, Severity: "M", Points: [][]float64{{0, 0}, {1, 12}, {5, 32}, {10, 44}, {20, 56}, {50, 72}, {100, 84}}},
			{Distress: 1, Severity: "H", Points: [][]float64{{0, 0}, {1, 18}, {5, 42}, {10, 56}, {20, 70}, {50, 88}, {100, 100}}},

			// 3. Block Cracking
			{Distress: 3, Severity: "L", Points: [][]float64{{0, 0}, {1, 2}, {5, 6}, {10, 10}, {20, 15}, {50, 22}, {100, 30}}},
			{Distress: 3, Severity: "M", Points: [][]float64{{0, 0}, {1, 4}, {5, 12}, {10, 18}, {20, 26}, {50, 38}, {100, 50}}},
			{Distress: 3, Severity: "H", Points: [][]float64{{0, 0}, {1, 8}, {5, 20}, {10, 30}, {20, 42}, {50, 60}, {100, 78}}},

			// 10. Longitudinal & Transverse Cracking
			{Distress: 10, Severity: "L", Points: [][]float64{{0, 0}, {1, 2}, {5, 6}, {10, 10}, {20, 14}, {50, 20}, {100, 28}}},
			{Distress: 10, Severity: "M", Points: [][]float64{{0, 0}, {1, 5}, {5, 14}, {10, 22}, {20, 32}, {50, 46}, {100, 62}}},
			{Distress: 10, Severity: "H", Points: [][]float64{{0, 0}, {1, 10}, {5, 26}, {10, 38}, {20, 52}, {50, 72}, {100, 90}}},

			// 13. Potholes
			{Distress: 13, Severity: "L", Points: [][]float64{{0, 0}, {0.1, 8}, {0.5, 18}, {1, 24}, {2, 32}, {5, 42}, {10, 52}}},
			{Distress: 13, Severity: "M", Points: [][]float64{{0, 0}, {0.1, 15}, {0.5, 32}, {1, 42}, {2, 54}, {5, 70}, {10, 84}}},
			{Distress: 13, Severity: "H", Points: [][]float64{{0, 0}, {0.1, 22}, {0.5, 48}, {1, 62}, {2, 78}, {5, 94}, {10, 100}}},

			// 15. Rutting
			{Distress: 15, Severity: "L", Points: [][]float64{{0, 0}, {1, 4}, {5, 10}, {10, 14}, {20, 20}, {50, 28}, {100, 36}}},
			{Distress: 15, Severity: "M", Points: [][]float64{{0, 0}, {1, 8}, {5, 20}, {10, 30}, {20, 42}, {50, 58}, {100, 74}}},
			{Distress: 15, Severity: "H", Points: [][]float64{{0, 0}, {1, 14}, {5, 34}, {10, 48}, {20, 64}, {50, 84}, {100, 98}}},

			// 19. Weathering/Raveling
			{Distress: 19, Severity: "L", Points: [][]float64{{0, 0}, {1, 1}, {5, 3}, {10, 5}, {20, 8}, {50, 14}, {100, 20}}},
			{Distress: 19, Severity: "M", Points: [][]float64{{0, 0}, {1, 4}, {5, 10}, {10, 16}, {20, 24}, {50, 36}, {100, 50}}},
			{Distress: 19, Severity: "H", Points: [][]float64{{0, 0}, {1, 8}, {5, 20}, {10, 32}, {20, 46}, {50, 66}, {100, 86}}},
		},
		CDV: []CDVEntry{
			{Q: 1, Points: [][]float64{{0, 0}, {10, 10}, {20, 20}, {50, 50}, {100, 100}, {150, 100}, {200, 100}}},
			{Q: 2, Points: [][]float64{{0, 0}, {10, 8}, {20, 15}, {50, 40}, {100, 72}, {150, 88}, {200, 96}}},
			{Q: 3, Points: [][]float64{{0, 0}, {10, 6}, {20, 12}, {50, 32}, {100, 58}, {150, 76}, {200, 88}}},
			{Q: 4, Points: [][]float64{{0, 0}, {10, 5}, {20, 10}, {50, 26}, {100, 48}, {150, 66}, {200, 80}}},
			{Q: 5, Points: [][]float64{{0, 0}, {10, 4}, {20, 8}, {50, 22}, {100, 42}, {150, 58}, {200, 72}}},
			{Q: 6, Points: [][]float64{{0, 0}, {10, 4}, {20, 7}, {50, 19}, {100, 37}, {150, 52}, {200, 66}}},
			{Q: 7, Points: [][]float64{{0, 0}, {10, 3}, {20, 6}, {50, 17}, {100, 33}, {150, 47}, {200, 60}}},
		},
	}
}
