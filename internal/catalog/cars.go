package catalog

// Cars returns all configured cars for the 2024 WEC season content.
func Cars() []Car {
	return []Car{
		// Hypercar
		{"porsche_963", "Porsche 963", "Hypercar"},
		{"ferrari_499p", "Ferrari 499P", "Hypercar"},
		{"toyota_gr010", "Toyota GR010 Hybrid", "Hypercar"},
		{"cadillac_vseries_r", "Cadillac V-Series.R", "Hypercar"},
		{"peugeot_9x8", "Peugeot 9X8", "Hypercar"},
		{"bmw_m_hybrid_v8", "BMW M Hybrid V8", "Hypercar"},
		{"alpine_a424", "Alpine A424", "Hypercar"},

		// LMP2
		{"oreca_07", "Oreca 07 Gibson", "LMP2"},

		// GT3
		{"porsche_911_gt3_r", "Porsche 911 GT3 R (992)", "GT3"},
		{"ferrari_296_gt3", "Ferrari 296 GT3", "GT3"},
		{"mclaren_720s_gt3_evo", "McLaren 720S GT3 Evo", "GT3"},
		{"bmw_m4_gt3", "BMW M4 GT3", "GT3"},
		{"corvette_z06_gt3r", "Corvette Z06 GT3.R", "GT3"},
		{"lamborghini_huracan_gt3_evo2", "Lamborghini Huracan GT3 Evo2", "GT3"},
		{"aston_martin_vantage_gt3", "Aston Martin Vantage AMR GT3", "GT3"},
		{"lexus_rc_f_gt3", "Lexus RC F GT3", "GT3"},
		{"ford_mustang_gt3", "Ford Mustang GT3", "GT3"},

		// GTE
		{"ferrari_488_gte_evo", "Ferrari 488 GTE Evo", "GTE"},
		{"porsche_911_rsr_19", "Porsche 911 RSR-19", "GTE"},
		{"corvette_c8r", "Corvette C8.R", "GTE"},
		{"aston_martin_vantage_amr", "Aston Martin Vantage AMR", "GTE"},
	}
}
