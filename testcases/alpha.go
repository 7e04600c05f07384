package testcases

var alphaCases = []TestCase{
	{
		Name: "half_transparent",
		Gene: gene(16, 16, fig(255, 255, 255, 128, 3, 3, 12, 12)),
	},
	{
		Name: "invisible",
		Gene: gene(16, 16, fig(255, 0, 0, 0, 0, 0, 15, 15)),
	},
	{
		Name: "translucent_stack",
		Gene: gene(20, 20,
			fig(255, 0, 0, 100, 0, 0, 12, 12),
			fig(0, 255, 0, 60, 6, 6, 19, 19),
			fig(0, 0, 255, 200, 3, 9, 16, 13)),
	},
	{
		Name: "transparent_over_opaque",
		Gene: gene(16, 16,
			fig(250, 250, 0, 255, 2, 2, 13, 13),
			fig(0, 0, 0, 0, 5, 5, 8, 8)),
	},
}
