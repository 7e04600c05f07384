package testcases

var fillCases = []TestCase{
	{
		Name: "single_opaque",
		Gene: gene(16, 16, fig(255, 128, 0, 255, 2, 3, 9, 12)),
	},
	{
		Name: "single_pixel",
		Gene: gene(16, 16, fig(0, 255, 0, 255, 7, 7, 7, 7)),
	},
	{
		Name: "reversed_corners",
		Gene: gene(16, 16, fig(10, 20, 200, 255, 12, 11, 4, 1)),
	},
	{
		Name: "full_canvas",
		Gene: gene(8, 8, fig(255, 255, 255, 255, 0, 0, 7, 7)),
	},
	{
		Name: "thin_lines",
		Gene: gene(16, 16,
			fig(255, 0, 0, 255, 0, 5, 15, 5),
			fig(0, 0, 255, 255, 9, 0, 9, 15)),
	},
}
