// seehuhn.de/go/mosaic - approximate images with translucent rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

var overlapCases = []TestCase{
	{
		Name: "two_opaque",
		Gene: gene(16, 16,
			fig(255, 0, 0, 255, 1, 1, 10, 10),
			fig(0, 0, 255, 255, 5, 5, 14, 14)),
	},
	{
		Name: "two_opaque_swapped",
		Gene: gene(16, 16,
			fig(0, 0, 255, 255, 5, 5, 14, 14),
			fig(255, 0, 0, 255, 1, 1, 10, 10)),
	},
	{
		Name: "nested",
		Gene: gene(24, 24,
			fig(40, 40, 40, 255, 0, 0, 23, 23),
			fig(200, 10, 10, 255, 4, 4, 19, 19),
			fig(10, 200, 10, 255, 8, 8, 15, 15)),
	},
}
