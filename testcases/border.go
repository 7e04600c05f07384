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

var borderCases = []TestCase{
	{
		Name: "empty",
		Gene: gene(8, 8),
	},
	{
		Name: "corners",
		Gene: gene(10, 10,
			fig(255, 0, 0, 255, 0, 0, 0, 0),
			fig(0, 255, 0, 255, 9, 0, 9, 0),
			fig(0, 0, 255, 255, 0, 9, 0, 9),
			fig(255, 255, 0, 255, 9, 9, 9, 9)),
	},
	{
		Name: "right_edge",
		Gene: gene(12, 12, fig(90, 180, 30, 220, 6, 2, 11, 11)),
	},
	{
		Name: "non_square",
		Gene: gene(20, 7, fig(30, 60, 90, 255, 3, 1, 18, 6)),
	},
}
