/*
 * doc.go, part of molgrid.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package molgrid is the root of a small library that rasterizes atoms into
dense 4D density grids and propagates gradients back onto atom positions and
type weights - the differentiable front-end of a 3D convolutional network
operating on molecular structure.

	**molgrid capabilities**

    Rasterizes a set of atom coordinates, van der Waals radii and per-atom
	typing (either a single type index or a dense type-weight vector) into a
	T x dim x dim x dim density grid (package grid).

    Propagates upstream grid gradients back onto atom coordinates and, in
	vector-typing mode, onto type weights (package grid).

    Redistributes a grid-shaped relevance signal onto the atoms that produced
	it, proportional to each atom's fractional contribution at each voxel
	(package grid).

    Runs the same three operations on a single goroutine (the "host" path) or
	spread across a worker pool (the "device" path), matching within
	tolerance as floating-point summation order differs (package grid).

    Composes rotation/translation transforms and random augmentation of atom
	coordinates, as a thin seam toward external example-assembly code
	(package transform).

    Reads and writes a simple binary grid dump format used by this module's
	own tests, optionally gzip-compressed (package gridio).

molgrid implements its own small coordinate matrix type, v3.Matrix, built on
gonum.org/v1/gonum/mat. Each row of a v3.Matrix represents one point in space.
*/
package molgrid
