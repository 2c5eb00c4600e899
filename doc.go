/*
 * doc.go, part of curview.
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

//Package curv provides atom and molecule structures, XYZ reading and
//writing, distance-based bond perception and the computation of local
//geometric descriptors of discrete curvature at atomic sites:
//pyramidalization angle, angular defect, spherical curvature, improper
//angle, pyramidalization distance and the POAV1 hybridization numbers.
//
//The descriptors follow the definitions of Haddon's pi-orbital axis
//vector analysis and of Sabalot-Cuzzubbo et al., J. Chem. Phys. 152,
//244310 (2020).
package curv
