// This file is part of vgablur.
//
// vgablur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgablur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgablur.  If not, see <https://www.gnu.org/licenses/>.

// Package frameloader is used to load images into the framebuffer and to
// save the framebuffer as an image.
//
// Images can be loaded from the local filesystem or over HTTP. Supported
// formats are PNG, JPEG, GIF, BMP and TIFF. Images that are not the same size
// as the framebuffer are scaled to fit.
//
// Filenames beginning with "pattern:" do not refer to a file but to one of
// the built in test patterns. See the Patterns variable for the list of
// pattern names.
//
// Screenshots are saved with the SaveScreenshot() function. The format of the
// file is decided by the filename extension.
package frameloader
