/*
 * doc.go, part of molgrid.
 */

/*Package chemplot renders diagnostic plots of molgrid data: a thin wrapper
around gonum.org/v1/plot. Right now it has one plot, DensitySlice, a heatmap
of one z-slice of one channel of a forward-rasterized grid - useful for
eyeballing that a kernel or bounding box change did what it was supposed to,
in place of writing out a volumetric file and opening it in a separate
viewer.
*/
package chemplot
