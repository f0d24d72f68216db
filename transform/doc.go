/*
 * doc.go, part of molgrid.
 */

/*Package transform composes rotation/translation transforms over v3.Matrix
coordinates and gradients. It is a thin seam toward coordinate transform
composition and augmentation: Transform applies a transform once it
exists, and Random builds one from a caller-supplied random source, but
neither owns a full augmentation pipeline or an RNG implementation - the
grid package itself stays agnostic to both.
*/
package transform
