/*
 * doc.go, part of molgrid.
 */

/*Package gridio reads and writes a simple binary grid format used by this
module's own tests: a flat sequence of 4-byte little-endian floats,
channel-major then x-major then y-major then z-major (the same layout
grid.DensityGrid keeps in memory), optionally gzip-compressed. This is a
test/debug fixture format, not a stable wire format - there is no version
header and no shape metadata, so the caller must already know the channel
count and dimension before calling Load.
*/
package gridio
