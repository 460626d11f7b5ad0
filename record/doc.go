/*
Package record implements the flat key=value codec the escrow state is
persisted in, together with the scalar parsers everything above it uses.

A record is a single byte buffer of ASCII key=value entries joined by a ';'
delimiter, no trailing delimiter, no escaping. Keys are unique in intent but
duplicates are tolerated: the first occurrence wins for all reads. Values
may contain any byte except the delimiter. The codec knows nothing about
notary semantics; unknown keys travel through every rebuild verbatim, which
is what makes "preserve unrelated fields" a structural property instead of
something each mutation must remember.

All buffers are fixed capacity. Appending an entry that does not fit is a
silent no-op, not an error; callers are responsible for leaving enough
headroom in the record they create.
*/
package record
