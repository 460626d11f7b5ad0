package record

import (
	"bytes"
)

const (
	// MaxSize is the capacity of the record buffer. The host rejects
	// records above this size, so the codec never grows past it either.
	MaxSize = 4096

	// Delimiter separates entries. Values must never contain it.
	Delimiter = ';'

	// kvSeparator splits an entry into key and value.
	kvSeparator = '='
)

// Lookup scans entries left to right and returns the value bytes of the
// first entry matching key. The returned slice aliases rec and must not be
// modified. An entry without a '=' is treated as a key with an empty value.
func Lookup(rec []byte, key string) ([]byte, bool) {
	var found []byte
	ok := false
	eachEntry(rec, func(entry []byte) bool {
		k, v := splitEntry(entry)
		if string(k) == key {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// Buffer is a fixed capacity record under construction. The zero value is
// an empty record ready to use.
type Buffer struct {
	data [MaxSize]byte
	size int
}

// Put appends a key=value entry, prefixed with the delimiter unless it is
// the first entry. When the entry does not fit in the remaining capacity
// the buffer is left unchanged.
func (b *Buffer) Put(key string, value []byte) {
	need := len(key) + 1 + len(value)
	if b.size > 0 {
		need++
	}
	if b.size+need > MaxSize {
		return
	}
	if b.size > 0 {
		b.data[b.size] = Delimiter
		b.size++
	}
	b.size += copy(b.data[b.size:], key)
	b.data[b.size] = kvSeparator
	b.size++
	b.size += copy(b.data[b.size:], value)
}

// PutString is Put for string values.
func (b *Buffer) PutString(key, value string) {
	b.Put(key, []byte(value))
}

// CopyExcluding appends every entry of rec whose key does not satisfy skip,
// preserving the original entry bytes and order. A nil skip copies all
// entries. This is the rebuild primitive every record mutation composes:
// copy everything but the fields about to be replaced, then Put the
// replacements.
func (b *Buffer) CopyExcluding(rec []byte, skip func(key []byte) bool) {
	eachEntry(rec, func(entry []byte) bool {
		if skip != nil {
			k, _ := splitEntry(entry)
			if skip(k) {
				return true
			}
		}
		b.putRaw(entry)
		return true
	})
}

// Bytes returns the serialized record. The returned slice aliases the
// buffer's storage.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.size]
}

// Len returns the current size of the record in bytes.
func (b *Buffer) Len() int {
	return b.size
}

// putRaw appends an already serialized entry verbatim. Same capacity
// contract as Put.
func (b *Buffer) putRaw(entry []byte) {
	need := len(entry)
	if b.size > 0 {
		need++
	}
	if b.size+need > MaxSize {
		return
	}
	if b.size > 0 {
		b.data[b.size] = Delimiter
		b.size++
	}
	b.size += copy(b.data[b.size:], entry)
}

// eachEntry calls fn for every entry of rec until fn returns false.
func eachEntry(rec []byte, fn func(entry []byte) bool) {
	for len(rec) > 0 {
		entry := rec
		if i := bytes.IndexByte(rec, Delimiter); i >= 0 {
			entry, rec = rec[:i], rec[i+1:]
		} else {
			rec = nil
		}
		if !fn(entry) {
			return
		}
	}
}

func splitEntry(entry []byte) (key, value []byte) {
	if i := bytes.IndexByte(entry, kvSeparator); i >= 0 {
		return entry[:i], entry[i+1:]
	}
	return entry, nil
}
