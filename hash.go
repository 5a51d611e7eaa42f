package persistent

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hash computes a hash value for a sequence of comparable values. Sequences which
// are Equal have the same hash, including sequences of floating point values (or
// structs containing them) which differ only in the sign of zero. The value is stable between calls and program runs,
// callers are free to cache it alongside an instance.
func Hash[T comparable](s Sequence[T]) uint64 {
	return HashWith(s, hashValue[T])
}

// HashWith computes a hash value for a sequence, using h to hash elements.
// h has to be consistent with the notion of element equality the caller uses.
func HashWith[T any](s Sequence[T], h func(T) uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(s.Len()))
	d.Write(buf[:])
	for x := range s.All() {
		binary.LittleEndian.PutUint64(buf[:], h(x))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// hashValue hashes x such that values equal under == hash alike. Floating point
// zeros are normalised, also within named types, arrays and struct fields.
func hashValue[T comparable](x T) uint64 {
	switch v := any(x).(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		return uint64(v)
	}
	rv := reflect.ValueOf(x)
	if !rv.IsValid() || !needsNormalising(rv.Type()) {
		return xxhash.Sum64String(fmt.Sprintf("%#v", x))
	}
	d := xxhash.New()
	writeValue(d, rv)
	return d.Sum64()
}

// needsNormalising is true for types whose == differs from a comparison of
// their printed representation.
func needsNormalising(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return needsNormalising(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if needsNormalising(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func writeValue(d *xxhash.Digest, rv reflect.Value) {
	var buf [8]byte
	word := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		d.Write(buf[:])
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		word(floatBits(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		word(floatBits(real(c)))
		word(floatBits(imag(c)))
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			writeValue(d, rv.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeValue(d, rv.Field(i))
		}
	case reflect.String:
		word(xxhash.Sum64String(rv.String()))
	case reflect.Interface:
		if rv.IsNil() {
			word(0)
		} else {
			writeValue(d, rv.Elem())
		}
	default:
		// unexported fields cannot be converted back to interfaces
		word(xxhash.Sum64String(fmt.Sprintf("%#v", scalar(rv))))
	}
}

func scalar(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return rv.String()
}

func floatBits(f float64) uint64 {
	if f == 0 { // +0 == -0
		f = 0
	}
	return math.Float64bits(f)
}
