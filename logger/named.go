package logger

import (
	"reflect"
)

// NameOf derives a logger name from a value's type: "<pkgpath>.<TypeName>",
// e.g. "github.com/acme/app/db.Store". Pointers are dereferenced. Unnamed
// types fall back to their type string.
func NameOf(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ForValue returns the logger named after v's type
func (r *Registry) ForValue(v interface{}) *Logger {
	return r.Logger(NameOf(v))
}

// ForValue returns the logger named after v's type from the default registry.
// Embed the result in a struct to give every instance of the type the
// same logger:
//
//	type Store struct{ log *logger.Logger }
//
//	func NewStore() *Store {
//	    s := &Store{}
//	    s.log = logger.ForValue(s)
//	    return s
//	}
func ForValue(v interface{}) *Logger {
	return Default().ForValue(v)
}
