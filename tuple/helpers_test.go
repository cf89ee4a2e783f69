package tuple_test

import (
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"
)

// lets go-cmp look inside tuple slots
var tupleCmp = gocmp.Exporter(func(reflect.Type) bool { return true })
