package utils

import (
	"bytes"
	"fmt"
	"log"
	"reflect"
)

// CheckConfigError checks configs for errors, crashes app if there's an error
func CheckConfigError(cfg fmt.Stringer, e error, filename string) {
	if e != nil {
		log.Println(e)
		log.Println()
		log.Fatalf("error: could not parse the config file '%s'. Check that the correct type of file was passed in.\n", filename)
	}
}

// Hide is a transform that redacts a config value when printing
func Hide(i interface{}) interface{} {
	return "<redacted>"
}

func passthrough(i interface{}) interface{} {
	return i
}

// StructString serializes a config struct field by field using the toml tag as
// the display name, applying the passed in transform for fields whose values
// should not be printed as-is (secrets).
func StructString(s interface{}, transforms map[string]func(interface{}) interface{}) string {
	var buf bytes.Buffer
	numFields := reflect.TypeOf(s).NumField()
	for i := 0; i < numFields; i++ {
		field := reflect.TypeOf(s).Field(i)
		fieldDisplayName := field.Tag.Get("toml")
		if fieldDisplayName == "" {
			fieldDisplayName = field.Name
		}

		transformFn := passthrough
		if fn, ok := transforms[fieldDisplayName]; ok {
			transformFn = fn
		}

		if reflect.ValueOf(s).Field(i).CanInterface() {
			value := reflect.ValueOf(s).Field(i).Interface()
			buf.WriteString(fmt.Sprintf("%s: %v\n", fieldDisplayName, transformFn(value)))
		}
	}
	return buf.String()
}
