package access_test

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-conf/access"
	"github.com/0xalexb/hjarta-conf/document"
)

func Example() {
	obj := document.NewObject(document.Member{Key: "port", Value: document.Int(8080)})

	port, err := access.GetInt(obj, "port")
	fmt.Println(port, err)

	tls, err := access.GetOptionalBool(obj, "tls", false)
	fmt.Println(tls, err)

	_, err = access.GetString(obj, "port")
	fmt.Println(errors.Is(err, access.ErrTypeMismatch))
	fmt.Println(err)
	// Output:
	// 8080 <nil>
	// false <nil>
	// true
	// Key 'port' in object '{"port":8080}' has invalid type
}

func ExampleCountChildren() {
	obj := document.NewObject()

	fmt.Println(access.CountChildren(obj))

	_, err := access.GetValue(obj, "x")
	fmt.Println(err)
	// Output:
	// 0
	// Key 'x' not found in object '{}'
}
