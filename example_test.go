package csvline_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/oleg578/csvline"
)

func ExampleJoin() {
	line, ok, err := csvline.Join([]string{"plain", "with,comma", `say "hi"`})
	if err != nil {
		panic(err)
	}
	fmt.Println(ok, line)
	// Output: true plain,"with,comma","say ""hi"""
}

func ExampleSplit() {
	fields, err := csvline.Split(`a,"b,c","d""e"`)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", fields)
	// Output: ["a" "b,c" "d\"e"]
}

func ExampleReader_Read() {
	r := csvline.NewReader(strings.NewReader("id,note\r\n1,\"two\nlines\"\r\n2,last"))

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%q\n", record)
	}
	// Output:
	// ["id" "note"]
	// ["1" "two\nlines"]
	// ["2" "last"]
}
