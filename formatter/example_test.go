package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
)

func ExampleNewDefault() {
	f := formatter.NewDefault("Default")

	fmt.Println(f.Render()["format"])
	fmt.Println(f.Render()["datefmt"])
	// Output:
	// [%(asctime)s][%(name)s][%(levelname)s]: %(message)s
	// %Y-%m-%d %H:%M:%S
}

func ExampleTemplate_AppendRecord() {
	tmpl, err := formatter.New("brief", "%(levelname)-8s %(message)s", "").Compile()
	if err != nil {
		panic(err)
	}

	line := tmpl.AppendRecord(nil, formatter.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "disk full",
		Fields:  map[string]any{"mount": "/var"},
	})
	fmt.Println(string(line))
	// Output:
	// ERROR    disk full mount=/var
}
