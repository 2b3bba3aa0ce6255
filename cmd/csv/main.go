// Command csv parses comma-separated values from stdin and emits one JSON
// array of rows on stdout.
package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/combine"
)

var cli struct {
	Debug bool `help:"Dump the parsed rows with repr instead of JSON."`
}

// table parses comma-separated cells in newline-separated rows. Cells may
// be empty; quoting is not supported.
func table() combine.Parser[[][]string] {
	cell := combine.Map(combine.Many(combine.NoneOf(",\n")), func(rs []rune) string {
		return string(rs)
	})
	row := combine.SepBy1(cell, combine.Rune(','))
	return combine.SepBy1(row, combine.Rune('\n'))
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Parse CSV from stdin and emit JSON rows."))
	data, err := io.ReadAll(os.Stdin)
	kctx.FatalIfErrorf(err)
	rows, err := combine.Run(table(), strings.TrimSuffix(string(data), "\n"))
	kctx.FatalIfErrorf(err)
	if cli.Debug {
		repr.Println(rows)
		return
	}
	err = json.NewEncoder(os.Stdout).Encode(rows)
	kctx.FatalIfErrorf(err)
}
