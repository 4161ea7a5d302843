package gopt_test

import (
	"fmt"

	"github.com/1pkg/gopt"
)

func Example() {
	grammar := gopt.Record(
		gopt.Field("addr", gopt.Default(gopt.Opt(gopt.Str(), gopt.Named(gopt.Long("addr"), gopt.Short('a'))), ":8080")),
		gopt.Field("debug", gopt.Default(gopt.Flag(true, gopt.Named(gopt.Long("debug"))), false)),
	)
	doc, err := gopt.Parse(grammar, []string{"--addr", ":9090", "--debug"}, gopt.DefaultPrefs())
	if err != nil {
		fmt.Println(err)
		return
	}
	var cfg struct {
		Addr  string `gopt:"addr"`
		Debug bool   `gopt:"debug"`
	}
	if err := gopt.Decode(doc, &cfg); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Addr, cfg.Debug)
	// Output: :9090 true
}

func Example_commands() {
	serve := gopt.Map(
		gopt.Default(gopt.Opt(gopt.Int(), gopt.Named(gopt.Long("port"))), int64(8080)),
		func(v any) any {
			return fmt.Sprintf("serving on %d", v)
		},
	)
	version := gopt.Map(
		gopt.Flag(true, gopt.Named(gopt.Long("version"))),
		func(any) any {
			return "gopt 1.0"
		},
	)
	grammar := gopt.Alt(gopt.Cmds(gopt.Command{Name: "serve", Sub: serve}), version)
	out, err := gopt.Parse(grammar, []string{"serve", "--port", "9000"}, gopt.DefaultPrefs())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: serving on 9000
}
