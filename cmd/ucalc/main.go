// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ucalc is an interactive read-eval-print loop over the ucalc
// calculator core, wired to the default registry of constants, units and
// functions (see the builtin package).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/firefly431/ucalc"
	"github.com/firefly431/ucalc/builtin"
	"github.com/firefly431/ucalc/config"
)

var (
	prompt = flag.String("prompt", "> ", "interactive prompt")
	debug  = flag.String("debug", "", "comma-separated debug flags to enable")
)

func main() {
	flag.Parse()

	conf := &config.Config{}
	conf.SetPrompt(*prompt)
	for _, name := range strings.Split(*debug, ",") {
		if name != "" {
			conf.SetDebug(name, true)
		}
	}

	fmt.Println("Welcome to ucalc.")
	run(conf, os.Stdin, os.Stdout)
}

func run(conf *config.Config, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, conf.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		result, warnings, err := ucalc.Calculate(conf, builtin.Default, line)
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err.Kind)
			continue
		}
		fmt.Fprintf(out, "=> %s\n", result.String())
	}
}
