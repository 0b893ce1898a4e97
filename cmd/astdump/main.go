// Copyright 2018 karma.run AG. All rights reserved.

// astdump reads solc compiler JSON (legacy or modern schema) and prints the
// resulting node tree. It is the minimal front end the core needs to be
// exercised from a shell; it never invokes the compiler itself.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/config"
	"github.com/JorikSchellekens/solc-typed-ast/reader"
)

func main() {
	var astPath string
	flag.StringVar(&astPath, "ast-json", "", "Path to solc output JSON (--combined-json 'ast')")
	flag.Parse()

	if astPath == "" {
		log.Fatalln("Please specify --ast-json flag. See --help.")
	}

	data, err := ioutil.ReadFile(astPath)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := ast.NewContext(config.IDOffset)

	var opts []reader.Option
	if !config.StrictSanity {
		opts = append(opts, reader.WithoutSanityCheck())
	}
	if config.TolerateUnknownKinds != "" {
		opts = append(opts, reader.WithToleratedKinds(strings.Split(config.TolerateUnknownKinds, ",")...))
	}

	units, err := reader.Read(ctx, data, opts...)
	if err != nil {
		log.Fatalln(err)
	}

	for _, su := range units {
		ast.Print(os.Stdout, su)
	}
}
