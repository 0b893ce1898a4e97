// Copyright 2018 karma.run AG. All rights reserved.
package config

import (
	"flag"
	"log"
	"os"
)

var (
	// IDOffset is the starting value for a Context's id counter (ast.NewContext).
	IDOffset int
	// StrictSanity, when set, makes cmd/astdump run reader.Read's Sanity pass
	// (after every section is read), failing on the first violation; when
	// unset, astdump passes reader.WithoutSanityCheck and no Sanity pass runs.
	StrictSanity bool
	// TolerateUnknownKinds lists node kind tags that reader.Read accepts by
	// silently dropping instead of failing with UnknownNodeKindError.
	TolerateUnknownKinds string
)

var (
	LogWriter = os.Stderr
	LogFlags  = (log.Ldate | log.Ltime | log.Lshortfile)
)

func init() {
	flag.IntVar(
		&IDOffset,
		`id-offset`,
		getenvInt("SOLC_AST_ID_OFFSET", 0),
		`starting value for the node id counter`,
	)
	flag.BoolVar(
		&StrictSanity,
		`strict-sanity`,
		getenvBool("SOLC_AST_STRICT_SANITY", false),
		`abort on the first structural sanity violation`,
	)
	flag.StringVar(
		&TolerateUnknownKinds,
		`tolerate-unknown-kinds`,
		getenv("SOLC_AST_TOLERATE_UNKNOWN_KINDS", ""),
		`comma-separated list of node kind tags to skip instead of rejecting`,
	)
}

func getenv(key, deflt string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return deflt
}

func getenvBool(key string, deflt bool) bool {
	switch os.Getenv(key) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return deflt
}

func getenvInt(key string, deflt int) int {
	s := os.Getenv(key)
	if s == "" {
		return deflt
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return deflt
		}
		n = n*10 + int(c-'0')
	}
	return n
}
