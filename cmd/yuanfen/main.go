// Package main is the entry point for the yuanfen CLI.
package main

import (
	"os"

	"github.com/f3rmion/yuanfen/cmd/yuanfen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
