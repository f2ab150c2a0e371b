// SPDX-License-Identifier: MIT

// Command lvplot renders the chart gallery to image files.
//
//	lvplot list
//	lvplot render --out site/img --format png
//	lvplot render damped-response --zeta 1.2 --wn 3 --format svg
//	lvplot demo --set zeta=0.3 --set wn=2 --out response.svg
//	lvplot demo --chart interactive-parabola --set b=2.5 --out parabola.svg
//	lvplot style > style.toml
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("lvplot: ")
	log.SetFlags(0)

	if err := newRootCmd(log.Default()).Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
