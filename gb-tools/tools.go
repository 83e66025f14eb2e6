// gb-tools is a batch command-line tool around the translation engine:
// list the registered rules and tables, or run a fixture through a full
// round trip for diagnostics.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/thatisuday/commando"

	"github.com/glyphbridge/glyphbridge/codepage"
	"github.com/glyphbridge/glyphbridge/internal/fixture"
	"github.com/glyphbridge/glyphbridge/internal/memfont"
	"github.com/glyphbridge/glyphbridge/params"
)

func main() {
	commando.
		SetExecutableName("gb-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting and testing custom-parameter translation.")

	commando.
		Register("handlers").
		SetDescription("List all registered translation rules in registration order.").
		SetShortDescription("list rules").
		SetAction(runHandlersCommand)

	commando.
		Register("defaults").
		SetDescription("Print the known default-value divergences between Glyphs and UFO.").
		SetShortDescription("list defaults").
		SetAction(runDefaultsCommand)

	commando.
		Register("codepages").
		SetDescription("Print the codepage number to OS/2 ulCodePageRange bit table.").
		SetShortDescription("codepage table").
		SetAction(runCodepagesCommand)

	commando.
		Register("roundtrip").
		SetDescription("Translate a fixture to UFO, back to a fresh Glyphs object, and print both.").
		SetShortDescription("round-trip a fixture").
		AddArgument("fixture", "fixture YAML file path", "").
		SetAction(runRoundtripCommand)

	commando.Parse(nil)
}

func runHandlersCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	handlers := params.KnownHandlers()
	fmt.Printf("Handlers (%d):\n", len(handlers))
	for i, h := range handlers {
		fmt.Printf("%3d  %s\n", i, h.Name())
	}
}

func runDefaultsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	// fsType et al.; the engine keeps the authoritative table private,
	// so show its observable effect on an empty translation instead.
	ufo := memfont.NewUFO()
	if err := params.ToUFOCustomParams(memfont.NewFont(), ufo); err != nil {
		fatalf("translation failed: %v", err)
	}
	names := ufo.InfoFields()
	sort.Strings(names)
	for _, name := range names {
		value, _ := ufo.InfoField(name).Unwrap()
		fmt.Printf("%s = %v\n", name, value)
	}
}

func runCodepagesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	bits := make([]int64, 0, len(codepage.ReverseRanges))
	for bit := range codepage.ReverseRanges {
		bits = append(bits, bit)
	}
	sort.Slice(bits, func(i, j int) bool { return bits[i] < bits[j] })
	for _, bit := range bits {
		cp, _ := codepage.Codepage(bit)
		fmt.Printf("bit %2d  codepage %d\n", bit, cp)
	}
}

func runRoundtripCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["fixture"].Value)
	if path == "" {
		fatalf("fixture path is required")
	}
	object, ufo, err := fixture.Load(path)
	if err != nil {
		fatalf("%v", err)
	}
	if err := params.ToUFOCustomParams(object, ufo); err != nil {
		fatalf("to-UFO pass failed: %v", err)
	}
	fmt.Println("--- UFO after Glyphs -> UFO ---")
	printUFO(ufo)

	back := memfont.NewObject(object.Kind())
	if err := params.ToGlyphsCustomParams(back, ufo); err != nil {
		fatalf("to-Glyphs pass failed: %v", err)
	}
	fmt.Println("--- Glyphs object after UFO -> Glyphs ---")
	for _, p := range back.CustomParameters() {
		fmt.Printf("%s = %v\n", p.Name, p.Value)
	}
}

func printUFO(ufo *memfont.UFO) {
	names := ufo.InfoFields()
	sort.Strings(names)
	for _, name := range names {
		value, _ := ufo.InfoField(name).Unwrap()
		fmt.Printf("info %s = %v\n", name, value)
	}
	for _, key := range ufo.LibKeys() {
		value, _ := ufo.LibValue(key).Unwrap()
		fmt.Printf("lib  %s = %v\n", key, value)
	}
	if text := ufo.FeatureText(); text != "" {
		fmt.Printf("features:\n%s\n", text)
	}
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "gb-tools: "+format+"\n", args...)
	os.Exit(1)
}
