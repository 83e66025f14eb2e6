// gbcli is an interactive console for inspecting custom-parameter
// translation: load a YAML fixture, run either translation direction,
// and look at what ended up on each side.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/glyphbridge/glyphbridge/internal/fixture"
	"github.com/glyphbridge/glyphbridge/internal/memfont"
	"github.com/glyphbridge/glyphbridge/params"
)

// tracer traces with key 'glyphbridge.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphbridge.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.glyphbridge.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fixturePath := flag.String("fixture", "", "Fixture to load")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	pterm.Info.Println("Welcome to the glyphbridge CLI")
	repl, err := readline.New("gb > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	if *fixturePath != "" {
		if err := intp.loadFixture(*fixturePath); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	object *memfont.Object
	ufo    *memfont.UFO
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit":
		return true, nil
	case "help":
		printHelp()
	case "load":
		if arg == "" {
			return false, fmt.Errorf("usage: load <fixture.yaml>")
		}
		return false, intp.loadFixture(arg)
	case "handlers":
		for _, h := range params.KnownHandlers() {
			pterm.Println(h.Name())
		}
	case "toufo":
		if err := intp.requireFixture(); err != nil {
			return false, err
		}
		if err := params.ToUFOCustomParams(intp.object, intp.ufo); err != nil {
			return false, err
		}
		pterm.Info.Println("translated to UFO")
	case "toglyphs":
		if err := intp.requireFixture(); err != nil {
			return false, err
		}
		if err := params.ToGlyphsCustomParams(intp.object, intp.ufo); err != nil {
			return false, err
		}
		pterm.Info.Println("translated to Glyphs")
	case "params":
		if err := intp.requireFixture(); err != nil {
			return false, err
		}
		for _, p := range intp.object.CustomParameters() {
			pterm.Printf("%s = %s", p.Name, spew.Sdump(p.Value))
		}
	case "info":
		if err := intp.requireFixture(); err != nil {
			return false, err
		}
		names := intp.ufo.InfoFields()
		sort.Strings(names)
		for _, name := range names {
			value, _ := intp.ufo.InfoField(name).Unwrap()
			pterm.Printf("%s = %s", name, spew.Sdump(value))
		}
	case "lib":
		if err := intp.requireFixture(); err != nil {
			return false, err
		}
		for _, key := range intp.ufo.LibKeys() {
			value, _ := intp.ufo.LibValue(key).Unwrap()
			pterm.Printf("%s = %s", key, spew.Sdump(value))
		}
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) loadFixture(path string) error {
	object, ufo, err := fixture.Load(path)
	if err != nil {
		return err
	}
	intp.object, intp.ufo = object, ufo
	tracer().Infof("loaded %s fixture with %d custom parameters",
		object.Kind(), len(object.CustomParameters()))
	return nil
}

func (intp *Intp) requireFixture() error {
	if intp.object == nil {
		return fmt.Errorf("no fixture loaded, use 'load <fixture.yaml>'")
	}
	return nil
}

func printHelp() {
	pterm.Println("Commands:")
	pterm.Println("  load <fixture.yaml>   load a Glyphs/UFO fixture")
	pterm.Println("  toufo                 run the Glyphs -> UFO pass")
	pterm.Println("  toglyphs              run the UFO -> Glyphs pass")
	pterm.Println("  params                print the object's custom parameters")
	pterm.Println("  info                  print the UFO's fontinfo attributes")
	pterm.Println("  lib                   print the UFO's lib entries")
	pterm.Println("  handlers              list registered translation rules")
	pterm.Println("  quit                  leave (also <ctrl>D)")
}
