/*
wfcli is an interactive explorer for web-font fallback computation.

It loads a capsize metrics table (the built-in one by default) and offers a
small REPL to inspect font metrics, compute fallback descriptors and preview
the resulting @font-face CSS.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/webfont"
	"github.com/npillmayer/webfont/capsize"
	"github.com/npillmayer/webfont/fallback"
	"github.com/pterm/pterm"
)

// tracer traces with key 'webfont'
func tracer() tracing.Trace {
	return tracing.Select("webfont")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.webfont":          "Info",
		"trace.webfont.fallback": "Info",
		"trace.webfont.capsize":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	metricsPath := flag.String("metrics", "", "Capsize metrics JSON to load (built-in table if empty)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the web-font fallback CLI")
	//
	// set up REPL
	repl, err := readline.New("wf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, adjust: true}
	//
	// load metrics table to use
	if err := intp.loadTable(*metricsPath); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
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
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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
	table  webfont.MetricsTable
	source string // where the table came from, for display
	adjust bool   // derive override values for fallback results?
}

func (intp *Intp) loadTable(path string) (err error) {
	if path == "" {
		intp.table, err = capsize.Builtin()
		intp.source = "built-in"
	} else {
		intp.table, err = capsize.LoadFile(path)
		intp.source = path
	}
	if err == nil {
		tracer().Infof("loaded %d font metrics entries (%s)", len(intp.table), intp.source)
	}
	return err
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
		quit := intp.execute(line)
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs one REPL line. Commands take the rest of the line as their
// argument, so family names need no quoting: "fallback Roboto Slab".
func (intp *Intp) execute(line string) (quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit":
		return true
	case "help":
		help()
	case "list":
		printFamilyList(intp.table)
	case "metrics":
		printMetrics(intp.table, arg)
	case "fallback":
		printFallback(intp.result(arg), intp.adjust)
	case "css":
		printCSS(intp.result(arg))
	case "adjust":
		intp.setAdjust(arg)
	default:
		pterm.Error.Printf("unknown command '%s'\n", cmd)
		help()
	}
	return false
}

// result computes the fallback descriptor for a family against the loaded
// table. The request hash is derived from the family name, which is enough
// for a CLI session with one request per family.
func (intp *Intp) result(family string) fallback.Result {
	opts := fallback.Options{
		FontFamily:         family,
		AdjustFontFallback: intp.adjust,
	}
	loader := fallback.LoaderFunc(func() (webfont.MetricsTable, error) {
		return intp.table, nil
	})
	return fallback.GetFallback(opts, loader, requestHash(family), nil, issuePrinter{})
}

func (intp *Intp) setAdjust(arg string) {
	switch strings.ToLower(arg) {
	case "on", "true":
		intp.adjust = true
	case "off", "false":
		intp.adjust = false
	default:
		pterm.Error.Println("usage: adjust on|off")
		return
	}
	pterm.Info.Printf("adjust is %v\n", intp.adjust)
}

func requestHash(family string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(family))
	return h.Sum32()
}

// issuePrinter routes fallback diagnostics to the terminal.
type issuePrinter struct{}

func (issuePrinter) Report(issue fallback.Issue) {
	pterm.Warning.Printf("%s — %s\n", issue.Title, issue.Description)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list                 show all font families in the metrics table
	metrics <family>     show the metrics entry for a family
	fallback <family>    compute the fallback descriptor for a family
	css <family>         print the @font-face rule for a family's fallback
	adjust on|off        toggle derivation of metric override values
	help                 this text
	quit                 leave (or <ctrl>D)
	`)
}
