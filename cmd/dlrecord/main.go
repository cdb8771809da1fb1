// Command dlrecord records a YAML scene script into a display list,
// prints a summary and replays it into a registered dispatcher.
//
// Usage:
//
//	dlrecord [-dispatcher stats] [-rtree] [-cull l,t,r,b] [-v] script.yaml
//
// A script path of "-" reads from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/geom"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dlrecord", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dispatcher = fs.String("dispatcher", "stats", "dispatcher to replay into ("+strings.Join(displaylist.Dispatchers(), ", ")+")")
		forceRTree = fs.Bool("rtree", false, "build a spatial index even if the script does not ask for one")
		cullFlag   = fs.String("cull", "", "replay only ops intersecting l,t,r,b")
		verbose    = fs.Bool("v", false, "log at debug level to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("dlrecord: want one script path, got %d", fs.NArg())
	}

	var cull *geom.Rect
	if *cullFlag != "" {
		r, err := parseRect(*cullFlag)
		if err != nil {
			return err
		}
		cull = &r
	}

	if *verbose || *dispatcher == "trace" {
		displaylist.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer displaylist.SetLogger(nil)
	}

	script, err := readScript(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	dl, err := script.Record(displaylist.NewBuilder(script.Options(*forceRTree)...))
	if err != nil {
		return err
	}
	printSummary(stdout, dl)

	d, err := displaylist.NewDispatcher(*dispatcher)
	if err != nil {
		return err
	}
	if cull != nil {
		dl.DispatchCulled(d, *cull)
	} else {
		dl.Dispatch(d)
	}
	if s, ok := d.(fmt.Stringer); ok {
		fmt.Fprintln(stdout, s.String())
	}
	return nil
}

func readScript(path string, stdin io.Reader) (*Script, error) {
	if path == "-" {
		return ParseScript(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dlrecord: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

func printSummary(w io.Writer, dl *displaylist.DisplayList) {
	b := dl.Bounds()
	fmt.Fprintf(w, "ops: %d (%d nested)\n", dl.OpCount(false), dl.OpCount(true))
	fmt.Fprintf(w, "bytes: %d (%d nested)\n", dl.Bytes(false), dl.Bytes(true))
	fmt.Fprintf(w, "bounds: [%g %g %g %g]\n", b.Left, b.Top, b.Right, b.Bottom)
	fmt.Fprintf(w, "unbounded: %v\n", dl.IsUnbounded())
	fmt.Fprintf(w, "group opacity: %v\n", dl.CanApplyGroupOpacity())
	if t := dl.RTree(); t != nil {
		fmt.Fprintf(w, "rtree: %d rects\n", t.Len())
	}
}

// parseRect parses "l,t,r,b".
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("dlrecord: cull %q: %w: want l,t,r,b", s, errBadArg)
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("dlrecord: cull %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return geom.MakeLTRB(v[0], v[1], v[2], v[3]), nil
}
