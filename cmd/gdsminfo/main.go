// Command gdsminfo prints properties of diffuse sky-model variants and,
// optionally, of a loaded component data file.
//
// Usage:
//
//	gdsminfo [flags] [variant-name ...]
//
// Without arguments it prints info for all known model variants.
//
// Examples:
//
//	gdsminfo gsm2008
//	gdsminfo -data gsm_components.npz -freq 408 gsm2008
//	gdsminfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/telegraphic/gdsm/gdsm"
)

type variantEntry struct {
	name    string
	variant gdsm.Variant
	comps   string
	unit    string
	notes   string
}

var registry = []variantEntry{
	{"gsm2008", gdsm.GSM2008, "3", "K", "de Oliveira-Costa et al. (2008)"},
	{"gsm2016", gdsm.GSM2016, "6", "TCMB/TRJ/MJysr", "Zheng et al. (2017)"},
	{"lfss", gdsm.LFSM, "data-dependent", "K", "LWA1 low-frequency sky model"},
	{"haslam", gdsm.Haslam, "template", "K", "Haslam 408 MHz power-law template"},
}

func main() {
	data := flag.String("data", "", "component data file (.npz) to load and inspect")
	freq := flag.Float64("freq", 0, "frequency in MHz to generate at (requires -data)")
	list := flag.Bool("list", false, "list available variant names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gdsminfo [flags] [variant-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of diffuse sky-model variants.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all variants.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gdsminfo gsm2008 haslam\n")
		fmt.Fprintf(os.Stderr, "  gdsminfo -data gsm_components.npz -freq 408 gsm2008\n")
		fmt.Fprintf(os.Stderr, "  gdsminfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}
	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching model variants\n")
		os.Exit(1)
	}

	if *data == "" {
		printVariants(entries)
		return
	}

	if len(entries) != 1 {
		fmt.Fprintf(os.Stderr, "error: -data requires exactly one variant\n")
		os.Exit(1)
	}
	if err := inspectData(entries[0], *data, *freq); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []variantEntry {
	byName := make(map[string]variantEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []variantEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown variant %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printVariants(entries []variantEntry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Variant\tBand [MHz]\tComponents\tUnits\tNotes\n")
	fmt.Fprintf(tw, "-------\t----------\t----------\t-----\t-----\n")
	for _, e := range entries {
		lo, hi := e.variant.Band()
		band := "f > 0"
		if lo != 0 {
			band = fmt.Sprintf("%g - %g", lo, hi)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.name, band, e.comps, e.unit, e.notes)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func inspectData(e variantEntry, path string, freqMHz float64) error {
	model, err := gdsm.Open(e.variant, path)
	if err != nil {
		return err
	}

	lo, hi := model.Band()
	fmt.Printf("variant:     %s\n", model.Variant())
	fmt.Printf("components:  %d\n", model.K())
	fmt.Printf("nside:       %d (%d pixels)\n", model.NativeNside(), 12*model.NativeNside()*model.NativeNside())
	if lo != 0 {
		fmt.Printf("band:        %g - %g MHz\n", lo, hi)
	} else {
		fmt.Printf("band:        any f > 0 MHz\n")
	}
	fmt.Printf("unit:        %s\n", model.Unit())

	if freqMHz == 0 {
		return nil
	}

	sky, err := model.Generate(freqMHz)
	if err != nil {
		return err
	}
	m := sky[0]
	lo, hi = m.Data[0], m.Data[0]
	sum := 0.0
	for _, v := range m.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += v
	}
	fmt.Printf("\nmap at %g MHz:\n", freqMHz)
	fmt.Printf("  min/mean/max:  %.4g / %.4g / %.4g %s\n", lo, sum/float64(len(m.Data)), hi, m.Unit)
	fmt.Printf("  negative px:   %d\n", m.NegativePixels)
	return nil
}
